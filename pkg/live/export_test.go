package live

import "time"

func SetClock(h *Host, now func() time.Time) { h.setClock(now) }

func Evict(h *Host) int { return h.store.evict() }
