package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts context values", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("session_id", key{}))

		ctx := context.WithValue(context.Background(), key{}, "abc")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "abc", decode(t, buf)["session_id"])
	})

	t.Run("extractors survive WithAttrs and WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
				return slog.String("x", "1"), true
			}),
		).With("a", "b").WithGroup("g")
		log.Info("msg")

		entry := decode(t, buf)
		assert.Equal(t, "b", entry["a"])
		assert.Equal(t, map[string]any{"x": "1"}, entry["g"])
	})
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		wantEnv  string
		wantJSON bool
		debug    bool
	}{
		{"production", "production", true, false},
		{"prod", "production", true, false},
		{"staging", "staging", true, false},
		{"development", "development", false, true},
		{"", "development", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithEnvironment(tt.env, "contactform"))
			log.Debug("dbg")

			if !tt.debug {
				assert.Empty(t, buf.String())
			}
			log.Warn("warn")

			out := buf.String()
			if tt.wantJSON {
				entry := decode(t, buf)
				assert.Equal(t, tt.wantEnv, entry["env"])
				assert.Equal(t, "contactform", entry["service"])
				return
			}
			assert.Contains(t, out, "env="+tt.wantEnv)
			assert.Contains(t, out, "msg=dbg")
		})
	}
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, slog.String("field", "email"), logger.Field("email"))
	assert.Equal(t, slog.String("session_id", "s1"), logger.SessionID("s1"))

	g := logger.Group("form", slog.String("name", "Jo"))
	assert.Equal(t, "form", g.Key)
	assert.Equal(t, slog.KindGroup, g.Value.Kind())
}

func TestNop(t *testing.T) {
	assert.False(t, logger.Nop().Enabled(context.Background(), slog.LevelError))
}
