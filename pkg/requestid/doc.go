// Package requestid tags every request with an X-Request-ID and exposes it to
// handlers and loggers.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
