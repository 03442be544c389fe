// Package logger builds *slog.Logger instances with environment presets,
// static attributes and attributes pulled from the request context.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "ideabloom"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "names generated", logger.Style("quirky"), logger.Count(8))
//
// Attribute helpers such as Error return an empty slog.Attr for nil values,
// so they can be passed unconditionally.
package logger
