package httpx

import "log/slog"

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithAttrs adds attrs to every log record of the round tripper.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(rt *LoggingRoundTripper) {
		for _, attr := range attrs {
			rt.attrs = append(rt.attrs, attr)
		}
	}
}
