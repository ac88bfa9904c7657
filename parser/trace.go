package parser

import (
	"iter"

	"go.uber.org/zap"
)

// Trace wraps p so that every invocation and every produced result is logged at debug level.
// With a nil logger, p is returned unchanged.
func Trace[T any](name string, p Parser[T], logger *zap.Logger) Parser[T] {
	if logger == nil {
		return p
	}
	logger = logger.With(zap.String("parser", name))
	return Func(func(input string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			logger.Debug("parse", zap.String("input", input))
			n := 0
			for r := range p.Parse(input) {
				n++
				logger.Debug("result",
					zap.Int("index", n),
					zap.Any("value", r.Value),
					zap.String("rest", r.Rest))
				if !yield(r) {
					logger.Debug("stopped by consumer", zap.Int("results", n))
					return
				}
			}
			logger.Debug("exhausted", zap.Int("results", n))
		}
	})
}
