package taskqueue

//go:generate mockgen -source logger.go -destination __mock/logger.go

// Logger receives queue events as key/value string pairs.
type Logger interface {
	Info(v any, logValues ...string)
	Error(e error, logValues ...string)
}

type nopLogger struct{}

func (nopLogger) Info(v any, logValues ...string)    {}
func (nopLogger) Error(e error, logValues ...string) {}
