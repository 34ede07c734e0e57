package logger

import "go.uber.org/zap"

// New builds the application logger. In development mode it uses the
// console encoder at debug level, otherwise the production JSON encoder.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Must builds the application logger and panics on failure. Logger
// construction failing means the process cannot report anything anyway.
func Must(development bool) *zap.Logger {
	log, err := New(development)
	if err != nil {
		panic(err)
	}
	return log
}
