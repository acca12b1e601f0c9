package logger

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// DriverSink returns a sink for the MongoDB driver's log.
//
// The driver logs informational messages at V(1) and debug messages at V(2)
// while zapr maps V(n) to zap level -n. Levels are shifted by one so driver
// information lands on zap's info level.
func DriverSink(l *zap.SugaredLogger) *ShiftedSink {
	return &ShiftedSink{
		sink: zapr.NewLogger(l.Desugar().Named("mongo-driver")).GetSink(),
	}
}

// ShiftedSink lowers the verbosity of every message by one.
type ShiftedSink struct {
	sink logr.LogSink
}

// Info logs a non-error message.
func (s *ShiftedSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if level > 0 {
		level--
	}
	if !s.sink.Enabled(level) {
		return
	}

	s.sink.Info(level, msg, keysAndValues...)
}

// Error logs an error message.
func (s *ShiftedSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.sink.Error(err, msg, keysAndValues...)
}
