package eztr

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the severity of a report message.
type Level int8

const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// VerboseLevel is the zap level used for LevelVerbose, one below Debug.
const VerboseLevel = zapcore.DebugLevel - 1

var levelNames = [...]string{"verbose", "debug", "info", "warning", "error", "fatal"}

func (l Level) String() string {
	if int(l) < len(levelNames) && l >= 0 {
		return levelNames[l]
	}
	return "unknown"
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelVerbose:
		return VerboseLevel
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Report logs msg at level. Fatal messages are logged at error level with a
// severity field; they never stop the process.
func (r *Registry) Report(level Level, msg string, fields ...zap.Field) {
	if level == LevelFatal {
		fields = append(fields, zap.String("severity", "fatal"))
	}
	r.log.Log(level.zap(), msg, fields...)
}

func (r *Registry) ReportFatal(msg string, fields ...zap.Field) {
	r.Report(LevelFatal, msg, fields...)
}

func (r *Registry) ReportError(msg string, fields ...zap.Field) {
	r.Report(LevelError, msg, fields...)
}

func (r *Registry) ReportWarning(msg string, fields ...zap.Field) {
	r.Report(LevelWarning, msg, fields...)
}

func (r *Registry) ReportInfo(msg string, fields ...zap.Field) {
	r.Report(LevelInfo, msg, fields...)
}

func (r *Registry) ReportDebug(msg string, fields ...zap.Field) {
	r.Report(LevelDebug, msg, fields...)
}

func (r *Registry) ReportVerbose(msg string, fields ...zap.Field) {
	r.Report(LevelVerbose, msg, fields...)
}
