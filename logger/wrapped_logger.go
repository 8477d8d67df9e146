package logger

// WrappedLogger is a wrapper to call logging functions in case a logger was passed.
type WrappedLogger struct {
	logger *Logger
}

// NewWrappedLogger creates a new WrappedLogger.
func NewWrappedLogger(logger *Logger) *WrappedLogger {
	return &WrappedLogger{logger: logger}
}

// Logger return the underlying logger.
func (l *WrappedLogger) Logger() *Logger {
	return l.logger
}

// LoggerNamed adds a sub-scope to the logger's name. See Logger.Named for details.
func (l *WrappedLogger) LoggerNamed(name string) *Logger {
	if l.logger != nil {
		return l.logger.Named(name)
	}

	return nil
}

// LogDebugf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogDebugf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Debugf(template, args...)
	}
}

// LogDebugw logs a message with some additional context.
func (l *WrappedLogger) LogDebugw(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Debugw(msg, keysAndValues...)
	}
}

// LogInfof uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogInfof(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Infof(template, args...)
	}
}

// LogInfow logs a message with some additional context.
func (l *WrappedLogger) LogInfow(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Infow(msg, keysAndValues...)
	}
}

// LogWarnf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogWarnf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Warnf(template, args...)
	}
}

// LogErrorf uses fmt.Sprintf to log a templated message.
func (l *WrappedLogger) LogErrorf(template string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Errorf(template, args...)
	}
}

// LogErrorw logs a message with some additional context.
func (l *WrappedLogger) LogErrorw(msg string, keysAndValues ...interface{}) {
	if l.logger != nil {
		l.logger.Errorw(msg, keysAndValues...)
	}
}
