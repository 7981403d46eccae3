package port

// Fields carries structured data into a log entry.
type Fields map[string]interface{}

// LoggerPort is the logging contract the core depends on; adapters decide
// where the entries go (stdout, fluentd, both).
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a new logger with the fields pre-attached.
	WithFields(fields Fields) LoggerPort
}
