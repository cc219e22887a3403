package core

// Logger is any leveled logger the application can report through.
// Implementations may inspect args for known types (eg. a user record
// to attribute the event to) before printing the rest.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
