package core

// Logger is any service that can log & report events.
// args may contain errors, extra data (map[string]interface{}) and the acting session user.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
