package digits

import (
	"fmt"
	"log/slog"
)

var pkgLogger *slog.Logger

// SetLogger replaces the logger used for warnings and fatal diagnostics.
// Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

func logger() *slog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return slog.Default()
}

// warn reports a recoverable failure. Callers still return their failure
// indicator; the log line only explains it.
func warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

// fatalf reports a contract violation and panics. Nothing in the toolkit
// recovers it, so an unrecovered caller terminates.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logger().Error(msg)
	panic("digits: " + msg)
}

// widgetAttr renders a widget as a log attribute.
func widgetAttr(w *Widget) slog.Attr {
	if w == nil {
		return slog.String("widget", "nil")
	}
	return slog.Group("widget", slog.Uint64("id", uint64(w.ID)), slog.String("kind", w.Kind().String()))
}
