// Package ui provides a thin abstraction over user output (typically a
// tty device), kept separate from pkg/cmd so command options never
// depend directly on os.Stdout/os.Stderr.
package ui

// UI is the narrow surface pkg/cmd commands write diagnostics through.
type UI interface {
	Printf(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
}
