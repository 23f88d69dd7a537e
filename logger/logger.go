package logger

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger writes "[LEVEL] timestamp - message" lines to stdout and, when a
// log file could be opened, appends the same line to it.
type Logger struct {
	file *os.File
}

// New opens the log file in append mode. A file that cannot be opened is not
// fatal; the logger falls back to console-only output.
func New(path string) *Logger {
	l := &Logger{}
	if path == "" {
		return l
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Warning: could not open log file %s: %v", path, err)
		return l
	}
	l.file = f
	return l
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

func (l *Logger) write(level, format string, args ...interface{}) {
	now := time.Now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] %s - %s", level, now, fmt.Sprintf(format, args...))
	fmt.Println(entry)
	if l.file != nil {
		if _, err := l.file.WriteString(entry + "\n"); err != nil {
			log.Printf("Warning: could not write to log file: %v", err)
		}
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.write("WARN", format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}
