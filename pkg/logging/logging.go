// pkg/logging/logging.go - leveled console logging for teamsfix.

package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of the log message.
type LogLevel int

const (
	// Define log levels.
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the string representation of the LogLevel.
func (ll LogLevel) String() string {
	switch ll {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a LogLevel. Unknown values
// fall back to INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "DEBUG":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGreen  = "\033[32m"
)

// Logger writes timestamped, colored console lines.
type Logger struct {
	mu       sync.RWMutex
	logger   *log.Logger
	logLevel LogLevel
}

var (
	instance *Logger
	once     sync.Once
)

// Init initializes the singleton Logger at the given level. It enables
// ANSI processing on the Windows console the first time it runs.
func Init(level LogLevel) {
	ensureInstance()
	instance.SetLevel(level)
}

// ensureInstance constructs the singleton once, at INFO. It never
// changes the level of an existing instance; only Init and SetLevel do.
func ensureInstance() {
	once.Do(func() {
		enableColors()
		instance = &Logger{
			logger:   log.New(os.Stdout, "", 0),
			logLevel: LevelInfo,
		}
	})
}

func getInstance() *Logger {
	ensureInstance()
	return instance
}

// SetLevel changes the minimum severity that gets printed.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logLevel = level
}

// SetOutput changes the output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// SetOutput redirects the singleton's output.
func SetOutput(w io.Writer) {
	getInstance().SetOutput(w)
}

// logMessage prints one line: [timestamp] LEVEL message key=value ...
func (l *Logger) logMessage(level LogLevel, color, message string, keyValues ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level > l.logLevel {
		return
	}

	var b strings.Builder
	b.WriteString(message)
	for i := 0; i+1 < len(keyValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyValues[i], keyValues[i+1])
	}

	ts := time.Now().Format("2006-01-02 15:04:05")
	l.logger.Printf("%s[%s] %s %s%s", color, ts, level.String(), b.String(), colorReset)
}

// Info logs informational messages.
func Info(message string, keyValues ...interface{}) {
	getInstance().logMessage(LevelInfo, colorReset, message, keyValues...)
}

// Success logs informational messages in green.
func Success(message string, keyValues ...interface{}) {
	getInstance().logMessage(LevelInfo, colorGreen, message, keyValues...)
}

// Debug logs debug messages.
func Debug(message string, keyValues ...interface{}) {
	getInstance().logMessage(LevelDebug, colorBlue, message, keyValues...)
}

// Warn logs warning messages.
func Warn(message string, keyValues ...interface{}) {
	getInstance().logMessage(LevelWarn, colorYellow, message, keyValues...)
}

// Error logs error messages.
func Error(message string, keyValues ...interface{}) {
	getInstance().logMessage(LevelError, colorRed, message, keyValues...)
}
