package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "RESIZABLE_DEBUG"

var (
	logger  *logrus.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Logger returns the shared debug logger. On first use it opens the file
// named by RESIZABLE_DEBUG, or discards output when the variable is unset.
func Logger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = newDiscardLogger()
		if path := os.Getenv(EnvVar); path != "" {
			if err := initLocked(path); err != nil {
				fmt.Fprintf(os.Stderr, "debug: %v\n", err)
			}
		}
	}
	return logger
}

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = newDiscardLogger()
	}
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	return nil
}

// Close closes the debug log file and goes back to discarding output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logger != nil {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
	}
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
		DisableColors:   true,
	})
	return l
}
