package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "CLAP_DEBUG"

var (
	logFile *os.File
	logger  = zerolog.Nop()
	loaded  bool
	mu      sync.Mutex
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	loaded = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create log directory")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open debug log")
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// loadLocked reads CLAP_DEBUG once. Caller must hold mu.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err != nil {
			fmt.Fprintf(os.Stderr, "clap: debug log disabled: %v\n", err)
		}
	}
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = zerolog.Nop()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the structured debug logger. It is a no-op logger unless
// CLAP_DEBUG is set or Init was called.
func Logger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	l := logger
	return &l
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	Logger().Debug().Msgf(format, args...)
}
