package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "laaame.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// logger is disabled unless -debug is given; the terminal belongs to the game
var logger = zerolog.Nop()

// setupLogging points logger at logs/laaame.log, rotating the file when it exceeds maxLogSize
// Returns nil when logging is off or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger = zerolog.Nop()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("laaame_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger = zerolog.Nop()
		return nil
	}

	logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	logger.Info().Int("pid", os.Getpid()).Msg("logging started")
	return f
}
