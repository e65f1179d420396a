package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "trophy-snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger into dir when debug is set and
// discards it otherwise; the terminal is in raw mode so stdout is off limits
// A log over maxLogSize is renamed with a timestamp before reopening
// Returns the open file for the caller to close, or nil
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stamp := time.Now().Format("20060102-150405")
		rotated := filepath.Join(dir, "trophy-snake-"+stamp+".log")
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
