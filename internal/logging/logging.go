// Package logging wires the process-wide log output: everything goes to
// stdout and to a rotated append-only log file.
package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the standard logger at stdout plus the given file.
// Call once, before anything logs.
func Setup(filePath string) {
	sink := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(io.MultiWriter(os.Stdout, sink))
	log.SetFlags(log.LstdFlags)
}
