package logger

import (
	"log"
	"os"
)

// New returns a basic stderr logger; swap in structured logging when needed.
func New() *log.Logger {
	return log.New(os.Stderr, "", log.LstdFlags)
}
