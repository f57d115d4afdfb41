package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

// InitLogger открывает errors.log и panics.log в каталоге dir
func InitLogger(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	errorLogFile, err := os.OpenFile(filepath.Join(dir, "errors.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open error log file: %w", err)
	}

	panicLogFile, err := os.OpenFile(filepath.Join(dir, "panics.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open panic log file: %w", err)
	}

	ErrorLogger = log.New(errorLogFile, "", 0)
	PanicLogger = log.New(panicLogFile, "", 0)

	return nil
}

func LogError(err error, context string) {
	if ErrorLogger == nil {
		log.Printf("ERROR %s: %v", context, err)
		return
	}

	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	ErrorLogger.Printf("[%s] ERROR in %s:%d - %s: %v", timestamp, filepath.Base(file), line, context, err)
}

func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		log.Printf("PANIC %s: %v", context, recovered)
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	PanicLogger.Printf("[%s] PANIC in %s:%d - %s: %v", timestamp, filepath.Base(file), line, context, recovered)
}
