package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu       sync.Mutex
	debugLog = log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime)
	infoLog  = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	warnLog  = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)

	debugEnabled bool
)

// Setup routes each level to a rotated file under logDir, mirrored to the
// console. Before Setup everything goes to the console only.
func Setup(logDir string, debug bool) {
	mu.Lock()
	defer mu.Unlock()

	debugEnabled = debug

	infoWriter := io.MultiWriter(os.Stdout, rotatedFile(filepath.Join(logDir, "info.log")))
	warnWriter := io.MultiWriter(os.Stdout, rotatedFile(filepath.Join(logDir, "warn.log")))
	errorWriter := io.MultiWriter(os.Stderr, rotatedFile(filepath.Join(logDir, "error.log")))

	debugLog.SetOutput(infoWriter)
	infoLog.SetOutput(infoWriter)
	warnLog.SetOutput(warnWriter)
	errorLog.SetOutput(errorWriter)

	// Route Go's default logger through the info file as well.
	log.SetOutput(infoWriter)
}

func rotatedFile(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    25, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

func Debug(format string, v ...interface{}) {
	if !debugEnabled {
		return
	}
	output(debugLog, format, v...)
}

func Info(format string, v ...interface{}) {
	output(infoLog, format, v...)
}

func Warn(format string, v ...interface{}) {
	output(warnLog, format, v...)
}

func Error(format string, v ...interface{}) {
	output(errorLog, format, v...)
}

func output(l *log.Logger, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	l.Println(fmt.Sprintf(format, v...))
}
