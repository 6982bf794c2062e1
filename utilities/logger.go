package utilities

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
	logMutex sync.Mutex
)

// InitLogging wires the three level loggers to stdout/stderr plus a rotated
// file under logDir. Must be called once at startup before any Log call.
func InitLogging(logDir string) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "healthme.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}

	infoWriter := io.MultiWriter(os.Stdout, fileWriter)
	warnWriter := io.MultiWriter(os.Stdout, fileWriter)
	errorWriter := io.MultiWriter(os.Stderr, fileWriter)

	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)

	// Override Go's default log
	log.SetOutput(infoWriter)
}

func getCallerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}

// Log writes a formatted entry at the given level. Falls back to the
// standard logger when InitLogging has not run (tests).
func Log(level string, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()

	message := fmt.Sprintf(format, v...)
	logEntry := fmt.Sprintf("[%s] %s", getCallerInfo(), message)

	if infoLog == nil {
		log.Printf("%s: %s", level, logEntry)
		return
	}

	switch level {
	case "WARNING":
		warnLog.Println(logEntry)
	case "ERROR":
		errorLog.Println(logEntry)
	default:
		infoLog.Println(logEntry)
	}
}

func Info(format string, v ...interface{}) {
	Log("INFO", format, v...)
}

func Warn(format string, v ...interface{}) {
	Log("WARNING", format, v...)
}

func Error(format string, v ...interface{}) {
	Log("ERROR", format, v...)
}
