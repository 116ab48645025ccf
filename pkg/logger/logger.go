package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Leveled process-wide logger for the lists service and todoctl.
// Init(level) once at startup; LOG_LEVEL feeds it in main.

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

var (
	mu      sync.RWMutex
	logger  = log.New(os.Stdout, "", 0)
	level   = LevelInfo
	service = "todolists"
	exit    = os.Exit
)

// ParseLevel maps debug|info|warn|warning|error|fatal (any case) to a Level.
// Unknown input yields LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	}
	return LevelInfo
}

// Init sets the global log level. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(l)
}

// SetService changes the name printed on every line.
func SetService(name string) {
	mu.Lock()
	defer mu.Unlock()
	service = name
}

// SetOutput redirects log lines, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

func write(l Level, format string, v ...interface{}) {
	mu.RLock()
	if l < level {
		mu.RUnlock()
		return
	}
	out, svc := logger, service
	mu.RUnlock()
	out.Printf("%s [%s] %s: %s", time.Now().Format(time.RFC3339), strings.ToUpper(levelNames[l]), svc, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...interface{}) { write(LevelDebug, format, v...) }
func Infof(format string, v ...interface{})  { write(LevelInfo, format, v...) }
func Warnf(format string, v ...interface{})  { write(LevelWarn, format, v...) }
func Errorf(format string, v ...interface{}) { write(LevelError, format, v...) }

// Fatalf always logs, then exits with status 1.
func Fatalf(format string, v ...interface{}) {
	mu.RLock()
	out, svc := logger, service
	mu.RUnlock()
	out.Printf("%s [FATAL] %s: %s", time.Now().Format(time.RFC3339), svc, fmt.Sprintf(format, v...))
	exit(1)
}

func Info(v string) { Infof("%s", v) }
func Warn(v string) { Warnf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return levelNames[level]
}
