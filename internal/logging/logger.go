// Package logging provides categorized logging for reifscan.
// Logging is off by default (analysis is a pure library concern); the CLI
// or tests enable it via Initialize. Each subsystem logs through its own
// named zap logger so categories can be grepped apart in debug output.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryCatalog  Category = "catalog"  // Catalog construction and extension loading
	CategoryAnalysis Category = "analysis" // Detection, scoring, restatement
	CategorySession  Category = "session"  // Variable locks and orchestration
	CategoryCLI      Category = "cli"      // Command-line surface
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	byName  = make(map[Category]*zap.SugaredLogger)
	enabled bool
)

// Initialize builds the root logger. debug selects DebugLevel, otherwise
// InfoLevel console output. Safe to call more than once; later calls
// replace the root and drop cached category loggers.
func Initialize(debug bool) error {
	cfg := zap.NewDevelopmentConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	root = logger
	byName = make(map[Category]*zap.SugaredLogger)
	enabled = true
	return nil
}

// Disable resets logging to a no-op. Used by tests.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	root = zap.NewNop()
	byName = make(map[Category]*zap.SugaredLogger)
	enabled = false
}

// Enabled reports whether Initialize has been called.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Get returns the sugared logger for a category.
func Get(cat Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := byName[cat]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := byName[cat]; ok {
		return l
	}
	l := root.Named(string(cat)).Sugar()
	byName[cat] = l
	return l
}

// Sync flushes the root logger. Best effort.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Convenience helpers, one pair per category.

func Catalog(format string, args ...interface{})       { Get(CategoryCatalog).Infof(format, args...) }
func CatalogDebug(format string, args ...interface{})  { Get(CategoryCatalog).Debugf(format, args...) }
func Analysis(format string, args ...interface{})      { Get(CategoryAnalysis).Infof(format, args...) }
func AnalysisDebug(format string, args ...interface{}) { Get(CategoryAnalysis).Debugf(format, args...) }
func Session(format string, args ...interface{})       { Get(CategorySession).Infof(format, args...) }
func SessionDebug(format string, args ...interface{})  { Get(CategorySession).Debugf(format, args...) }
func CLI(format string, args ...interface{})           { Get(CategoryCLI).Infof(format, args...) }
