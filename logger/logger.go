// Package logger builds the zap loggers used by galaxygen tools.
//
// Library packages never reach for a global logger; they accept a
// *zap.Logger through options. Commands build one here.
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured entries.
const (
	FieldSeed      = "seed"
	FieldSpec      = "spec"
	FieldNodes     = "nodes"
	FieldEdges     = "edges"
	FieldFile      = "file"
	FieldRunID     = "run_id"
	FieldComponent = "component"
	FieldDuration  = "duration_ms"
)

// New returns a JSON production logger when jsonOutput is set and a compact
// console logger on stderr otherwise. level is one of debug, info, warn, error.
func New(jsonOutput bool, level string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		return cfg.Build()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		lvl,
	)

	return zap.New(core), nil
}

// ParseLevel maps a case-insensitive level name to a zapcore.Level.
// An empty name means info.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logger: unknown level %q", name)
	}
}
