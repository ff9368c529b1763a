package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// fallbackDir is used when the configured log directory is not writable.
const fallbackDir = "./logs"

// Initialize sets up the global logger with the given log level.
// Logs always go to stdout as JSON; when dir is not empty they are also written
// to rotated combined.log and error.log files inside it.
func Initialize(level, dir string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), lvl),
	}

	if dir != "" {
		dir, err = ensureWritableDir(dir)
		if err != nil {
			return err
		}

		cores = append(cores,
			zapcore.NewCore(encoder, rotated(filepath.Join(dir, "combined.log")), lvl),
			zapcore.NewCore(encoder, rotated(filepath.Join(dir, "error.log")), zapcore.ErrorLevel),
		)
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))

	Log = logger.Sugar()
	return nil
}

func rotated(filename string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    5, // megabytes
		MaxBackups: 5,
	})
}

// ensureWritableDir creates dir if needed and falls back to ./logs when it cannot be used.
func ensureWritableDir(dir string) (string, error) {
	if err := writable(dir); err == nil {
		return dir, nil
	}
	if err := writable(fallbackDir); err != nil {
		return "", err
	}
	return fallbackDir, nil
}

func writable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
