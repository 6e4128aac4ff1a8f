package logger

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide structured logger. It discards everything until Init is called.
var Log = zap.NewNop().Sugar()

// SessionID tags every line written during this process run
var SessionID = uuid.New().String()

// Init routes Log to a rotating file at filePath.
// level is one of debug, info, warn, error.
func Init(filePath, level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	// 10MB per file, 3 backups, 7 days
	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   false,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(lj), lvl)

	Log = zap.New(core, zap.AddCaller()).Sugar().With("session", SessionID)
	return nil
}

// Sync flushes buffered entries
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
