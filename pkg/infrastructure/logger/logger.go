package logger

import (
	"io"
	"os"
	"strings"
	"todo-go-backend/config"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the application logger.
type Options struct {
	Level      string
	Format     string // console or json
	Output     string // stdout, stderr or a file path
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewLogger builds the application logger from config.C.
func NewLogger() (*zap.Logger, error) {
	return New(Options{
		Level:      config.C.Log.Level,
		Format:     config.C.Log.Format,
		Output:     config.C.Log.Output,
		MaxSizeMB:  config.C.Log.MaxSizeMB,
		MaxBackups: config.C.Log.MaxBackups,
		MaxAgeDays: config.C.Log.MaxAgeDays,
	})
}

// New builds a zap logger. File outputs are rotated with lumberjack.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(opts.Level))); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", opts.Level)
		}
	}

	w, terminal := writer(opts)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")

	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		if terminal {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, errors.Errorf("invalid log format %q", opts.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func writer(opts Options) (io.Writer, bool) {
	switch strings.ToLower(opts.Output) {
	case "", "stdout":
		return os.Stdout, true
	case "stderr":
		return os.Stderr, true
	}
	return &lumberjack.Logger{
		Filename:   opts.Output,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}, false
}
