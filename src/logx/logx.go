package logx

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface every wheel component writes through.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Named(name string) Logger
	Sync() error
}

type Logx struct {
	level       zapcore.Level
	dev         bool
	console     bool
	sugarLogger *zap.SugaredLogger
}

func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	return &Logx{level: lvl, dev: dev, console: console}
}

// NewNopLogx returns a ready logger that discards everything.
func NewNopLogx() *Logx {
	return &Logx{level: zapcore.FatalLevel, sugarLogger: zap.NewNop().Sugar()}
}

// NewLogxFromCore wraps an existing zap core, e.g. an observer in tests.
func NewLogxFromCore(core zapcore.Core) *Logx {
	return &Logx{level: zapcore.DebugLevel, sugarLogger: zap.New(core).Sugar()}
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// GetLoggerLevelByString falls back to info for unknown names.
func GetLoggerLevelByString(lvl string) zapcore.Level {
	level, exist := loggerLevelMap[strings.ToLower(strings.TrimSpace(lvl))]
	if !exist {
		return zapcore.InfoLevel
	}
	return level
}

// InitLogger builds the zap core. Console mode writes human readable
// lines to stdout, otherwise JSON goes to w.
func (l *Logx) InitLogger(w io.Writer) {
	var logWriter zapcore.WriteSyncer
	if l.console || w == nil {
		logWriter = zapcore.AddSync(os.Stdout)
	} else {
		logWriter = zapcore.AddSync(w)
	}

	var encoderCfg zapcore.EncoderConfig
	if l.dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.LevelKey = "LEVEL"
	encoderCfg.CallerKey = "CALLER"
	encoderCfg.TimeKey = "TIME"
	encoderCfg.NameKey = "NAME"
	encoderCfg.MessageKey = "MESSAGE"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if l.console {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, logWriter, zap.NewAtomicLevelAt(l.level))
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if l.dev {
		opts = append(opts, zap.Development())
	}
	l.sugarLogger = zap.New(core, opts...).Sugar()
}

func (l *Logx) sugar() *zap.SugaredLogger {
	if l.sugarLogger == nil {
		l.sugarLogger = zap.NewNop().Sugar()
	}
	return l.sugarLogger
}

func (l *Logx) Named(name string) Logger {
	return &Logx{level: l.level, dev: l.dev, console: l.console, sugarLogger: l.sugar().Named(name)}
}

func (l *Logx) Sync() error {
	return l.sugar().Sync()
}

func (l *Logx) Debug(args ...interface{}) {
	l.sugar().Debug(args...)
}

func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugar().Debugf(template, args...)
}

func (l *Logx) Info(args ...interface{}) {
	l.sugar().Info(args...)
}

func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugar().Infof(template, args...)
}

func (l *Logx) Warn(args ...interface{}) {
	l.sugar().Warn(args...)
}

func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugar().Warnf(template, args...)
}

func (l *Logx) Error(args ...interface{}) {
	l.sugar().Error(args...)
}

func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugar().Errorf(template, args...)
}
