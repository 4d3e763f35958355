package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ILogger interface {
	Debug(module, message string, details map[string]interface{})
	Info(module, message string, details map[string]interface{})
	Warn(module, message string, details map[string]interface{})
	Error(module, message string, details map[string]interface{})
	Sync() error
}

type ZapLogger struct {
	logger *zap.Logger
}

func newRotatingFileCore(logFilePath string) zapcore.Core {
	rotator := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    20, // MB
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)
}

// NewZapLogger writes JSON lines to a rotated file and mirrors everything to stdout.
// When the bot runs on the console channel, pass consoleOut=false so the log
// stream does not interleave with the conversation.
func NewZapLogger(logFilePath string, isProd bool, consoleOut bool) *ZapLogger {
	cores := []zapcore.Core{newRotatingFileCore(logFilePath)}

	if consoleOut {
		var consoleEncoder zapcore.Encoder
		if isProd {
			encoderConfig := zap.NewProductionEncoderConfig()
			encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			consoleEncoder = zapcore.NewJSONEncoder(encoderConfig)
		} else {
			consoleEncoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		}
		cores = append(cores, zapcore.NewCore(
			consoleEncoder,
			zapcore.Lock(os.Stdout),
			zap.DebugLevel,
		))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2))

	return &ZapLogger{logger: l}
}

// NewNopLogger discards everything. Used by tests and tools.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{logger: zap.NewNop()}
}

func (l *ZapLogger) Debug(module, message string, details map[string]interface{}) {
	l.write(zapcore.DebugLevel, module, message, details)
}

func (l *ZapLogger) Info(module, message string, details map[string]interface{}) {
	l.write(zapcore.InfoLevel, module, message, details)
}

func (l *ZapLogger) Warn(module, message string, details map[string]interface{}) {
	l.write(zapcore.WarnLevel, module, message, details)
}

func (l *ZapLogger) Error(module, message string, details map[string]interface{}) {
	l.write(zapcore.ErrorLevel, module, message, details)
}

// write lifts an error value out of details so it is searchable on its own key.
func (l *ZapLogger) write(level zapcore.Level, module, message string, details map[string]interface{}) {
	fields := make([]zap.Field, 0, 3)
	fields = append(fields, zap.String("module", module))
	if err, ok := details["error"].(error); ok {
		fields = append(fields, zap.Error(err))
	}
	if details == nil {
		details = map[string]interface{}{}
	}
	fields = append(fields, zap.Any("details", details))
	l.logger.Log(level, message, fields...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
