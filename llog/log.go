package llog

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log      = zap.NewNop().Sugar()
	logLevel = zap.NewAtomicLevel()
)

const (
	logTimeFormat = "2006-01-02 15:04:05.000"
)

// config 日志配置
type config struct {
	// 日志级别 (debug, info, warn, error)
	level string
	// 控制台输出格式 (console, json)
	encoding string
	// 文件输出路径（为空则不写文件）
	filename string
	// 控制台输出目标, 默认 stderr, 避免和命令输出混在一起
	output io.Writer

	serviceName string
}

func (c *config) init() {
	if c.level == "" {
		c.level = "info"
	}

	if c.encoding == "" {
		c.encoding = "console"
	}

	if c.output == nil {
		c.output = os.Stderr
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	type appendTimeEncoder interface {
		AppendTimeLayout(time.Time, string)
	}

	if enc, ok := enc.(appendTimeEncoder); ok {
		enc.AppendTimeLayout(t, logTimeFormat)
		return
	}

	enc.AppendString(t.Format(logTimeFormat))
}

func SetLevel(level string) error {
	return logLevel.UnmarshalText([]byte(level))
}

type LoggerOption func(cfg *config)

func WithLevel(level string) LoggerOption {
	return func(cfg *config) {
		cfg.level = level
	}
}

func WithEncoding(encoding string) LoggerOption {
	return func(cfg *config) {
		cfg.encoding = encoding
	}
}

func WithFilename(filename string) LoggerOption {
	return func(cfg *config) {
		cfg.filename = filename
	}
}

func WithOutput(w io.Writer) LoggerOption {
	return func(cfg *config) {
		cfg.output = w
	}
}

func WithServiceName(serviceName string) LoggerOption {
	return func(cfg *config) {
		cfg.serviceName = serviceName
	}
}

// InitLogger 初始化全局日志实例, 返回的函数用于 flush 并关闭日志文件
func InitLogger(opts ...LoggerOption) (*zap.SugaredLogger, func(), error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.init()

	if err := SetLevel(cfg.level); err != nil {
		return nil, nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = timeEncoder
	encoderConfig.StacktraceKey = ""

	var (
		cores      []zapcore.Core
		fileWriter *lumberjack.Logger
	)
	if cfg.filename != "" {
		// 文件输出（带轮转）
		fileWriter = &lumberjack.Logger{
			Filename:   cfg.filename,
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     30, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(fileWriter),
			logLevel,
		))
	}

	var encoder zapcore.Encoder
	if cfg.encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}
	cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(cfg.output), logLevel))

	zapLogger := zap.New(zapcore.NewTee(cores...))
	if cfg.serviceName != "" {
		zapLogger = zapLogger.With(zap.String("service", cfg.serviceName))
	}

	logger := zapLogger.Sugar()
	log = logger

	return logger, func() {
		_ = logger.Sync()
		if fileWriter != nil {
			_ = fileWriter.Close()
		}
	}, nil
}

func GetLogger() *zap.SugaredLogger {
	return log
}
