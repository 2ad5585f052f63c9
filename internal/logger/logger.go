package logger

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/natefinch/lumberjack"
	"github.com/nsxzhou1114/conduit-api/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger 全局日志实例
	Logger = zap.NewNop()
	// SugaredLogger 语法糖日志实例
	SugaredLogger = Logger.Sugar()
)

// RequestIDKey gin上下文中请求ID的键
const RequestIDKey = "requestID"

// Init 按配置初始化全局日志
func Init(cfg *config.LogConfig) {
	Logger = New(cfg)
	SugaredLogger = Logger.Sugar()
}

// New 创建日志实例
func New(cfg *config.LogConfig) *zap.Logger {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var writeSyncer zapcore.WriteSyncer
	if cfg.Filename != "" {
		// 使用lumberjack进行日志轮转
		rotator := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize, // MB
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge, // days
			Compress:   cfg.Compress,
		}
		if cfg.Stdout {
			writeSyncer = zapcore.NewMultiWriteSyncer(zapcore.AddSync(rotator), zapcore.AddSync(os.Stdout))
		} else {
			writeSyncer = zapcore.AddSync(rotator)
		}
	} else {
		writeSyncer = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writeSyncer, level)
	return zap.New(core, zap.AddCaller())
}

// Sync 同步日志
func Sync() error {
	return Logger.Sync()
}

// GinLogger 返回Gin中间件日志处理函数
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		Logger.Info("HTTP请求",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.Duration("cost", time.Since(start)),
			zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
		)
	}
}

// Info 信息日志
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Warn 警告日志
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Error 错误日志
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

// Fatal 致命错误日志
func Fatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}
