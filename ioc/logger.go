package ioc

import (
	"os"

	"github.com/spf13/viper"
	"github.com/uy1-mgp/bff/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLogger() logger.Logger {
	type Config struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSize    int    `yaml:"maxSize"` // MB
		MaxBackups int    `yaml:"maxBackups"`
		MaxAge     int    `yaml:"maxAge"` // 天
	}
	cfg := Config{
		Level:      "info",
		File:       "logs/mgp-bff.log",
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     7,
	}
	err := viper.UnmarshalKey("log", &cfg)
	if err != nil {
		panic(err)
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		panic(err)
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)
	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, file, level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	)
	return logger.NewZapLogger(zap.New(core, zap.AddCaller()))
}
