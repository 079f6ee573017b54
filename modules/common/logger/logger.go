// Package logger wraps a zap sugared logger so modules can keep printf-style,
// emoji-prefixed log lines while writing structured output.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
)

// Init - 전역 로거 초기화
// development: 컬러 콘솔 + debug 레벨, 그 외: JSON + info 레벨
// logFile이 있으면 lumberjack으로 로테이션되는 파일에도 기록
func Init(development bool, logFile string) {
	level := zapcore.InfoLevel
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var consoleEncoder zapcore.Encoder
	if development {
		level = zapcore.DebugLevel
		devCfg := zap.NewDevelopmentEncoderConfig()
		devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(devCfg)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if logFile != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fileWriter, level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

// Sync - 버퍼된 로그 flush (종료 직전 호출)
func Sync() error {
	return current().Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(template string, args ...interface{}) { current().Debugf(template, args...) }
func Infof(template string, args ...interface{})  { current().Infof(template, args...) }
func Warnf(template string, args ...interface{})  { current().Warnf(template, args...) }
func Errorf(template string, args ...interface{}) { current().Errorf(template, args...) }
func Fatalf(template string, args ...interface{}) { current().Fatalf(template, args...) }
