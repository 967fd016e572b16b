package logger

import (
	"context"
	"errors"
	"time"

	glogger "gorm.io/gorm/logger"
)

// GormLogger 把 gorm 的日志转到 Logger 上，慢查询单独标记
type GormLogger struct {
	l             Logger
	level         glogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(l Logger, slowThreshold time.Duration) glogger.Interface {
	return &GormLogger{
		l:             l,
		level:         glogger.Warn,
		slowThreshold: slowThreshold,
	}
}

func (g *GormLogger) LogMode(level glogger.LogLevel) glogger.Interface {
	return &GormLogger{l: g.l, level: level, slowThreshold: g.slowThreshold}
}

func (g *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= glogger.Info {
		g.l.Info(msg, Any("data", data))
	}
}

func (g *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= glogger.Warn {
		g.l.Warn(msg, Any("data", data))
	}
}

func (g *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.level >= glogger.Error {
		g.l.Error(msg, Any("data", data))
	}
}

func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= glogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= glogger.Error && !errors.Is(err, glogger.ErrRecordNotFound):
		sql, rows := fc()
		g.l.Error("gorm 查询失败", Error(err), String("sql", sql),
			Int64("rows", rows), String("elapsed", elapsed.String()))
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= glogger.Warn:
		sql, rows := fc()
		g.l.Warn("gorm 慢查询", String("sql", sql),
			Int64("rows", rows), String("elapsed", elapsed.String()))
	case g.level >= glogger.Info:
		sql, rows := fc()
		g.l.Debug("gorm 查询", String("sql", sql),
			Int64("rows", rows), String("elapsed", elapsed.String()))
	}
}
