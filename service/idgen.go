package service

import (
	"sync/atomic"
	"time"
)

type IdGenerator interface {
	Next() int64
}

// TimestampIdGenerator 毫秒时间戳，同一毫秒内递增，保证单调
type TimestampIdGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

func NewTimestampIdGenerator() IdGenerator {
	return &TimestampIdGenerator{now: time.Now}
}

func (g *TimestampIdGenerator) Next() int64 {
	for {
		last := g.last.Load()
		next := g.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
