package service

import "time"

// Clock - источник текущего времени
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock всегда возвращает одно и то же время
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
