package utils

import "time"

// Clock é a fonte de tempo dos serviços; nil equivale a time.Now
type Clock func() time.Time

// NowIn retorna o instante atual no fuso informado (UTC quando loc é nil)
func (c Clock) NowIn(loc *time.Location) time.Time {
	now := time.Now
	if c != nil {
		now = c
	}

	if loc == nil {
		loc = time.UTC
	}

	return now().In(loc)
}

// FixedClock retorna sempre o mesmo instante
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
