package service

import (
	"time"

	"github.com/kristofferme/leader/internal/model"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

type calendar struct {
	now Clock
	loc *time.Location
}

func newCalendar(now Clock, loc *time.Location) calendar {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return calendar{now: now, loc: loc}
}

func (c calendar) Now() time.Time {
	return c.now().In(c.loc)
}

func (c calendar) Today() string {
	return model.DateKey(c.now(), c.loc)
}

// stamp returns fresh record metadata with a UTC creation time.
func (c calendar) stamp() model.Record {
	return model.Record{CreatedAt: c.now().UTC()}
}
