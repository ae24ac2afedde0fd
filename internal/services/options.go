package services

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IDFunc produces a new opaque identifier.
type IDFunc func() string

// NewID returns a random UUID string. Ids carry no ordering.
func NewID() string { return uuid.NewString() }

type deps struct {
	now   func() time.Time
	newID IDFunc
	log   *zap.Logger
}

func defaultDeps() deps {
	return deps{
		now:   time.Now,
		newID: NewID,
		log:   zap.NewNop(),
	}
}

type Option func(*deps)

func WithClock(now func() time.Time) Option {
	return func(d *deps) { d.now = now }
}

func WithIDFunc(f IDFunc) Option {
	return func(d *deps) { d.newID = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(d *deps) {
		if l != nil {
			d.log = l
		}
	}
}

func buildDeps(opts []Option) deps {
	d := defaultDeps()
	for _, o := range opts {
		o(&d)
	}
	return d
}

// touch returns the next updated_at value; it never goes backwards even if
// the clock does.
func (d deps) touch(prev time.Time) time.Time {
	now := d.now()
	if now.Before(prev) {
		return prev
	}
	return now
}
