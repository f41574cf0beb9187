package ui

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/reflect/pkg/day"
	"tableflip.dev/reflect/pkg/session"
	"tableflip.dev/reflect/pkg/store"
	"tableflip.dev/reflect/pkg/tui"
)

type UI struct {
	Store  *store.Store
	Logger log.FieldLogger
	Tick   time.Duration
	On     day.Date
}

func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("can not open ui, no store")
	}
	if u.On.IsZero() {
		u.On = day.Today()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []tui.Option{tui.WithTick(u.Tick), tui.WithLogger(u.Logger)}
	if events, err := u.Store.Watch(ctx); err != nil {
		if u.Logger != nil {
			u.Logger.WithError(err).Warn("watching entries disabled")
		}
	} else {
		opts = append(opts, tui.WithEvents(events))
	}

	s := session.New(u.Store, u.On, session.WithLogger(u.Logger))
	return tui.Run(ctx, tui.New(s, opts...))
}
