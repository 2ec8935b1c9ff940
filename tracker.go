package main

import (
	"time"

	"github.com/charmbracelet/log"
)

// Tracker runs a single invocation against the store: load, backfill,
// apply one operation, save.
type Tracker struct {
	store  *Store
	logger *log.Logger
	Now    func() time.Time
}

func NewTracker(store *Store, logger *log.Logger) *Tracker {
	return &Tracker{store: store, logger: logger, Now: time.Now}
}

// Session hands fn the normalized regimen and saves it if fn succeeds.
func (t *Tracker) Session(fn func(r *Regimen, now time.Time) error) error {
	now := t.Now()
	r, err := t.store.Load(now)
	if err != nil {
		return err
	}
	for name, days := range r.UpdateHistory(now) {
		t.logger.Debug("backfilled history", "exercise", name, "days", days)
	}
	if err := fn(r, now); err != nil {
		return err
	}
	return t.store.Save(r)
}

func (t *Tracker) Add(name, goal string) error {
	return t.Session(func(r *Regimen, now time.Time) error {
		return r.Add(name, goal, now)
	})
}

func (t *Tracker) List() ([]Status, error) {
	var out []Status
	err := t.Session(func(r *Regimen, _ time.Time) error {
		out = r.List()
		return nil
	})
	return out, err
}

func (t *Tracker) Done(name, count string) (Progress, error) {
	var p Progress
	err := t.Session(func(r *Regimen, _ time.Time) error {
		var err error
		p, err = r.Done(name, count)
		return err
	})
	return p, err
}

func (t *Tracker) Delete(name string) error {
	return t.Session(func(r *Regimen, _ time.Time) error {
		return r.Delete(name)
	})
}

func (t *Tracker) Goal(name, goal string) error {
	return t.Session(func(r *Regimen, _ time.Time) error {
		return r.Goal(name, goal)
	})
}

func (t *Tracker) History(name string) (Exercise, error) {
	var ex Exercise
	err := t.Session(func(r *Regimen, _ time.Time) error {
		var err error
		ex, err = r.History(name)
		return err
	})
	return ex, err
}
