package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrExerciseExists  = errors.New("exercise already exists")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrInvalidName     = errors.New("invalid exercise name")
)

// Exercise is one tracked activity. History holds one entry per calendar day
// since Created, index 0 being the creation day.
type Exercise struct {
	History []int     `json:"history"`
	Desired int       `json:"desired"`
	Created time.Time `json:"created"`
}

// Today returns the count logged for the most recent day.
func (e *Exercise) Today() int {
	if len(e.History) == 0 {
		return 0
	}
	return e.History[len(e.History)-1]
}

// Regimen is the full set of tracked exercises, keyed by name.
type Regimen struct {
	Exercises   map[string]*Exercise `json:"exercises"`
	LastUpdated time.Time            `json:"last_updated"`
}

func NewRegimen(now time.Time) *Regimen {
	return &Regimen{Exercises: map[string]*Exercise{}, LastUpdated: now}
}

// Status is a read-only view of one exercise as reported by List.
type Status struct {
	Name    string
	Current int
	Desired int
}

// Progress is the state of an exercise after reps were logged.
type Progress struct {
	Name    string
	Added   int
	Current int
	Desired int
}

// Compare reports -1, 0 or +1 as today's count is below, at or above the goal.
func (p Progress) Compare() int {
	switch {
	case p.Current < p.Desired:
		return -1
	case p.Current > p.Desired:
		return 1
	}
	return 0
}

// Remaining is how many reps are left today; negative once the goal is passed.
func (p Progress) Remaining() int { return p.Desired - p.Current }

// UpdateHistory appends a zero for every calendar day between the last
// recorded day and now. It returns the number of days added per exercise.
func (r *Regimen) UpdateHistory(now time.Time) map[string]int {
	filled := map[string]int{}
	for name, ex := range r.Exercises {
		missed := daysBetween(ex.Created, now) + 1 - len(ex.History)
		if missed <= 0 {
			continue
		}
		ex.History = append(ex.History, make([]int, missed)...)
		filled[name] = missed
	}
	r.LastUpdated = now
	return filled
}

func (r *Regimen) Add(name, goalStr string, now time.Time) error {
	if name == "" || strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, ok := r.Exercises[name]; ok {
		return fmt.Errorf("%w: %q", ErrExerciseExists, name)
	}
	goal, err := parseGoal(goalStr)
	if err != nil {
		return err
	}
	r.Exercises[name] = &Exercise{History: []int{0}, Desired: goal, Created: now}
	return nil
}

// List returns every exercise sorted by name.
func (r *Regimen) List() []Status {
	out := make([]Status, 0, len(r.Exercises))
	for name, ex := range r.Exercises {
		out = append(out, Status{Name: name, Current: ex.Today(), Desired: ex.Desired})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Done adds count reps to today's entry.
func (r *Regimen) Done(name, countStr string) (Progress, error) {
	ex, err := r.lookup(name)
	if err != nil {
		return Progress{}, err
	}
	count, err := parseCount(countStr)
	if err != nil {
		return Progress{}, err
	}
	if len(ex.History) == 0 {
		ex.History = []int{0}
	}
	ex.History[len(ex.History)-1] += count
	return Progress{Name: name, Added: count, Current: ex.Today(), Desired: ex.Desired}, nil
}

func (r *Regimen) Delete(name string) error {
	if _, err := r.lookup(name); err != nil {
		return err
	}
	delete(r.Exercises, name)
	return nil
}

// Goal replaces the daily goal of an existing exercise.
func (r *Regimen) Goal(name, goalStr string) error {
	ex, err := r.lookup(name)
	if err != nil {
		return err
	}
	goal, err := parseGoal(goalStr)
	if err != nil {
		return err
	}
	ex.Desired = goal
	return nil
}

// History returns a copy of the stored daily counts for name.
func (r *Regimen) History(name string) (Exercise, error) {
	ex, err := r.lookup(name)
	if err != nil {
		return Exercise{}, err
	}
	cp := *ex
	cp.History = append([]int(nil), ex.History...)
	return cp, nil
}

func (r *Regimen) lookup(name string) (*Exercise, error) {
	ex, ok := r.Exercises[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}
	return ex, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return int(n), nil
}

func parseGoal(s string) (int, error) {
	n, err := parseCount(s)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: goal must be at least 1", ErrInvalidNumber)
	}
	return n, nil
}

// daysBetween counts calendar days from a to b in b's location. Days are
// anchored at noon UTC so DST transitions never shift the count.
func daysBetween(a, b time.Time) int {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 12, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 12, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
