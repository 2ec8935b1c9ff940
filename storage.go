package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists a Regimen as JSON at a single path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStatePath is ~/.swole.
func DefaultStatePath() (string, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(h, ".swole"), nil
}

func (s *Store) Path() string { return s.path }

// Load reads the state file. A missing file yields an empty regimen
// stamped with now.
func (s *Store) Load(now time.Time) (*Regimen, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewRegimen(now), nil
	}
	if err != nil {
		return nil, &StoreError{Code: "READ_FAILED", Message: "cannot read " + s.path, Err: err}
	}
	var r Regimen
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, &StoreError{Code: "CORRUPT_STATE", Message: "cannot parse " + s.path, Err: err}
	}
	if r.Exercises == nil {
		r.Exercises = map[string]*Exercise{}
	}
	for name, ex := range r.Exercises {
		if msg := checkExercise(ex); msg != "" {
			return nil, &StoreError{Code: "CORRUPT_STATE", Message: fmt.Sprintf("exercise %q %s", name, msg)}
		}
	}
	return &r, nil
}

func checkExercise(ex *Exercise) string {
	switch {
	case ex == nil:
		return "has no data"
	case ex.Created.IsZero():
		return "has no creation date"
	case ex.Desired < 1:
		return fmt.Sprintf("has goal %d", ex.Desired)
	}
	for i, n := range ex.History {
		if n < 0 {
			return fmt.Sprintf("has negative count %d on day %d", n, i)
		}
	}
	return ""
}

func (s *Store) Save(r *Regimen) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return &StoreError{Code: "WRITE_FAILED", Message: "cannot encode state", Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &StoreError{Code: "WRITE_FAILED", Message: "cannot create " + filepath.Dir(s.path), Err: err}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return &StoreError{Code: "WRITE_FAILED", Message: "cannot write " + s.path, Err: err}
	}
	return nil
}

// StoreError describes a state file failure.
type StoreError struct {
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Err }
