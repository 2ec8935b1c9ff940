package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRenderHistory_DatesInLocalZone(t *testing.T) {
	created := time.Date(2024, time.March, 1, 1, 0, 0, 0, time.Local)
	_, offset := created.Zone()
	// same instant, stored from a zone six hours behind local
	stored := created.In(time.FixedZone("west", offset-6*3600))
	if stored.Day() == created.Day() {
		t.Fatal("test zone should put the stored time on the previous day")
	}

	var out bytes.Buffer
	renderHistory(&out, "pushups", Exercise{History: []int{4, 0}, Desired: 10, Created: stored})

	got := out.String()
	for _, want := range []string{"2024-03-01", "2024-03-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "2024-02-29") {
		t.Errorf("output dated from the stored zone:\n%s", got)
	}
}
