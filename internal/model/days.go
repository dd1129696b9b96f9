package model

import (
	"fmt"
	"strings"
	"time"
)

// DaySet is a set of weekdays stored as a bitmask. The zero value is the
// empty set. The canonical textual form is the sorted MO..SU code sequence,
// which is the only form that crosses the storage and JSON boundaries.
type DaySet uint8

const (
	Monday DaySet = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayCodes = []struct {
	day  DaySet
	code string
}{
	{Monday, "MO"},
	{Tuesday, "TU"},
	{Wednesday, "WE"},
	{Thursday, "TH"},
	{Friday, "FR"},
	{Saturday, "SA"},
	{Sunday, "SU"},
}

// ParseDay converts a single weekday code to its DaySet member.
func ParseDay(code string) (DaySet, error) {
	for _, d := range dayCodes {
		if d.code == code {
			return d.day, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday code %q", code)
}

// ParseDays builds a DaySet from a sequence of codes. Order is irrelevant and
// duplicates collapse.
func ParseDays(codes []string) (DaySet, error) {
	var s DaySet
	for _, code := range codes {
		d, err := ParseDay(code)
		if err != nil {
			return 0, err
		}
		s = s.Add(d)
	}
	return s, nil
}

// DayOf returns the DaySet member for the UTC weekday of t.
func DayOf(t time.Time) DaySet {
	switch t.UTC().Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func (s DaySet) Add(d DaySet) DaySet { return s | d }

func (s DaySet) Has(d DaySet) bool { return s&d != 0 }

func (s DaySet) Intersects(o DaySet) bool { return s&o != 0 }

func (s DaySet) Empty() bool { return s == 0 }

func (s DaySet) Len() int {
	n := 0
	for _, d := range dayCodes {
		if s.Has(d.day) {
			n++
		}
	}
	return n
}

// Codes returns the member codes in canonical MO..SU order.
func (s DaySet) Codes() []string {
	codes := make([]string, 0, s.Len())
	for _, d := range dayCodes {
		if s.Has(d.day) {
			codes = append(codes, d.code)
		}
	}
	return codes
}

func (s DaySet) String() string {
	return strings.Join(s.Codes(), ",")
}
