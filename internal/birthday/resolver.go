// Package birthday computes how many days remain until a birthday, as seen from
// a given IANA timezone.
package birthday

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// LeapPolicy decides which day a Feb 29 birthday is observed on in a non-leap year.
type LeapPolicy int

const (
	// LeapFeb28 observes Feb 29 birthdays on Feb 28 in non-leap years.
	LeapFeb28 LeapPolicy = iota
	// LeapMar1 observes Feb 29 birthdays on Mar 1 in non-leap years.
	LeapMar1
)

// ParseLeapPolicy maps a config value ("feb28", "mar1") to a LeapPolicy.
func ParseLeapPolicy(s string) (LeapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "feb28":
		return LeapFeb28, nil
	case "mar1":
		return LeapMar1, nil
	default:
		return LeapFeb28, fmt.Errorf("unknown leap day policy %q", s)
	}
}

func (p LeapPolicy) String() string {
	if p == LeapMar1 {
		return "mar1"
	}
	return "feb28"
}

// DaysUntil returns the number of whole days from ref until the next occurrence of
// dob's month and day in loc. Only the month and day of dob are used. The result is 0
// when the birthday is today and is always in [0, 366).
func DaysUntil(dob time.Time, loc *time.Location, ref time.Time, policy LeapPolicy) int {
	if loc == nil {
		loc = time.UTC
	}

	local := ref.In(loc)
	// Calendar dates pinned to UTC midnight so DST transitions never shift a day.
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	next := observed(local.Year(), dob.Month(), dob.Day(), policy)
	if next.Before(today) {
		next = observed(local.Year()+1, dob.Month(), dob.Day(), policy)
	}

	return int(next.Sub(today).Hours() / 24)
}

func observed(year int, month time.Month, day int, policy LeapPolicy) time.Time {
	if month == time.February && day == 29 && !isLeap(year) {
		if policy == LeapMar1 {
			return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
		}
		return time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC)
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Resolver computes lead times for timezone names, caching loaded locations.
type Resolver struct {
	policy LeapPolicy
	mu     sync.RWMutex
	locs   map[string]*time.Location
}

// NewResolver creates a Resolver with the given leap day policy.
func NewResolver(policy LeapPolicy) *Resolver {
	return &Resolver{
		policy: policy,
		locs:   make(map[string]*time.Location),
	}
}

// DaysUntil resolves tz and returns the lead time for dob at ref.
// An empty timezone is treated as UTC.
func (r *Resolver) DaysUntil(dob time.Time, tz string, ref time.Time) (int, error) {
	loc, err := r.location(tz)
	if err != nil {
		return 0, err
	}

	return DaysUntil(dob, loc, ref, r.policy), nil
}

func (r *Resolver) location(tz string) (*time.Location, error) {
	if tz == "" {
		return time.UTC, nil
	}

	r.mu.RLock()
	loc, ok := r.locs[tz]
	r.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}

	r.mu.Lock()
	r.locs[tz] = loc
	r.mu.Unlock()

	return loc, nil
}
