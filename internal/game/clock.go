package game

import (
	"fmt"
	"time"
)

const (
	HourMins = 60
	DayHours = 24
	DayMins  = HourMins * DayHours
)

// Time is a minute of the simulated day. mins never reaches DayMins.
type Time struct {
	mins int
}

func NewTime(hour, minute int) Time {
	t := Time{}
	t.mins = hour*HourMins + minute
	t.wrap()
	return t
}

// ParseTime reads a 24h "HH:MM" clock value.
func ParseTime(s string) (Time, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return NewTime(parsed.Hour(), parsed.Minute()), nil
}

func (t Time) Minutes() int {
	return t.mins
}

func (t Time) Get() (hour, minute int) {
	return t.mins / HourMins, t.mins % HourMins
}

// Tick advances the clock. Each hour wraps on its own before the remaining
// minutes are added and wrapped.
func (t *Time) Tick(hours, mins int) {
	for i := 0; i < hours; i++ {
		t.mins += HourMins
		t.wrap()
	}
	t.mins += mins
	t.wrap()
}

func (t Time) Classify(season Season) TimeCat {
	sunrise, sunset := season.SunlightTimes()
	if t.mins < sunrise.mins || t.mins > sunset.mins {
		return TimeNight
	}

	// stretch daylight so sunrise lands on 0 and sunset on 255
	stretch := float32(t.mins-sunrise.mins) / float32(sunset.mins-sunrise.mins) * 255
	switch v := uint8(stretch); {
	case v <= 31:
		return TimeDawn
	case v <= 111:
		return TimeMorning
	case v <= 143:
		return TimeNoon
	case v <= 223:
		return TimeAfternoon
	default:
		return TimeDusk
	}
}

func (t Time) String() string {
	h, m := t.Get()
	return fmt.Sprintf("%02d:%02d", h, m)
}

func (t *Time) wrap() {
	t.mins %= DayMins
	if t.mins < 0 {
		t.mins += DayMins
	}
}

type TimeCat int

const (
	TimeDawn TimeCat = iota
	TimeMorning
	TimeNoon
	TimeAfternoon
	TimeDusk
	TimeNight
)

func (c TimeCat) String() string {
	switch c {
	case TimeDawn:
		return "dawn"
	case TimeMorning:
		return "morning"
	case TimeNoon:
		return "noon"
	case TimeAfternoon:
		return "afternoon"
	case TimeDusk:
		return "dusk"
	default:
		return "night"
	}
}
