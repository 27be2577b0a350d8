package game

import (
	"fmt"
	"math"
	"strings"
)

type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter

	seasonCount = 4
)

func ParseSeason(raw string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "spring":
		return SeasonSpring, nil
	case "summer":
		return SeasonSummer, nil
	case "autumn", "fall":
		return SeasonAutumn, nil
	case "winter":
		return SeasonWinter, nil
	default:
		return 0, fmt.Errorf("invalid season: %q", raw)
	}
}

func (s Season) Valid() bool {
	return s >= SeasonSpring && s <= SeasonWinter
}

func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonAutumn:
		return "autumn"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// SunlightTimes returns sunrise and sunset for the season.
func (s Season) SunlightTimes() (sunrise, sunset Time) {
	switch s {
	case SeasonSpring:
		return NewTime(8, 0), NewTime(17, 0)
	case SeasonSummer:
		return NewTime(4, 0), NewTime(22, 30)
	case SeasonAutumn:
		return NewTime(5, 0), NewTime(21, 30)
	default:
		return NewTime(9, 0), NewTime(15, 0)
	}
}

// SunlightLevel is 0 outside daylight and follows a half sine between
// sunrise and sunset, peaking at 1.
func (s Season) SunlightLevel(t Time) float32 {
	sunrise, sunset := s.SunlightTimes()
	if t.mins < sunrise.mins || t.mins > sunset.mins {
		return 0
	}
	x := float32(t.mins-sunrise.mins) * math.Pi / float32(sunset.mins-sunrise.mins)
	return float32(math.Sin(float64(x)))
}

func (s Season) sunIntensity() float32 {
	switch s {
	case SeasonSpring:
		return 0.80
	case SeasonSummer:
		return 1.00
	case SeasonAutumn:
		return 0.90
	default:
		return 0.70
	}
}
