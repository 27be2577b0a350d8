package game

import (
	"fmt"
	"strings"
)

type Sky int

const (
	SkyClear Sky = iota
	SkyClouds
	// SkyRain reads as snow while the temperature is below zero.
	SkyRain
)

func ParseSky(raw string) (Sky, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "clear":
		return SkyClear, nil
	case "clouds", "cloudy":
		return SkyClouds, nil
	case "rain", "rainy":
		return SkyRain, nil
	default:
		return 0, fmt.Errorf("invalid sky: %q", raw)
	}
}

func (s Sky) Valid() bool {
	return s >= SkyClear && s <= SkyRain
}

func (s Sky) String() string {
	switch s {
	case SkyClear:
		return "clear"
	case SkyClouds:
		return "clouds"
	default:
		return "rain"
	}
}

// visibility is the share of sunlight that gets through.
func (s Sky) visibility() float32 {
	switch s {
	case SkyClear:
		return 1.0
	case SkyClouds:
		return 0.7
	default:
		return 0.6
	}
}

type Wind int

const (
	WindNone Wind = iota
	WindLight
	WindMedium
	WindHigh
)

func ParseWind(raw string) (Wind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none", "calm":
		return WindNone, nil
	case "light":
		return WindLight, nil
	case "medium":
		return WindMedium, nil
	case "high":
		return WindHigh, nil
	default:
		return 0, fmt.Errorf("invalid wind: %q", raw)
	}
}

func (w Wind) Valid() bool {
	return w >= WindNone && w <= WindHigh
}

func (w Wind) String() string {
	switch w {
	case WindNone:
		return "none"
	case WindLight:
		return "light"
	case WindMedium:
		return "medium"
	default:
		return "high"
	}
}

// Increase steps the wind up one level and reports whether it moved.
func (w *Wind) Increase() bool {
	if *w >= WindHigh {
		return false
	}
	*w++
	return true
}

// Decrease steps the wind down one level and reports whether it moved.
func (w *Wind) Decrease() bool {
	if *w <= WindNone {
		return false
	}
	*w--
	return true
}

type TempCat int

const (
	TempFreezing TempCat = iota
	TempChilly
	TempNeutral
	TempWarm
	TempHot
)

func ClassifyTemp(c int8) TempCat {
	switch {
	case c <= 0:
		return TempFreezing
	case c <= 19:
		return TempChilly
	case c <= 25:
		return TempNeutral
	case c <= 31:
		return TempWarm
	default:
		return TempHot
	}
}

// String is the adjective the narrator uses for the category.
func (c TempCat) String() string {
	switch c {
	case TempFreezing:
		return "frigid"
	case TempChilly:
		return "chilly"
	case TempNeutral:
		return "light"
	case TempWarm:
		return "warm"
	default:
		return "hot"
	}
}

func saturatingAdd8(a, b int8) int8 {
	sum := int16(a) + int16(b)
	switch {
	case sum > 127:
		return 127
	case sum < -128:
		return -128
	default:
		return int8(sum)
	}
}

func saturatingNeg8(a int8) int8 {
	if a == -128 {
		return 127
	}
	return -a
}
