package game

import "strings"

// Conditions is everything the narrator needs to describe the surroundings.
type Conditions struct {
	Location Location
	Season   Season
	Time     Time
	Sky      Sky
	Wind     Wind
	TempC    int8
}

// Describe renders the full description: place, clouds, air, time of day.
// Every line ends in a newline.
func Describe(c Conditions) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(c.Location.Profile().Sentence)
	if c.Sky == SkyClouds {
		line("it is cloudy.")
	}
	line(AirLine(c.Wind, c.Sky, ClassifyTemp(c.TempC)))
	line(TimeLine(c.Time.Classify(c.Season), c.Sky))
	return b.String()
}

// AirLine describes the wind, precipitation and temperature together. Rain
// at or below freezing is always described as snow.
func AirLine(wind Wind, sky Sky, temp TempCat) string {
	rain := sky == SkyRain

	switch wind {
	case WindNone:
		if !rain {
			switch temp {
			case TempFreezing, TempChilly:
				return "it is " + temp.String() + "."
			case TempNeutral:
				return "the air is still."
			default:
				return "the air is " + temp.String() + " and still."
			}
		}
		switch temp {
		case TempFreezing:
			return "it is snowing."
		case TempHot:
			return "it is hot and rainy."
		default:
			return "it is raining."
		}

	case WindLight:
		if !rain {
			return "there is a " + temp.String() + " breeze."
		}
		switch temp {
		case TempFreezing:
			return "it is snowing with a frigid breeze."
		case TempHot:
			return "it is raining with a hot breeze."
		default:
			return "it is raining."
		}

	case WindMedium:
		if !rain {
			if temp == TempFreezing {
				return "there is a bitter wind."
			}
			return "there is a " + temp.String() + " wind."
		}
		switch temp {
		case TempFreezing:
			return "it is snowing with a bitter wind."
		case TempHot:
			return "there are hot gusts of rain."
		default:
			return "it is raining and windy."
		}

	default:
		if !rain {
			switch temp {
			case TempFreezing:
				return "the wind howls and bites."
			case TempChilly, TempNeutral:
				return "the wind howls."
			default:
				return "there are strong gusts of " + temp.String() + " wind."
			}
		}
		switch temp {
		case TempFreezing:
			return "the wind howls and bites. it is snowing furiously."
		case TempHot:
			return "the hot rain blows furiously."
		default:
			return "it is raining furiously."
		}
	}
}

// TimeLine describes the time of day as far as the sky lets it be seen.
func TimeLine(tc TimeCat, sky Sky) string {
	sunny := sky == SkyClear

	switch tc {
	case TimeDawn, TimeDusk:
		switch {
		case !sunny:
			return "the sky is dark grey."
		case tc == TimeDawn:
			return "the sun is rising."
		default:
			return "the sun is setting."
		}
	case TimeMorning, TimeNoon, TimeAfternoon:
		switch {
		case !sunny:
			return "the sky is grey."
		case tc == TimeMorning:
			return "it is a clear morning."
		case tc == TimeNoon:
			return "it is midday."
		default:
			return "it is the afternoon."
		}
	default:
		return "it is dark."
	}
}

// SkyChangeLine narrates the sky moving from one state to another. ok is false
// when nothing visibly changes.
func SkyChangeLine(from, to Sky, freezing bool) (line string, ok bool) {
	if from == to {
		return "", false
	}

	switch to {
	case SkyClear:
		return "the sky clears up.", true
	case SkyClouds:
		if from == SkyClear {
			return "it gets cloudy.", true
		}
		if freezing {
			return "it stops snowing.", true
		}
		return "it stops raining.", true
	default:
		if freezing {
			return "it starts snowing.", true
		}
		return "it starts raining.", true
	}
}
