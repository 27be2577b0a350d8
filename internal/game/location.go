package game

import (
	"fmt"
	"strings"
)

// LocationKind selects a row of the location profile table. New places are
// added as new kinds and table rows.
type LocationKind int

const (
	LocationForest LocationKind = iota
)

// ChanceScale is the denominator for every Chance* value: a chance of
// ChanceScale fires on every draw.
const ChanceScale = 100_000

type SkyChance struct {
	Chance int
	Sky    Sky
}

// LocationProfile holds the climate constants of one kind of place.
type LocationProfile struct {
	Name     string
	Sentence string

	BaseTempC     [seasonCount]int8
	SkyVisibility [seasonCount]float32

	ChanceTempChange     int
	ChanceTempTowardBase int
	ChanceWindChange     int
	ChanceWindIncrease   int
	SkyChances           [3]SkyChance
}

var locationProfiles = [...]LocationProfile{
	LocationForest: {
		Name:     "forest",
		Sentence: "you are in a forest.",
		BaseTempC: [seasonCount]int8{
			SeasonSpring: 0,
			SeasonSummer: 6,
			SeasonAutumn: 9,
			SeasonWinter: -5,
		},
		SkyVisibility: [seasonCount]float32{
			SeasonSpring: 0.8,
			SeasonSummer: 0.6,
			SeasonAutumn: 0.7,
			SeasonWinter: 0.9,
		},
		ChanceTempChange:     16_667, // ~1 per 10 min
		ChanceTempTowardBase: 60_000,
		ChanceWindChange:     1_667, // ~1 per hour
		ChanceWindIncrease:   50_000,
		SkyChances: [3]SkyChance{
			{Chance: 208, Sky: SkyClear},  // ~1 per 8h
			{Chance: 417, Sky: SkyClouds}, // ~1 per 4h
			{Chance: 139, Sky: SkyRain},   // ~1 per 12h
		},
	},
}

func (k LocationKind) Valid() bool {
	return k >= 0 && int(k) < len(locationProfiles)
}

// Profile returns the table row for k. Callers must check Valid first;
// NewSession does.
func (k LocationKind) Profile() LocationProfile {
	return locationProfiles[k]
}

func (k LocationKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return k.Profile().Name
}

// Location is a place plus the position reached inside it.
type Location struct {
	Kind LocationKind
	Pos  Coord
}

func (l Location) Profile() LocationProfile {
	return l.Kind.Profile()
}

// Sunlight is the 0..1 light level reaching the ground.
func (l Location) Sunlight(season Season, t Time, sky Sky) float32 {
	p := l.Profile()
	skyVisibility := p.SkyVisibility[season] * sky.visibility()
	return season.SunlightLevel(t) * season.sunIntensity() * skyVisibility
}

// TempBase is the temperature the location drifts toward at this moment.
func (l Location) TempBase(season Season, t Time, sky Sky) int8 {
	const diurnalVar = 10.0
	sunBias := (l.Sunlight(season, t, sky) - 0.5) * diurnalVar * 2.0
	return saturatingAdd8(l.Profile().BaseTempC[season], int8(sunBias))
}

// TempMaxChange is the largest step a single temperature event may take.
// Always at least 1.
func (l Location) TempMaxChange(season Season, t Time, sky Sky) int8 {
	const maxChange = 4.0
	return int8(l.Sunlight(season, t, sky)*maxChange) + 1
}

func ParseLocation(raw string) (LocationKind, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for k, p := range locationProfiles {
		if p.Name == name {
			return LocationKind(k), nil
		}
	}
	return 0, fmt.Errorf("invalid location: %q", raw)
}
