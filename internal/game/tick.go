package game

import "fmt"

// advance moves the clock forward and then rolls weather events once for
// every elapsed minute. The clock moves first, so every minute's rolls see
// the time at the end of the advance.
//
// Per minute the draws are: temperature (chance, magnitude, toward-base and,
// at base, a sign draw), wind (chance, direction), then one draw per sky
// table entry. Changing this order changes the outcome for a given seed.
func (s *Session) advance(hours, mins int) error {
	s.time.Tick(hours, mins)

	if s.debug {
		base := s.loc.TempBase(s.season, s.time, s.sky)
		if err := s.say(fmt.Sprintf("debug: %s %dC (%dC)", s.time, s.temp, base)); err != nil {
			return err
		}
	}

	p := s.loc.Profile()
	total := hours*HourMins + mins
	newTemp := s.temp

	for i := 0; i < total; i++ {
		if s.roll() < p.ChanceTempChange {
			newTemp = s.tempStep(p)
		}

		if s.roll() < p.ChanceWindChange {
			if s.roll() < p.ChanceWindIncrease {
				if s.wind.Increase() {
					if err := s.say("the wind speeds up."); err != nil {
						return err
					}
				}
			} else if s.wind.Decrease() {
				if err := s.say("the wind slows down."); err != nil {
					return err
				}
			}
		}

		// every entry is rolled; a later hit overwrites an earlier one
		for _, sc := range p.SkyChances {
			if s.roll() >= sc.Chance {
				continue
			}
			if line, ok := SkyChangeLine(s.sky, sc.Sky, s.temp < 0); ok {
				if err := s.say(line); err != nil {
					return err
				}
			}
			s.sky = sc.Sky
		}
	}

	// only the last temperature event of the advance counts
	switch {
	case newTemp < s.temp:
		if err := s.say("it feels colder."); err != nil {
			return err
		}
	case newTemp > s.temp:
		if err := s.say("it feels warmer."); err != nil {
			return err
		}
	}

	s.log.Debug("tick",
		"elapsed_mins", total,
		"time", s.time.String(),
		"temp", newTemp,
		"temp_prev", s.temp,
		"temp_base", s.loc.TempBase(s.season, s.time, s.sky),
		"wind", s.wind.String(),
		"sky", s.sky.String(),
	)
	s.temp = newTemp
	return nil
}

// tempStep draws a candidate temperature one event away from the current one.
func (s *Session) tempStep(p LocationProfile) int8 {
	maxChange := s.loc.TempMaxChange(s.season, s.time, s.sky)
	delta := int8(1 + s.rng.IntN(int(maxChange)))
	towardBase := s.roll() < p.ChanceTempTowardBase

	base := s.loc.TempBase(s.season, s.time, s.sky)
	switch {
	case s.temp < base:
		if !towardBase {
			delta = saturatingNeg8(delta)
		}
	case s.temp > base:
		if towardBase {
			delta = saturatingNeg8(delta)
		}
	default:
		if s.rng.IntN(2) == 1 {
			delta = saturatingNeg8(delta)
		}
	}
	return saturatingAdd8(s.temp, delta)
}

// roll draws uniformly from [0, ChanceScale].
func (s *Session) roll() int {
	return s.rng.IntN(ChanceScale + 1)
}
