package tz

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Paris is the Europe/Paris location (CET/CEST with automatic DST).
var Paris *time.Location

func init() {
	var err error
	Paris, err = time.LoadLocation("Europe/Paris")
	if err != nil {
		panic("tz: load Europe/Paris: " + err.Error())
	}
}

// Load resolves an IANA zone name. The zone database is embedded, so this
// works on hosts without /usr/share/zoneinfo.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return Paris, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %q: %w", name, err)
	}
	return loc, nil
}

// Or returns loc, or Paris when loc is nil.
func Or(loc *time.Location) *time.Location {
	if loc == nil {
		return Paris
	}
	return loc
}
