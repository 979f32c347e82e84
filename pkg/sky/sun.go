package sky

import (
	"math"
	"time"
)

// Home coordinates the gradient defaults to.
const (
	DefaultLatitude  = 45.5017
	DefaultLongitude = -73.5673
)

const (
	rad         = math.Pi / 180
	j2000       = 2451545.0
	julianUnix  = 2440588.0
	obliquity   = rad * 23.4397
	dayMillis   = 1000 * 60 * 60 * 24
	perihelionP = rad * 102.9372
)

// SolarAltitude returns the sun's altitude above the horizon in degrees at
// the given instant and location.
func SolarAltitude(t time.Time, lat, lon float64) float64 {
	d := toDays(t)
	lw := rad * -lon
	phi := rad * lat

	m := solarMeanAnomaly(d)
	l := eclipticLongitude(m)
	dec := declination(l)
	ra := rightAscension(l)
	h := siderealTime(d, lw) - ra

	alt := math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(h))
	return alt / rad
}

func toDays(t time.Time) float64 {
	julian := float64(t.UnixMilli())/dayMillis - 0.5 + julianUnix
	return julian - j2000
}

func solarMeanAnomaly(d float64) float64 {
	return rad * (357.5291 + 0.98560028*d)
}

func eclipticLongitude(m float64) float64 {
	center := rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	return m + center + perihelionP + math.Pi
}

func declination(l float64) float64 {
	return math.Asin(math.Sin(obliquity) * math.Sin(l))
}

func rightAscension(l float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(obliquity), math.Cos(l))
}

func siderealTime(d, lw float64) float64 {
	return rad*(280.16+360.9856235*d) - lw
}
