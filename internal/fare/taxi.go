// Package fare estimates Tokyo taxi fares and travel times.
//
// The tariff follows the 23-ward / Musashino-Mitaka zone: a flag-fall covering
// the first 1.096 km, then a fixed charge per started 0.255 km.
package fare

import "math"

// Tariff constants in yen and kilometres.
const (
	BaseFare         = 500
	BaseDistanceKm   = 1.096
	UnitFare         = 100
	UnitDistanceKm   = 0.255
	NightSurcharge   = 1.2
	NightSpeedKmH    = 30.0
	RoadDetourFactor = 1.3
)

// TaxiFare returns the fare in yen for a ride of distanceKm.
// Partial distance units are billed as full units. With lateNight the
// 22:00-05:00 surcharge applies. The result is rounded up to 10 yen.
func TaxiFare(distanceKm float64, lateNight bool) int {
	if distanceKm <= 0 {
		return 0
	}

	fare := float64(BaseFare)
	if distanceKm > BaseDistanceKm {
		units := math.Ceil((distanceKm - BaseDistanceKm) / UnitDistanceKm)
		fare += units * UnitFare
	}

	if lateNight {
		fare *= NightSurcharge
	}

	return int(math.Ceil(fare/10) * 10)
}

// TaxiDuration estimates ride time in whole minutes at the late-night average speed.
func TaxiDuration(distanceKm float64) int {
	return int(math.Ceil(distanceKm / NightSpeedKmH * 60))
}

// RoadDistance approximates driving distance from a straight-line distance.
func RoadDistance(straightLineKm float64) float64 {
	return straightLineKm * RoadDetourFactor
}
