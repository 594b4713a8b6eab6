package risk

import (
	"math"
	"sort"

	"go-bovine/types"
)

// Factor weights. These sum to 1.0; the modifier is nominally in [0,1].
const (
	convergenceWeight = 0.25
	waterWeight       = 0.25
	ndviWeight        = 0.20
	weatherWeight     = 0.15
	violenceWeight    = 0.15

	// Convergence saturates at this many herds within range.
	convergenceSaturation = 3

	// Water stress ramps up as days-since-water drops below this.
	waterDaysBaseline = 5.0

	// Vegetation stress ramps up as NDVI drops below this.
	ndviBaseline = 0.5

	// Weather stress ramps up as 7-day rainfall drops below this (mm).
	rainBaseline7d = 30.0

	// Risk level thresholds, inclusive on the upper side.
	criticalThreshold = 80.0
	highThreshold     = 60.0
	mediumThreshold   = 40.0

	metersPerDegree = 111000.0
)

// flatDistanceDeg is the deliberate flat-plane approximation used for
// herd/zone proximity: Euclidean distance in coordinate-degree space.
// Kept behind this function so a geodesic upgrade is a one-line swap;
// the scoring tests are pinned to this behavior.
func flatDistanceDeg(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// LevelFor maps a 0-100 score to its categorical risk level.
func LevelFor(score float64) types.RiskLevel {
	switch {
	case score >= criticalThreshold:
		return types.RiskCritical
	case score >= highThreshold:
		return types.RiskHigh
	case score >= mediumThreshold:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Assess computes the live risk assessment for one zone given the
// current herd estimates and the zone's cached weather window (nil when
// none is available). Pure function: no state, no side effects.
func Assess(zone types.Zone, herds []types.Herd, weather *types.WeatherReading) types.AssessedZone {
	zoneRadiusDeg := float64(zone.Radius) / metersPerDegree

	var nearby []types.Herd
	for _, h := range herds {
		if flatDistanceDeg(h.Lat, h.Lng, zone.Lat, zone.Lng) < zoneRadiusDeg*2 {
			nearby = append(nearby, h)
		}
	}

	convergence := math.Min(1.0, float64(len(nearby))/convergenceSaturation)

	waterStress := 0.0
	ndviStress := 0.0
	if len(nearby) > 0 {
		totalWaterDays := 0.0
		totalNDVI := 0.0
		for _, h := range nearby {
			totalWaterDays += float64(h.WaterDays)
			totalNDVI += h.NDVI
		}
		avgWaterDays := totalWaterDays / float64(len(nearby))
		avgNDVI := totalNDVI / float64(len(nearby))
		waterStress = math.Max(0, (waterDaysBaseline-avgWaterDays)/waterDaysBaseline)
		ndviStress = math.Max(0, (ndviBaseline-avgNDVI)/ndviBaseline)
	}

	weatherStress := 0.0
	if weather != nil && len(weather.Daily.PrecipitationSum) > 0 {
		weatherStress = math.Max(0, (rainBaseline7d-weather.RainSum7d())/rainBaseline7d)
	}

	modifier := convergence*convergenceWeight +
		waterStress*waterWeight +
		ndviStress*ndviWeight +
		weatherStress*weatherWeight +
		zone.PredictionFactors["historical_violence"]*violenceWeight

	// The static prior is dampened to 70% and boosted up to 130% by
	// live conditions, then clamped.
	score := clamp(zone.RiskScore*(0.7+modifier*0.6), 0, 100)

	return types.AssessedZone{
		Zone:          zone,
		RealTimeRisk:  score,
		RealTimeLevel: LevelFor(score),
		NearbyHerds:   len(nearby),
		Factors: types.RiskFactors{
			HerdConvergence: round2(convergence),
			WaterStress:     round2(waterStress),
			NDVIStress:      round2(ndviStress),
			WeatherStress:   round2(weatherStress),
		},
	}
}

// AssessAll assesses every zone and returns the results sorted by
// descending score. The sort is stable: exact float ties keep the input
// zone order.
func AssessAll(zones []types.Zone, herds []types.Herd, weatherByZone map[string]types.WeatherReading) []types.AssessedZone {
	out := make([]types.AssessedZone, 0, len(zones))
	for _, z := range zones {
		var w *types.WeatherReading
		if r, ok := weatherByZone[z.Name]; ok {
			w = &r
		}
		out = append(out, Assess(z, herds, w))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RealTimeRisk > out[j].RealTimeRisk
	})
	return out
}
