package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bovine/types"
)

func testZone(score, violence float64) types.Zone {
	return types.Zone{
		ID:        "z1",
		Name:      "Test Corridor",
		Lat:       7.0,
		Lng:       30.0,
		Radius:    111000, // 1 degree, so the nearby range is 2 degrees
		RiskScore: score,
		PredictionFactors: map[string]float64{
			"historical_violence": violence,
		},
	}
}

func herdAt(lat, lng float64, waterDays int, ndvi float64) types.Herd {
	return types.Herd{Lat: lat, Lng: lng, WaterDays: waterDays, NDVI: ndvi}
}

func dryWeather() *types.WeatherReading {
	return &types.WeatherReading{
		Zone:  "Test Corridor",
		Daily: types.WeatherDaily{PrecipitationSum: []float64{0, 0, 0, 0, 0, 0, 0}},
	}
}

func TestLevelBoundaries(t *testing.T) {
	assert.Equal(t, types.RiskCritical, LevelFor(100))
	assert.Equal(t, types.RiskCritical, LevelFor(80))
	assert.Equal(t, types.RiskHigh, LevelFor(79.9))
	assert.Equal(t, types.RiskHigh, LevelFor(60))
	assert.Equal(t, types.RiskMedium, LevelFor(59.9))
	assert.Equal(t, types.RiskMedium, LevelFor(40))
	assert.Equal(t, types.RiskLow, LevelFor(39.9))
	assert.Equal(t, types.RiskLow, LevelFor(0))
}

// Full-stress scenario against a fixed prior: three converged herds
// with zero water and vegetation, a fully dry week, violence 0.5.
func TestAssessFullStressScore(t *testing.T) {
	zone := testZone(50, 0.5)
	herds := []types.Herd{
		herdAt(7.0, 30.0, 0, 0),
		herdAt(7.1, 30.1, 0, 0),
		herdAt(6.9, 29.9, 0, 0),
	}

	got := Assess(zone, herds, dryWeather())

	// modifier = 1*.25 + 1*.25 + 1*.20 + 1*.15 + 0.5*.15 = 0.925
	// score    = 50 * (0.7 + 0.925*0.6) = 62.75
	assert.InDelta(t, 62.75, got.RealTimeRisk, 1e-9)
	assert.Equal(t, types.RiskHigh, got.RealTimeLevel)
	assert.Equal(t, 3, got.NearbyHerds)
	assert.InDelta(t, 1.0, got.Factors.HerdConvergence, 1e-9)
	assert.InDelta(t, 1.0, got.Factors.WaterStress, 1e-9)
	assert.InDelta(t, 1.0, got.Factors.NDVIStress, 1e-9)
	assert.InDelta(t, 1.0, got.Factors.WeatherStress, 1e-9)
}

func TestAssessNoNearbyHerds(t *testing.T) {
	zone := testZone(50, 0)
	// Herd well outside the 2-degree range.
	herds := []types.Herd{herdAt(11.0, 30.0, 0, 0)}

	got := Assess(zone, herds, nil)

	assert.Equal(t, 0, got.NearbyHerds)
	assert.Zero(t, got.Factors.HerdConvergence)
	assert.Zero(t, got.Factors.WaterStress)
	assert.Zero(t, got.Factors.NDVIStress)
	assert.Zero(t, got.Factors.WeatherStress)
	// Pure dampened prior: 50 * 0.7.
	assert.InDelta(t, 35.0, got.RealTimeRisk, 1e-9)
}

func TestConvergenceSaturation(t *testing.T) {
	zone := testZone(50, 0)
	mk := func(n int) []types.Herd {
		hs := make([]types.Herd, n)
		for i := range hs {
			hs[i] = herdAt(7.0, 30.0, 5, 0.5) // no water/ndvi stress
		}
		return hs
	}

	for _, tc := range []struct {
		n    int
		want float64
	}{
		{0, 0}, {1, 1.0 / 3.0}, {2, 2.0 / 3.0}, {3, 1}, {4, 1}, {10, 1},
	} {
		got := Assess(zone, mk(tc.n), nil)
		assert.InDelta(t, tc.want, got.Factors.HerdConvergence, 0.005, "n=%d", tc.n)
	}
}

func TestScoreClampedToRange(t *testing.T) {
	herds := []types.Herd{
		herdAt(7.0, 30.0, 0, 0),
		herdAt(7.0, 30.0, 0, 0),
		herdAt(7.0, 30.0, 0, 0),
	}

	// Maximal prior and full stress would exceed 100 unclamped.
	high := Assess(testZone(100, 1.0), herds, dryWeather())
	assert.Equal(t, 100.0, high.RealTimeRisk)
	assert.Equal(t, types.RiskCritical, high.RealTimeLevel)

	// Pathological inputs never push the score negative.
	low := Assess(testZone(0, 0), []types.Herd{herdAt(7.0, 30.0, 99, 5.0)}, nil)
	assert.GreaterOrEqual(t, low.RealTimeRisk, 0.0)
	assert.LessOrEqual(t, low.RealTimeRisk, 100.0)
}

func TestAssessIsDeterministic(t *testing.T) {
	zone := testZone(72, 0.8)
	herds := []types.Herd{
		herdAt(7.2, 30.1, 2, 0.31),
		herdAt(6.8, 29.8, 4, 0.44),
	}
	w := dryWeather()

	first := Assess(zone, herds, w)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Assess(zone, herds, w))
	}
}

func TestAssessAllSortedDescendingStable(t *testing.T) {
	zones := []types.Zone{
		testZone(40, 0),
		testZone(90, 0),
		testZone(40, 0), // exact tie with the first zone
	}
	zones[0].ID, zones[1].ID, zones[2].ID = "a", "b", "c"

	got := AssessAll(zones, nil, nil)

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].RealTimeRisk, got[i].RealTimeRisk)
	}
	// Ties keep input order.
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}
