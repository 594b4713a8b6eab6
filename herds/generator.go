// Package herds produces the current herd estimates by joining the
// fixed reference table with the latest environmental readings from the
// signal cache. Read-only over the cache; deterministic for a given
// cache state.
package herds

import (
	"context"
	"log"
	"math"
	"time"

	"go-bovine/db"
	"go-bovine/staticdata"
	"go-bovine/types"
)

// MethodologyNote is returned alongside generated herds so consumers
// know these are model estimates, not tracked positions.
const MethodologyNote = "Herd positions are estimates triangulated from satellite vegetation and methane anomalies, ground reports, and historical migration corridors. Environmental fields reflect the latest cached signal readings; headcounts and identities are fixed reference values."

// A hotspot within this many degrees (lat and lng) of a herd position
// sets the herd's fire flag.
const fireProximityDeg = 0.5

// Rainfall thresholds for the water-days adjustment: a wet week buys a
// day of water access, a dry week costs one.
const (
	wetWeekMM = 15.0
	dryWeekMM = 2.0
)

// Generate builds the current herd set from the signal cache. When no
// reading exists for a herd's region, the reference fallback values are
// used verbatim and the herd is tagged historical.
func Generate(ctx context.Context, store db.SignalStore) []types.Herd {
	fires, err := store.ListFires(ctx)
	if err != nil {
		log.Printf("Herd generator: fire lookup failed, omitting fire flags: %v", err)
		fires = nil
	}

	now := time.Now().UTC()
	out := make([]types.Herd, 0, len(staticdata.HerdRefs))
	for _, ref := range staticdata.HerdRefs {
		h := types.Herd{
			ID:          ref.ID,
			Name:        ref.Name,
			Lat:         ref.Lat,
			Lng:         ref.Lng,
			Heads:       ref.Heads,
			Region:      ref.Region,
			Trend:       ref.Trend,
			Speed:       ref.Speed,
			WaterDays:   ref.WaterDays,
			NDVI:        ref.NDVI,
			Ethnicity:   ref.Ethnicity,
			Note:        ref.Note,
			DataStatus:  types.FreshHistorical,
			LastUpdated: now,
		}

		if ndvi, err := store.GetReading(ctx, types.SignalNDVI, ref.RegionKey); err == nil {
			h.NDVI = ndvi.Value
			h.DataStatus = ndvi.Status
			h.LastUpdated = ndvi.FetchedAt
		}

		if soil, err := store.GetReading(ctx, types.SignalSoil, ref.RegionKey); err == nil {
			h.SoilMoisture = soil.Value
		}

		if rain, err := store.GetReading(ctx, types.SignalRainfall, ref.RegionKey); err == nil {
			h.WaterDays = adjustWaterDays(ref.WaterDays, rain.Value)
		}

		h.FireNearby = fireNear(ref.Lat, ref.Lng, fires)
		out = append(out, h)
	}
	return out
}

// adjustWaterDays nudges the reference water-access estimate by the
// cached 7-day rainfall accumulation for the herd's region.
func adjustWaterDays(base int, rain7d float64) int {
	switch {
	case rain7d >= wetWeekMM:
		if base <= 1 {
			return 1
		}
		return base - 1
	case rain7d < dryWeekMM:
		return base + 1
	default:
		return base
	}
}

func fireNear(lat, lng float64, fires []types.FireHotspot) bool {
	for _, f := range fires {
		if math.Abs(f.Lat-lat) <= fireProximityDeg && math.Abs(f.Lng-lng) <= fireProximityDeg {
			return true
		}
	}
	return false
}
