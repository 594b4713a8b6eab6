package geocode

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"googlemaps.github.io/maps"

	"go-bovine/db"
	"go-bovine/types"
)

var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// initMapsClient initializes a singleton Google Maps client.
func initMapsClient(apiKey string) (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		if apiKey == "" {
			err = fmt.Errorf("maps API key not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
	})
	if mapsClient == nil && err == nil {
		err = fmt.Errorf("maps client not initialized")
	}
	return mapsClient, err
}

// GeocodeAddress forward-geocodes a place name.
func GeocodeAddress(ctx context.Context, apiKey, address string) ([]maps.GeocodingResult, error) {
	client, err := initMapsClient(apiKey)
	if err != nil {
		return nil, err
	}

	req := &maps.GeocodingRequest{Address: address}
	results, err := client.Geocode(ctx, req)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Resolver geocodes place names mentioned in news items and caches the
// results in the locations collection so each name is looked up once.
type Resolver struct {
	store  db.SignalStore
	apiKey string
}

func NewResolver(store db.SignalStore, apiKey string) *Resolver {
	return &Resolver{store: store, apiKey: apiKey}
}

// ResolveAll ensures every name has a cached geocode entry. Disabled
// silently when no Maps key is configured; individual lookup failures
// only log.
func (r *Resolver) ResolveAll(ctx context.Context, names []string) {
	if r.apiKey == "" {
		return
	}

	for _, name := range names {
		if name == "" {
			continue
		}
		if _, err := r.store.GetLocation(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, db.ErrNotFound) {
			log.Printf("Geocode cache lookup failed for %s: %v", name, err)
			continue
		}

		results, err := GeocodeAddress(ctx, r.apiKey, name)
		if err != nil {
			log.Printf("Failed to geocode %s: %v", name, err)
			continue
		}

		loc := types.LocationData{LocationName: name}
		if len(results) == 0 {
			log.Printf("No geocode results for %s", name)
		} else {
			loc.FormattedAddress = results[0].FormattedAddress
			loc.Lat = results[0].Geometry.Location.Lat
			loc.Lng = results[0].Geometry.Location.Lng
		}

		if err := r.store.SaveLocation(ctx, loc); err != nil {
			log.Printf("Failed to cache geocode for %s: %v", name, err)
			continue
		}
		log.Printf("Cached geocode for %s", name)
	}
}
