// Package fetchers holds one fetch-and-normalize routine per upstream
// signal source. Every routine calls its upstream with a bounded
// timeout, validates the response, and writes tagged records into the
// signal cache. On failure the previous cache contents are left
// untouched and the error is reported to the scheduler as a degraded
// outcome; nothing here is ever fatal.
package fetchers

import (
	"context"
	"net/http"
	"time"

	"go-bovine/config"
	"go-bovine/db"
	"go-bovine/geocode"
)

// Fetcher is one registered fetch-and-normalize routine. Fetch returns
// a short human-readable outcome message on success.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

// All builds the full fetcher registry the scheduler fans out over.
func All(store db.SignalStore, cfg config.Config) []Fetcher {
	return []Fetcher{
		NewWeatherFetcher(store),
		NewSoilFetcher(store),
		NewRainfallFetcher(store),
		NewNDVIFetcher(store),
		NewFireFetcher(store, cfg.FirmsMapKey),
		NewConflictFetcher(store, cfg.ACLEDKey, cfg.ACLEDEmail),
		NewNewsFetcher(store, cfg.GNewsKey, geocode.NewResolver(store, cfg.MapsKey)),
		NewReportsFetcher(store),
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
