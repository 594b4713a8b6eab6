package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/xrpc"
	"github.com/google/uuid"

	"go-bovine/db"
	"go-bovine/types"
)

const (
	bskyHost     = "https://public.api.bsky.app"
	searchMethod = "app.bsky.feed.searchPosts"
	searchQuery  = "South Sudan cattle"
	searchLimit  = 25
)

// ReportsFetcher pulls recent public social posts mentioning South
// Sudan cattle movements from the Bluesky search API and replaces the
// field_reports collection. Unauthenticated public endpoint.
type ReportsFetcher struct {
	store db.SignalStore
	xrpcc *xrpc.Client
}

func NewReportsFetcher(store db.SignalStore) *ReportsFetcher {
	return &ReportsFetcher{
		store: store,
		xrpcc: &xrpc.Client{
			Client: &http.Client{Timeout: 10 * time.Second},
			Host:   bskyHost,
		},
	}
}

func (f *ReportsFetcher) Name() string { return "field_reports" }

// bskySearchResponse is the subset of the searchPosts response the
// fetcher needs.
type bskySearchResponse struct {
	Posts []struct {
		URI    string `json:"uri"`
		Author struct {
			Handle      string `json:"handle"`
			DisplayName string `json:"displayName"`
		} `json:"author"`
		Record struct {
			Text      string `json:"text"`
			CreatedAt string `json:"createdAt"`
		} `json:"record"`
		IndexedAt string `json:"indexedAt"`
	} `json:"posts"`
}

func (f *ReportsFetcher) Fetch(ctx context.Context) (string, error) {
	params := map[string]interface{}{
		"q":     searchQuery,
		"limit": searchLimit,
	}

	var out bskySearchResponse
	if err := f.xrpcc.Do(ctx, xrpc.Query, "json", searchMethod, params, nil, &out); err != nil {
		return "", fmt.Errorf("bluesky search failed: %w", err)
	}

	reports := make([]types.FieldReport, 0, len(out.Posts))
	for _, p := range out.Posts {
		if p.Record.Text == "" {
			continue
		}
		postedAt := p.Record.CreatedAt
		if postedAt == "" {
			postedAt = p.IndexedAt
		}
		reports = append(reports, types.FieldReport{
			ID:          uuid.NewString(),
			Handle:      p.Author.Handle,
			DisplayName: p.Author.DisplayName,
			Text:        p.Record.Text,
			PostedAt:    postedAt,
			URI:         p.URI,
		})
	}

	if err := f.store.ReplaceReports(ctx, reports); err != nil {
		return "", fmt.Errorf("replacing field reports: %w", err)
	}
	return fmt.Sprintf("replaced with %d reports", len(reports)), nil
}
