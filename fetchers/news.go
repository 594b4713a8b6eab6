package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"go-bovine/db"
	"go-bovine/geocode"
	"go-bovine/staticdata"
	"go-bovine/types"
)

const gnewsBaseURL = "https://gnews.io/api/v4/search"

// newsQueries are run against GNews each cycle; results are merged.
var newsQueries = []string{
	"South Sudan cattle",
	"South Sudan conflict",
	"South Sudan herders",
	"Jonglei violence",
}

// NewsFetcher pulls South Sudan coverage from GNews and replaces the
// news collection. With no API key, or when every query fails, the
// curated article set is cached instead so the endpoint always has
// content. New place names are geocoded after a successful pull.
type NewsFetcher struct {
	store    db.SignalStore
	client   *http.Client
	baseURL  string
	apiKey   string
	resolver *geocode.Resolver
}

func NewNewsFetcher(store db.SignalStore, apiKey string, resolver *geocode.Resolver) *NewsFetcher {
	return &NewsFetcher{
		store:    store,
		client:   newHTTPClient(30 * time.Second),
		baseURL:  gnewsBaseURL,
		apiKey:   apiKey,
		resolver: resolver,
	}
}

func (f *NewsFetcher) Name() string { return "news" }

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type gnewsResponse struct {
	Articles []gnewsArticle `json:"articles"`
}

func (f *NewsFetcher) Fetch(ctx context.Context) (string, error) {
	items := f.fetchLive(ctx)

	outcome := fmt.Sprintf("replaced with %d live articles", len(items))
	if len(items) == 0 {
		items = append([]types.NewsItem(nil), staticdata.CuratedNews...)
		for i := range items {
			items[i].ID = uuid.NewString()
		}
		outcome = fmt.Sprintf("upstream unavailable, cached %d curated articles", len(items))
	}

	if err := f.store.ReplaceNews(ctx, items); err != nil {
		return "", fmt.Errorf("replacing news collection: %w", err)
	}

	if f.resolver != nil {
		names := make([]string, 0, len(items))
		for _, n := range items {
			names = append(names, n.Location)
		}
		f.resolver.ResolveAll(ctx, names)
	}

	return outcome, nil
}

// fetchLive runs every news query and merges results, deduplicating by
// title. Individual query failures only log.
func (f *NewsFetcher) fetchLive(ctx context.Context) []types.NewsItem {
	if f.apiKey == "" {
		return nil
	}

	seen := map[string]bool{}
	var items []types.NewsItem
	for _, q := range newsQueries {
		params := url.Values{}
		params.Set("q", q)
		params.Set("lang", "en")
		params.Set("max", "5")
		params.Set("apikey", f.apiKey)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
		if err != nil {
			log.Printf("Building GNews request for %q failed: %v", q, err)
			continue
		}
		resp, err := f.client.Do(req)
		if err != nil {
			log.Printf("GNews request for %q failed: %v", q, err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Printf("GNews returned status %d for %q", resp.StatusCode, q)
			continue
		}
		var payload gnewsResponse
		err = json.NewDecoder(resp.Body).Decode(&payload)
		resp.Body.Close()
		if err != nil {
			log.Printf("Decoding GNews response for %q failed: %v", q, err)
			continue
		}

		for _, a := range payload.Articles {
			if a.Title == "" || seen[a.Title] {
				continue
			}
			seen[a.Title] = true
			items = append(items, types.NewsItem{
				ID:          uuid.NewString(),
				Title:       a.Title,
				Source:      a.Source.Name,
				URL:         a.URL,
				PublishedAt: a.PublishedAt,
				Summary:     a.Description,
				// Crude but stable: articles from targeted queries are
				// all relevant, earlier queries more so.
				RelevanceScore: 0.9,
				Location:       "South Sudan",
				Keywords:       []string{q},
				Status:         types.FreshLive,
			})
		}
	}
	return items
}
