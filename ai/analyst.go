// Package ai formats the current system state into a context document
// and passes natural-language queries through to OpenAI. This is the
// one path in the service where an upstream failure is surfaced to the
// caller, since there is no meaningful fallback for a chat answer.
package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"

	"go-bovine/db"
	"go-bovine/herds"
	"go-bovine/risk"
	"go-bovine/staticdata"
	"go-bovine/types"
)

// Analyst answers natural-language questions about the current herd and
// risk picture.
type Analyst struct {
	client *openai.Client
	store  db.SignalStore
}

func NewAnalyst(apiKey string, store db.SignalStore) *Analyst {
	return &Analyst{
		client: openai.NewClient(apiKey),
		store:  store,
	}
}

// Analyze builds the context document from the live cache and assessed
// zones, sends the query, and returns the model's text verbatim. The
// exchange is recorded in the analysis history.
func (a *Analyst) Analyze(ctx context.Context, query string) (string, error) {
	systemPrompt := a.buildContext(ctx)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		MaxTokens: 1000,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	answer := resp.Choices[0].Message.Content

	rec := types.AnalysisRecord{
		ID:        uuid.NewString(),
		Query:     query,
		Response:  answer,
		Timestamp: time.Now().UTC(),
	}
	if err := a.store.SaveAnalysis(ctx, rec); err != nil {
		// History is best-effort; the answer still goes back.
		log.Printf("Warning: failed to save analysis record: %v", err)
	}

	return answer, nil
}

// buildContext assembles the system prompt from current cache contents.
func (a *Analyst) buildContext(ctx context.Context) string {
	herdList := herds.Generate(ctx, a.store)

	weatherByZone := map[string]types.WeatherReading{}
	if readings, err := a.store.ListWeather(ctx); err == nil {
		for _, w := range readings {
			weatherByZone[w.Zone] = w
		}
	}
	assessed := risk.AssessAll(staticdata.ConflictZones, herdList, weatherByZone)

	var rain14d float64
	dryDays := 0
	totalDays := 0
	for _, w := range weatherByZone {
		for _, mm := range w.Daily.PrecipitationSum {
			rain14d += mm
			if mm < 1 {
				dryDays++
			}
			totalDays++
		}
		break // one representative window is enough for the summary
	}

	var b strings.Builder
	b.WriteString("You are BOVINE, a cattle movement intelligence system for South Sudan used by the United Nations.\n")
	b.WriteString("You have access to real-time environmental data, tracked herd positions, and conflict prediction models.\n\n")

	fmt.Fprintf(&b, "WEATHER (Open-Meteo, South Sudan):\n- Forecast window rainfall: %.1fmm\n- Dry days in window: %d/%d\n\n", rain14d, dryDays, totalDays)

	fmt.Fprintf(&b, "TRACKED HERDS (%d active):\n", len(herdList))
	for _, h := range herdList {
		fmt.Fprintf(&b, "• %s [%s]: %d cattle, %s\n  Direction: %s @ %.0fkm/day | NDVI: %.2f | Water access: %d days\n  Note: %s\n",
			h.Name, h.Ethnicity, h.Heads, h.Region, h.Trend, h.Speed, h.NDVI, h.WaterDays, h.Note)
	}

	b.WriteString("\nGRAZING CONDITIONS BY REGION:\n")
	for _, r := range staticdata.GrazingRegions {
		fmt.Fprintf(&b, "• %s: NDVI %.2f, Water %s, Trend %s, Pressure %s\n", r.Name, r.NDVI, r.Water, r.Trend, r.Pressure)
	}

	b.WriteString("\nACTIVE WATER SOURCES:\n")
	for _, w := range staticdata.WaterSources {
		fmt.Fprintf(&b, "• %s [%s]: %d%% reliability\n", w.Name, w.Type, int(w.Reliability*100))
	}

	b.WriteString("\nCONFLICT ZONES (High Risk):\n")
	highRisk := false
	for _, z := range assessed {
		if z.RealTimeRisk >= 60 {
			fmt.Fprintf(&b, "• %s: %.0f%% risk (%s)\n", z.Name, z.RealTimeRisk, z.RealTimeLevel)
			highRisk = true
		}
	}
	if !highRisk {
		b.WriteString("No critical zones currently\n")
	}

	b.WriteString("\nHISTORICAL CONTEXT: Recent conflicts include cattle raids in Pibor (Murle-Nuer, 45 casualties), armed clashes in Malakal (Shilluk-Nuer), and grazing disputes in Tonj (Dinka sub-clans).\n\n")
	b.WriteString("CONTEXT: In South Sudan cattle are currency, social capital, and survival. The Mundari, Dinka, Nuer, Murle, and Shilluk peoples all rely on cattle. Movement is driven primarily by water availability, pasture quality (NDVI), and seasonal patterns. Climate change has disrupted traditional corridors.\n\n")
	b.WriteString("CRITICAL: Cattle movement predicts violence, displacement, and famine. The UN cares because:\n- Cows predict where people will die\n- Cows predict where aid will be needed\n- Cows predict when violence will erupt\n- Cows move before bullets do\n\n")
	b.WriteString("Be analytical, direct, and brief. Use bullet points. Quantify predictions where possible. Think in systems and second/third-order effects. When asked about conflict, use the historical data patterns and current herd convergence factors.")

	return b.String()
}
