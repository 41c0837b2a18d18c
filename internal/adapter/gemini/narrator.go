package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mesa-planner/internal/core/domain"
	"mesa-planner/internal/core/port"
)

// Narrator writes report narratives and competitor summaries with a text
// generator.
type Narrator struct {
	gen Generator
}

var (
	_ port.NarrativeGenerator   = (*Narrator)(nil)
	_ port.CompetitorSummarizer = (*Narrator)(nil)
)

// NewNarrator creates a Narrator.
func NewNarrator(gen Generator) *Narrator {
	return &Narrator{gen: gen}
}

const narrativeInstructions = `You are a senior paid-media strategist. You receive a campaign plan as JSON: the brief, the budget allocation, projected KPIs per platform and in total, anomalies, corrections and the allocation trace. All numbers are final; never recompute or contradict them.

Respond with a single JSON object and nothing else, using exactly these keys:
"narrative": 2-4 sentences summarising the plan,
"recommendations": 3-5 short actionable strings,
"explainability": strings explaining what drives the projected CPM, CTR and CVR,
"anomalies": an array of {"scope","kpi","issue","severity","message","expected","actual"} for anything implausible you notice (may be empty),
"uiWarnings": short strings the user should see before launching (may be empty),
"confidence": a number between 0 and 1.

Amounts are in %s.

Plan:
%s`

// GenerateContent asks the model for the narrative part of a report.
func (n *Narrator) GenerateContent(ctx context.Context, payload domain.NarrativePayload) (*domain.NarrativeContent, error) {
	plan, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	text, err := n.gen.Generate(ctx, fmt.Sprintf(narrativeInstructions, payload.Currency, plan))
	if err != nil {
		return nil, err
	}

	var content domain.NarrativeContent
	if err := json.Unmarshal([]byte(stripFence(text)), &content); err != nil {
		return nil, fmt.Errorf("parse narrative: %w", err)
	}
	if strings.TrimSpace(content.Narrative) == "" {
		return nil, errors.New("parse narrative: empty narrative")
	}
	return &content, nil
}

// Summarize compares the plan with how competitors in the industry usually
// split their spend.
func (n *Narrator) Summarize(ctx context.Context, industry string, split map[string]float64, kpis domain.KpiReport) (string, error) {
	var total float64
	for _, p := range kpis.PerPlatform {
		total += p.Budget
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Typical competitor spend split in the %s industry:\n", industry)
	for _, platform := range sortedKeys(split) {
		fmt.Fprintf(&b, "- %s: %.0f%%\n", platform, split[platform]*100)
	}
	b.WriteString("This plan:\n")
	for _, p := range kpis.PerPlatform {
		share := 0.0
		if total > 0 {
			share = p.Budget / total * 100
		}
		fmt.Fprintf(&b, "- %s: %.0f%% of budget, ROAS %.2f\n", p.Platform, share, p.ROAS)
	}
	b.WriteString("\nIn at most three sentences of plain text, explain how this plan differs from the competitor split and what that means. No markdown.")

	text, err := n.gen.Generate(ctx, b.String())
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(stripFence(text))
	if text == "" {
		return "", errNoContent
	}
	return text, nil
}

// stripFence removes a surrounding markdown code fence, which models add
// even when asked not to.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
