// Package orchestration coordinates potentially-expensive, potentially-
// concurrent AI analysis requests per capture: it deduplicates in-flight
// work, serves sufficient cached results, classifies content, fans out to
// the truth and visual analysis backends, and persists the merged outcome.
package orchestration

import "fmt"

// Tier is the cost/quality level for truth analysis. Tiers are totally
// ordered: quick < standard < deep. A result computed at a higher-or-equal
// tier always satisfies a request for a lower-or-equal tier.
type Tier string

// Known analysis tiers.
const (
	TierQuick    Tier = "quick"
	TierStandard Tier = "standard"
	TierDeep     Tier = "deep"
)

// TierParams holds the fixed backend parameters a tier maps to.
type TierParams struct {
	Model         string `json:"model"`
	SentenceCount string `json:"sentence_count"`
	MaxTokens     int    `json:"max_tokens"`
}

var tierParams = map[Tier]TierParams{
	TierQuick:    {Model: "gpt-4o-mini", SentenceCount: "2-4", MaxTokens: 150},
	TierStandard: {Model: "gpt-4.1-2025-04-14", SentenceCount: "4-7", MaxTokens: 300},
	TierDeep:     {Model: "gpt-4.1-2025-04-14", SentenceCount: "8-12", MaxTokens: 500},
}

var tierRanks = map[Tier]int{
	TierQuick:    1,
	TierStandard: 2,
	TierDeep:     3,
}

// ParseTier converts a tier name into a Tier. Unknown names are a
// configuration error, never retried.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Valid reports whether the tier is one of the known tiers.
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]
	return ok
}

// Rank returns the tier's position in the total order. Unknown tiers
// rank below every valid tier.
func (t Tier) Rank() int {
	return tierRanks[t]
}

// Satisfies reports whether a result produced at tier t is sufficient
// for a request at the given tier.
func (t Tier) Satisfies(requested Tier) bool {
	return t.Rank() >= requested.Rank()
}

// Params returns the backend parameters for the tier.
func (t Tier) Params() TierParams {
	return tierParams[t]
}

func (t Tier) String() string {
	return string(t)
}
