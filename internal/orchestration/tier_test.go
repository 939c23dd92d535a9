package orchestration_test

import (
	"errors"
	"testing"

	"github.com/radarhq/radar/internal/orchestration"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    orchestration.Tier
		wantErr bool
	}{
		{"quick", "quick", orchestration.TierQuick, false},
		{"standard", "standard", orchestration.TierStandard, false},
		{"deep", "deep", orchestration.TierDeep, false},
		{"unknown", "extreme", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Quick", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orchestration.ParseTier(tt.input)
			if tt.wantErr {
				if !errors.Is(err, orchestration.ErrUnknownTier) {
					t.Fatalf("ParseTier(%q) error = %v, want ErrUnknownTier", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTier(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTierOrdering(t *testing.T) {
	if orchestration.TierQuick.Rank() >= orchestration.TierStandard.Rank() {
		t.Error("quick should rank below standard")
	}
	if orchestration.TierStandard.Rank() >= orchestration.TierDeep.Rank() {
		t.Error("standard should rank below deep")
	}
}

func TestTierSatisfies(t *testing.T) {
	tests := []struct {
		name      string
		stored    orchestration.Tier
		requested orchestration.Tier
		want      bool
	}{
		{"deep satisfies quick", orchestration.TierDeep, orchestration.TierQuick, true},
		{"deep satisfies standard", orchestration.TierDeep, orchestration.TierStandard, true},
		{"deep satisfies deep", orchestration.TierDeep, orchestration.TierDeep, true},
		{"standard satisfies quick", orchestration.TierStandard, orchestration.TierQuick, true},
		{"standard satisfies standard", orchestration.TierStandard, orchestration.TierStandard, true},
		{"standard does not satisfy deep", orchestration.TierStandard, orchestration.TierDeep, false},
		{"quick satisfies quick", orchestration.TierQuick, orchestration.TierQuick, true},
		{"quick does not satisfy standard", orchestration.TierQuick, orchestration.TierStandard, false},
		{"quick does not satisfy deep", orchestration.TierQuick, orchestration.TierDeep, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stored.Satisfies(tt.requested); got != tt.want {
				t.Errorf("%v.Satisfies(%v) = %v, want %v", tt.stored, tt.requested, got, tt.want)
			}
		})
	}
}

func TestTierParams(t *testing.T) {
	tests := []struct {
		tier          orchestration.Tier
		wantModel     string
		wantSentences string
		wantTokens    int
	}{
		{orchestration.TierQuick, "gpt-4o-mini", "2-4", 150},
		{orchestration.TierStandard, "gpt-4.1-2025-04-14", "4-7", 300},
		{orchestration.TierDeep, "gpt-4.1-2025-04-14", "8-12", 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			p := tt.tier.Params()
			if p.Model != tt.wantModel {
				t.Errorf("model: got %s, want %s", p.Model, tt.wantModel)
			}
			if p.SentenceCount != tt.wantSentences {
				t.Errorf("sentence_count: got %s, want %s", p.SentenceCount, tt.wantSentences)
			}
			if p.MaxTokens != tt.wantTokens {
				t.Errorf("max_tokens: got %d, want %d", p.MaxTokens, tt.wantTokens)
			}
		})
	}
}
