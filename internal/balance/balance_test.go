package balance

import (
	"os"
	"path/filepath"
	"testing"

	"wrestling-booker/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	tables, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if tables.TierPolicy != "match" {
		t.Fatalf("default tier_policy = %q, want match", tables.TierPolicy)
	}
	if tables.LoserPolicy != LoserStandard {
		t.Fatalf("default loser_policy = %q, want %q", tables.LoserPolicy, LoserStandard)
	}
	if tables.InjuryPenalty != 3 {
		t.Fatalf("default injury_penalty = %d, want 3", tables.InjuryPenalty)
	}
	if tables.DefaultNarrativeWeight != 50 {
		t.Fatalf("default narrative weight = %d, want 50", tables.DefaultNarrativeWeight)
	}
	if tables.ContenderFee != 5000 {
		t.Fatalf("default contender_fee = %d, want 5000", tables.ContenderFee)
	}
}

func TestLaddersAreMonotonicAndComplete(t *testing.T) {
	tables, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for name, ladder := range tables.TierLadders {
		if len(ladder) != domain.TierCount {
			t.Fatalf("ladder %q has %d steps, want %d", name, len(ladder), domain.TierCount)
		}
		for i := 1; i < len(ladder); i++ {
			if ladder[i] < ladder[i-1] {
				t.Fatalf("ladder %q is not monotonic: %v", name, ladder)
			}
		}
	}
}

func TestLoadOverlayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	overlay := "loser_policy: backlash\ncontender_fee: 2500\n"
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if tables.LoserPolicy != LoserBacklash {
		t.Fatalf("loser_policy = %q, want %q", tables.LoserPolicy, LoserBacklash)
	}
	if tables.ContenderFee != 2500 {
		t.Fatalf("contender_fee = %d, want 2500", tables.ContenderFee)
	}
	// untouched values keep their defaults
	if tables.TierPolicy != "match" {
		t.Fatalf("tier_policy = %q, want match", tables.TierPolicy)
	}
}

func TestLoadRejectsBadTables(t *testing.T) {
	tcs := map[string]string{
		"non-monotonic ladder": "tier_ladders:\n  match: [0, 4, 2, 6, 8, 10]\n  segment: [0, 4, 8, 12, 16, 20]\n",
		"short ladder":         "tier_ladders:\n  match: [0, 2, 4]\n  segment: [0, 4, 8, 12, 16, 20]\n",
		"unknown loser policy": "loser_policy: generous\n",
		"missing tier policy":  "tier_policy: nonsense\n",
		"negative fee":         "contender_fee: -1\n",
	}
	for name, content := range tcs {
		path := filepath.Join(t.TempDir(), "balance.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write overlay: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: Load accepted invalid tables", name)
		}
	}
}
