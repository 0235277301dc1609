package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/domain"
)

type memRoster struct {
	wrestlers map[string]*domain.Wrestler
	injuries  map[string]*domain.Injury
	upserts   int
}

func newMemRoster(ws ...*domain.Wrestler) *memRoster {
	r := &memRoster{
		wrestlers: make(map[string]*domain.Wrestler),
		injuries:  make(map[string]*domain.Injury),
	}
	for _, w := range ws {
		r.wrestlers[w.ID] = w
	}
	return r
}

func (r *memRoster) FindCurrentState(_ context.Context, id string) (*domain.Wrestler, error) {
	w, ok := r.wrestlers[id]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

func (r *memRoster) ActiveInjuries(_ context.Context, wrestlerID string) ([]domain.Injury, error) {
	var out []domain.Injury
	for _, inj := range r.injuries {
		if inj.WrestlerID == wrestlerID && inj.Active() {
			out = append(out, *inj)
		}
	}
	return out, nil
}

func (r *memRoster) List(_ context.Context, limit int) ([]domain.Wrestler, error) {
	var out []domain.Wrestler
	for _, w := range r.wrestlers {
		if len(out) == limit {
			break
		}
		out = append(out, *w)
	}
	return out, nil
}

func (r *memRoster) Upsert(_ context.Context, w *domain.Wrestler) error {
	if w.ID == "" {
		w.ID = "generated-id"
	}
	copied := *w
	r.wrestlers[w.ID] = &copied
	r.upserts++
	return nil
}

func (r *memRoster) RecordInjury(_ context.Context, injury *domain.Injury) error {
	if injury.ID == "" {
		injury.ID = "inj-generated"
	}
	copied := *injury
	r.injuries[injury.ID] = &copied
	return nil
}

func (r *memRoster) HealInjury(_ context.Context, injuryID string) error {
	if inj, ok := r.injuries[injuryID]; ok && inj.Active() {
		now := time.Now()
		inj.HealedAt = &now
	}
	return nil
}

type memAchievements struct {
	byWrestler map[string][]domain.Achievement
}

func (a *memAchievements) ListByWrestler(_ context.Context, wrestlerID string) ([]domain.Achievement, error) {
	return a.byWrestler[wrestlerID], nil
}

func newRosterService(roster *memRoster) *RosterService {
	achievements := &memAchievements{byWrestler: map[string][]domain.Achievement{
		"w1": {{ID: "a1", WrestlerID: "w1", Code: "PERFECT_SEGMENT"}},
	}}
	return NewRosterService(roster, achievements, zerolog.Nop())
}

func TestGetWrestlerProfile(t *testing.T) {
	roster := newMemRoster(testWrestler("w1", "Apex Kid", 100, domain.TierMidcarder))
	roster.injuries["inj-1"] = &domain.Injury{ID: "inj-1", WrestlerID: "w1", Description: "bad knee"}
	svc := newRosterService(roster)

	profile, err := svc.GetWrestler(context.Background(), "w1")
	if err != nil {
		t.Fatalf("GetWrestler: %v", err)
	}
	if profile == nil {
		t.Fatal("expected a profile")
	}
	if profile.Wrestler.Name != "Apex Kid" {
		t.Errorf("name = %q", profile.Wrestler.Name)
	}
	if len(profile.Injuries) != 1 || profile.Injuries[0].ID != "inj-1" {
		t.Errorf("injuries = %+v, want the one active injury", profile.Injuries)
	}
	if len(profile.Achievements) != 1 {
		t.Errorf("achievements = %+v, want one", profile.Achievements)
	}

	missing, err := svc.GetWrestler(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetWrestler miss: %v", err)
	}
	if missing != nil {
		t.Error("unknown wrestler should return nil profile")
	}
}

func TestUpsertWrestlerValidatesName(t *testing.T) {
	roster := newMemRoster()
	svc := newRosterService(roster)

	err := svc.UpsertWrestler(context.Background(), &domain.Wrestler{Name: "   "})
	if !errors.Is(err, ErrInvalidWrestler) {
		t.Fatalf("err = %v, want ErrInvalidWrestler", err)
	}
	if roster.upserts != 0 {
		t.Error("blank name must not reach the store")
	}

	w := &domain.Wrestler{Name: " Apex Kid ", FanWeight: 100, Tier: domain.TierRiser}
	if err := svc.UpsertWrestler(context.Background(), w); err != nil {
		t.Fatalf("UpsertWrestler: %v", err)
	}
	if w.Name != "Apex Kid" {
		t.Errorf("name not trimmed: %q", w.Name)
	}
	if roster.upserts != 1 {
		t.Errorf("upserts = %d, want 1", roster.upserts)
	}
	stored, _ := svc.GetWrestler(context.Background(), w.ID)
	if stored == nil {
		t.Fatal("upserted wrestler not readable back")
	}
}

func TestRecordInjuryRequiresKnownWrestler(t *testing.T) {
	roster := newMemRoster(testWrestler("w1", "Apex Kid", 100, domain.TierMidcarder))
	svc := newRosterService(roster)

	err := svc.RecordInjury(context.Background(), &domain.Injury{WrestlerID: "ghost", Description: "torn ear"})
	if !errors.Is(err, ErrUnknownWrestler) {
		t.Fatalf("err = %v, want ErrUnknownWrestler", err)
	}
	if len(roster.injuries) != 0 {
		t.Error("injury stored for unknown wrestler")
	}

	injury := &domain.Injury{WrestlerID: "w1", Description: "bad knee"}
	if err := svc.RecordInjury(context.Background(), injury); err != nil {
		t.Fatalf("RecordInjury: %v", err)
	}
	if injury.ID == "" {
		t.Error("injury ID not assigned")
	}

	profile, _ := svc.GetWrestler(context.Background(), "w1")
	if len(profile.Injuries) != 1 {
		t.Fatalf("active injuries = %d, want 1", len(profile.Injuries))
	}
}

func TestHealInjuryClearsActiveList(t *testing.T) {
	roster := newMemRoster(testWrestler("w1", "Apex Kid", 100, domain.TierMidcarder))
	svc := newRosterService(roster)

	injury := &domain.Injury{WrestlerID: "w1", Description: "bad knee"}
	if err := svc.RecordInjury(context.Background(), injury); err != nil {
		t.Fatalf("RecordInjury: %v", err)
	}
	if err := svc.HealInjury(context.Background(), injury.ID); err != nil {
		t.Fatalf("HealInjury: %v", err)
	}

	profile, err := svc.GetWrestler(context.Background(), "w1")
	if err != nil {
		t.Fatalf("GetWrestler: %v", err)
	}
	if len(profile.Injuries) != 0 {
		t.Errorf("active injuries = %+v, want none after healing", profile.Injuries)
	}

	// healing again is a harmless no-op
	if err := svc.HealInjury(context.Background(), injury.ID); err != nil {
		t.Fatalf("repeat HealInjury: %v", err)
	}
}
