package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/balance"
	"wrestling-booker/internal/domain"
)

// scriptedSource replays a fixed list of draws, then returns zero. Values
// must be chosen below the n of the call they feed.
type scriptedSource struct {
	vals []int
	i    int
}

func (s *scriptedSource) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i]
	s.i++
	if v >= n {
		panic(fmt.Sprintf("scripted value %d out of range for Intn(%d)", v, n))
	}
	return v
}

// countingSource counts draws without randomness.
type countingSource struct {
	calls int
}

func (s *countingSource) Intn(n int) int {
	s.calls++
	return 0
}

// fakeState is an in-memory wrestler-state collaborator. Missing wrestlers
// and fan totals that would drop below zero report as absence (nil, nil),
// matching the repository contract.
type fakeState struct {
	wrestlers map[string]*domain.Wrestler
	awards    map[string][]int
	errFor    map[string]error
}

func newFakeState(ws ...*domain.Wrestler) *fakeState {
	s := &fakeState{
		wrestlers: make(map[string]*domain.Wrestler),
		awards:    make(map[string][]int),
		errFor:    make(map[string]error),
	}
	for _, w := range ws {
		s.wrestlers[w.ID] = w
	}
	return s
}

func (s *fakeState) FindCurrentState(ctx context.Context, id string) (*domain.Wrestler, error) {
	if err := s.errFor[id]; err != nil {
		return nil, err
	}
	return s.wrestlers[id], nil
}

func (s *fakeState) FindByName(ctx context.Context, name string) (*domain.Wrestler, error) {
	for _, w := range s.wrestlers {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, nil
}

func (s *fakeState) AwardFans(ctx context.Context, id string, delta int) (*domain.Wrestler, error) {
	if err := s.errFor[id]; err != nil {
		return nil, err
	}
	w, ok := s.wrestlers[id]
	if !ok {
		return nil, nil
	}
	if w.FanWeight+delta < 0 {
		return nil, nil
	}
	w.FanWeight += delta
	s.awards[id] = append(s.awards[id], delta)
	return w, nil
}

func (s *fakeState) AddBump(ctx context.Context, id string) (*domain.Wrestler, error) {
	if err := s.errFor[id]; err != nil {
		return nil, err
	}
	w, ok := s.wrestlers[id]
	if !ok {
		return nil, nil
	}
	w.Bumps++
	return w, nil
}

type fakeAchievements struct {
	unlocked []string
}

func (a *fakeAchievements) Unlock(ctx context.Context, wrestlerID, code string) {
	a.unlocked = append(a.unlocked, wrestlerID+":"+code)
}

type fakeRules struct {
	rules map[string]*domain.Rule
	err   error
}

func (r *fakeRules) FindByName(ctx context.Context, name string) (*domain.Rule, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rules[name], nil
}

func testTables() *balance.Tables {
	tables, err := balance.Load("")
	if err != nil {
		panic(err)
	}
	return tables
}

func testWrestler(id, name string, fanWeight int, tier domain.Tier) *domain.Wrestler {
	return &domain.Wrestler{
		ID:         id,
		Name:       name,
		FanWeight:  fanWeight,
		Tier:       tier,
		HasAccount: true,
	}
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
