package store

import (
	"context"

	"karma/internal/core"
	"karma/internal/log"
	"karma/internal/query"
)

// GoalAPI is the slice of the remote service the goal store depends on.
type GoalAPI interface {
	ListGoals(ctx context.Context, q query.GoalQuery) ([]core.Goal, error)
	CreateGoal(ctx context.Context, draft core.GoalDraft) (core.Goal, error)
	UpdateGoal(ctx context.Context, id string, patch core.GoalPatch) (core.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	AddContribution(ctx context.Context, id string, contribution core.Contribution) (core.Goal, error)
}

// GoalStore mirrors the remote goal collection.
type GoalStore struct {
	*Collection[core.Goal]
	api GoalAPI
}

// NewGoalStore creates the store; it starts empty and loading.
func NewGoalStore(api GoalAPI, logger *log.Logger) *GoalStore {
	return &GoalStore{
		Collection: newCollection[core.Goal]("goals", logger),
		api:        api,
	}
}

// Fetch requests the collection with the given parameters and replaces
// the cached items wholesale. Loading settles false either way; errors
// propagate unchanged with the previous items left in place.
func (s *GoalStore) Fetch(ctx context.Context, q query.GoalQuery) error {
	seq := s.beginFetch()
	defer s.settleFetch()

	items, err := s.api.ListGoals(ctx, q)
	if err != nil {
		return err
	}
	s.applyFetch(seq, items)
	return nil
}

// Add creates a goal remotely, then prepends the server's entity.
func (s *GoalStore) Add(ctx context.Context, draft core.GoalDraft) (core.Goal, error) {
	created, err := s.api.CreateGoal(ctx, draft)
	if err != nil {
		return core.Goal{}, err
	}
	s.prepend(created)
	return created, nil
}

// Edit applies a partial edit remotely and swaps the cached entry for
// the whole returned goal. Replacement, not a field merge: server-side
// derived fields come back with the entity.
func (s *GoalStore) Edit(ctx context.Context, id string, patch core.GoalPatch) (core.Goal, error) {
	updated, err := s.api.UpdateGoal(ctx, id, patch)
	if err != nil {
		return core.Goal{}, err
	}
	s.replaceByID(updated)
	return updated, nil
}

// AddContribution advances a goal and replaces the cached entry with
// the returned goal, so a contribution that completes the goal lands
// with status already transitioned.
func (s *GoalStore) AddContribution(ctx context.Context, id string, contribution core.Contribution) (core.Goal, error) {
	updated, err := s.api.AddContribution(ctx, id, contribution)
	if err != nil {
		return core.Goal{}, err
	}
	s.replaceByID(updated)
	return updated, nil
}

// Delete removes a goal from the cache only after the remote delete
// succeeds. On failure the entry stays cached.
func (s *GoalStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.removeByID(id)
	return nil
}

// Summary folds the cached collection into the dashboard aggregates.
func (s *GoalStore) Summary() core.GoalSummary {
	return core.SummarizeGoals(s.Items())
}
