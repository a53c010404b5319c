package api

import (
	"context"
	"net/http"

	"karma/internal/core"
	"karma/internal/query"
)

// ListGoals fetches the goal collection filtered and ordered per q.
func (c *Client) ListGoals(ctx context.Context, q query.GoalQuery) ([]core.Goal, error) {
	var out []core.Goal
	if err := c.do(ctx, http.MethodGet, goalsPath, q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGoal creates a savings goal and returns the server's entity.
func (c *Client) CreateGoal(ctx context.Context, draft core.GoalDraft) (core.Goal, error) {
	if err := draft.Validate(); err != nil {
		return core.Goal{}, err
	}
	var out core.Goal
	if err := c.do(ctx, http.MethodPost, goalsPath, nil, draft, &out); err != nil {
		return core.Goal{}, err
	}
	return out, nil
}

// UpdateGoal applies a partial edit and returns the whole updated goal,
// including any server-computed side effects.
func (c *Client) UpdateGoal(ctx context.Context, id string, patch core.GoalPatch) (core.Goal, error) {
	var out core.Goal
	if err := c.do(ctx, http.MethodPatch, goalPath(id), nil, patch, &out); err != nil {
		return core.Goal{}, err
	}
	return out, nil
}

// DeleteGoal removes a goal by identity.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, goalPath(id), nil, nil, nil)
}

// AddContribution moves money into a goal. The server returns the goal
// as a whole, not a delta, so a contribution that completes the goal
// comes back with its status already transitioned.
func (c *Client) AddContribution(ctx context.Context, id string, contribution core.Contribution) (core.Goal, error) {
	if err := contribution.Validate(); err != nil {
		return core.Goal{}, err
	}
	var out core.Goal
	if err := c.do(ctx, http.MethodPost, goalContributionsPath(id), nil, contribution, &out); err != nil {
		return core.Goal{}, err
	}
	return out, nil
}
