package api

import (
	"context"
	"net/http"

	"karma/internal/core"
	"karma/internal/query"
)

// ListTransactions fetches the transaction collection filtered and
// ordered per q. The sentinel type is stripped from the encoded query.
func (c *Client) ListTransactions(ctx context.Context, q query.TransactionQuery) ([]core.Transaction, error) {
	var out []core.Transaction
	if err := c.do(ctx, http.MethodGet, transactionsPath, q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransaction records a new transaction and returns the entity as
// the server created it, identity included.
func (c *Client) CreateTransaction(ctx context.Context, draft core.TransactionDraft) (core.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return core.Transaction{}, err
	}
	var out core.Transaction
	if err := c.do(ctx, http.MethodPost, transactionsPath, nil, draft, &out); err != nil {
		return core.Transaction{}, err
	}
	return out, nil
}

// DeleteTransaction removes a transaction by identity.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, transactionPath(id), nil, nil, nil)
}
