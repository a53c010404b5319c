package store

import (
	"context"

	"karma/internal/core"
	"karma/internal/log"
	"karma/internal/query"
)

// TransactionAPI is the slice of the remote service the transaction
// store depends on.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, q query.TransactionQuery) ([]core.Transaction, error)
	CreateTransaction(ctx context.Context, draft core.TransactionDraft) (core.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionStore mirrors the remote transaction collection.
type TransactionStore struct {
	*Collection[core.Transaction]
	api TransactionAPI
}

// NewTransactionStore creates the store; it starts empty and loading.
func NewTransactionStore(api TransactionAPI, logger *log.Logger) *TransactionStore {
	return &TransactionStore{
		Collection: newCollection[core.Transaction]("transactions", logger),
		api:        api,
	}
}

// Fetch requests the collection with the given parameters and replaces
// the cached items with the exact response. The loading flag is false
// after the call settles, whether it succeeds or fails; errors propagate
// unchanged and leave the previous items in place.
func (s *TransactionStore) Fetch(ctx context.Context, q query.TransactionQuery) error {
	seq := s.beginFetch()
	defer s.settleFetch()

	items, err := s.api.ListTransactions(ctx, q)
	if err != nil {
		return err
	}
	s.applyFetch(seq, items)
	return nil
}

// Add records a transaction remotely, then prepends the server-created
// entity. Local state is untouched on failure.
func (s *TransactionStore) Add(ctx context.Context, draft core.TransactionDraft) (core.Transaction, error) {
	created, err := s.api.CreateTransaction(ctx, draft)
	if err != nil {
		return core.Transaction{}, err
	}
	s.prepend(created)
	return created, nil
}

// Delete removes a transaction from the cache only after the remote
// delete succeeds. On failure the entry stays cached.
func (s *TransactionStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	s.removeByID(id)
	return nil
}

// Summary folds the cached collection into the dashboard totals.
func (s *TransactionStore) Summary() core.TransactionSummary {
	return core.SummarizeTransactions(s.Items())
}
