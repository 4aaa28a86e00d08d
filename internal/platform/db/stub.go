package db

import "context"

// StubTxManager is a test double that runs fn without a real transaction.
type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*StubTxManager)(nil)

func (s *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.RunInTxFunc != nil {
		return s.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
