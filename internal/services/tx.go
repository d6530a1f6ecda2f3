package services

import "context"

//go:generate mockgen -source=tx.go -destination=tx_mock_test.go -package=services

// TxManager runs functions inside a database transaction and defers side effects
// until that transaction commits.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	AfterCommit(ctx context.Context, fn func(ctx context.Context))
}
