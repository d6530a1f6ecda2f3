package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/room-booking/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// txState is the transaction carried by a context and the hooks waiting for its commit.
type txState struct {
	tx          *sqlx.Tx
	afterCommit []func(ctx context.Context)
}

// ContextWithTx stores a transaction in the context
func ContextWithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, &txState{tx: tx})
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	if st, ok := ctx.Value(txKey).(*txState); ok {
		return st.tx
	}
	return nil
}

// AfterCommit defers fn until the transaction carried by ctx commits.
// Without a transaction fn runs immediately. Hooks of a rolled back transaction never run.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if st, ok := ctx.Value(txKey).(*txState); ok {
		st.afterCommit = append(st.afterCommit, fn)
		return
	}
	fn(ctx)
}

// RunAfterCommit runs, with ctx, the hooks registered on the transaction of txCtx.
// It is called once the transaction has committed.
func RunAfterCommit(txCtx, ctx context.Context) {
	st, ok := txCtx.Value(txKey).(*txState)
	if !ok {
		return
	}
	hooks := st.afterCommit
	st.afterCommit = nil
	for _, fn := range hooks {
		fn(ctx)
	}
}

// executor returns the transaction carried by ctx, falling back to the pool.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// TxManager runs units of work inside a database transaction.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx runs fn inside a transaction. A transaction already in ctx is joined;
// otherwise a new one is started, committed when fn succeeds and rolled back otherwise.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withinTx(ctx, m.db, fn)
}

// AfterCommit defers fn until the transaction carried by ctx commits.
func (m *TxManager) AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	AfterCommit(ctx, fn)
}

func withinTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context) error) error {
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	txCtx := ContextWithTx(ctx, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return err
	}
	RunAfterCommit(txCtx, ctx)
	return nil
}
