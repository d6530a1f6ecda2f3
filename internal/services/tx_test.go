package services_test

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/room-booking/internal/services"
)

// newImmediateTx returns a TxManager mock that runs functions and commit hooks at once,
// as if every call committed on its own.
func newImmediateTx(ctrl *gomock.Controller) *services.MockTxManager {
	tx := services.NewMockTxManager(ctrl)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	tx.EXPECT().AfterCommit(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, fn func(context.Context)) {
			fn(ctx)
		}).AnyTimes()
	return tx
}

// commitHooks holds the functions passed to AfterCommit until the test commits.
type commitHooks struct {
	fns []func(context.Context)
}

func (h *commitHooks) capture(_ context.Context, fn func(context.Context)) {
	h.fns = append(h.fns, fn)
}

func (h *commitHooks) commit(ctx context.Context) {
	fns := h.fns
	h.fns = nil
	for _, fn := range fns {
		fn(ctx)
	}
}
