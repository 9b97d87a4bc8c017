package relay

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jny0444/crowdfund/internal/adapter/memory"
	"github.com/jny0444/crowdfund/internal/core/domain"
	"github.com/jny0444/crowdfund/internal/core/port"
	"github.com/jny0444/crowdfund/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func appendEvents(t *testing.T, repo *memory.LedgerRepository, n int) {
	t.Helper()
	ctx := context.Background()
	err := repo.WithinTx(ctx, func(tx port.LedgerTx) error {
		events := make([]domain.Event, n)
		for i := range events {
			events[i] = domain.ContributionReceived(0, "0x00000000000000000000000000000000000000d1", decimal.NewFromInt(1), decimal.NewFromInt(int64(i+1)))
		}
		return tx.AppendEvents(ctx, events)
	})
	require.NoError(t, err)
}

func TestFlushStopsAtFirstFailure(t *testing.T) {
	repo := memory.NewLedgerRepository()
	appendEvents(t, repo, 3)

	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.Event) bool { return e.Seq == 2 })).
		Return(errors.New("broker down")).
		Once()
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	r := New(repo, pub, time.Second, 10, discard)

	n, err := r.Flush(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, n)

	pending, err := repo.UnpublishedEvents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(2), pending[0].Seq)

	n, err = r.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	pending, err = repo.UnpublishedEvents(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFlushEmptyOutbox(t *testing.T) {
	repo := memory.NewLedgerRepository()
	pub := mocks.NewMockEventPublisher(t)

	n, err := New(repo, pub, time.Second, 10, discard).Flush(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

type recorder struct {
	seqs chan int64
}

func (r *recorder) Publish(_ context.Context, e domain.Event) error {
	r.seqs <- e.Seq
	return nil
}

func TestRunDeliversInOrder(t *testing.T) {
	repo := memory.NewLedgerRepository()
	appendEvents(t, repo, 5)

	rec := &recorder{seqs: make(chan int64, 16)}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		New(repo, rec, 10*time.Millisecond, 2, discard).Run(ctx)
		close(done)
	}()

	for want := int64(1); want <= 5; want++ {
		select {
		case got := <-rec.seqs:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("event %d not relayed", want)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}
