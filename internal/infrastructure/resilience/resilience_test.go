package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsbrasil/nexus-api/internal/infrastructure/resilience"
)

func TestRetryWithBackoff_SucessoAposFalhas(t *testing.T) {
	calls := 0
	err := resilience.RetryWithBackoff(context.Background(),
		resilience.Config{MaxRetries: 3, InitialBackoff: time.Millisecond},
		func() error {
			calls++
			if calls < 3 {
				return errors.New("indisponível")
			}
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_EsgotaTentativas(t *testing.T) {
	sentinel := errors.New("sempre falha")
	calls := 0
	err := resilience.RetryWithBackoff(context.Background(),
		resilience.Config{MaxRetries: 2, InitialBackoff: time.Millisecond},
		func() error { calls++; return sentinel })
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls, "1 tentativa + 2 retries")
}

// Backoff zero (ou abaixo de 2ns) não pode entrar no sorteio do jitter.
func TestRetryWithBackoff_BackoffZeroNaoEntraEmPanico(t *testing.T) {
	calls := 0
	err := resilience.RetryWithBackoff(context.Background(),
		resilience.Config{MaxRetries: 2, InitialBackoff: 0},
		func() error { calls++; return errors.New("falha") })
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_RespeitaCancelamento(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := resilience.RetryWithBackoff(ctx,
		resilience.Config{MaxRetries: 5, InitialBackoff: time.Millisecond},
		func() error { calls++; return errors.New("falha") })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls, "context cancelado antes da primeira tentativa não executa fn")
}
