package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error { return s.err }

type slowChecker struct{ name string }

func (c *slowChecker) Name() string { return c.name }

func (c *slowChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestRegister(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-store"}))

	err := registry.Register(&stubChecker{name: "quote-store"})
	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "quote-store")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []HealthChecker
		wantStatus HealthStatus
		wantFailed string
	}{
		{
			name:       "no checkers is healthy",
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "quote-store"},
				&stubChecker{name: "quote-api"},
			},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "one unhealthy",
			checkers: []HealthChecker{
				&stubChecker{name: "quote-store", err: errors.New("database is locked")},
				&stubChecker{name: "quote-api"},
			},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: "quote-store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			require.NotNil(t, result)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))
			assert.False(t, result.Timestamp.IsZero())

			if tt.wantFailed != "" {
				assert.Equal(t, HealthStatusUnhealthy, result.Checks[tt.wantFailed].Status)
				assert.Equal(t, "database is locked", result.Checks[tt.wantFailed].Message)
			}
		})
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&slowChecker{name: "slow"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "context canceled")
}

func TestCheckAll_CheckTimeout(t *testing.T) {
	registry := NewHealthRegistry(WithCheckTimeout(10 * time.Millisecond))
	require.NoError(t, registry.Register(&slowChecker{name: "slow"}))
	require.NoError(t, registry.Register(&stubChecker{name: "quote-store"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "deadline exceeded")
	assert.Equal(t, HealthStatusHealthy, result.Checks["quote-store"].Status)
}

func TestNewHealthRegistry_Defaults(t *testing.T) {
	assert.Equal(t, DefaultCheckTimeout, NewHealthRegistry().timeout)
	assert.Zero(t, NewHealthRegistry(WithCheckTimeout(0)).timeout)
}

func TestNoopTransactor(t *testing.T) {
	var tx NoopTransactor
	ctx := context.WithValue(context.Background(), struct{}{}, "marker")
	boom := errors.New("boom")

	calls := 0
	err := tx.WithinTx(ctx, func(got context.Context) error {
		calls++
		assert.Equal(t, ctx, got)
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = tx.WithinReadOnlyTx(ctx, func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
