package blobstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"campus-canteen/internal/infra/metrics"

	"github.com/sony/gobreaker"
)

// BreakerSettings configures the circuit around a remote store.
type BreakerSettings struct {
	Name        string
	MaxFailures uint32
	OpenTimeout time.Duration
}

// BreakerStore fails fast while the wrapped store is unhealthy.
// A missing key is a successful call and never trips the circuit.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerStore(next Store, s BreakerSettings) *BreakerStore {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.StoreBreakerState.WithLabelValues(name).Set(stateValue(to))
			slog.Warn("blob store circuit changed state",
				"store", name,
				"from", from.String(),
				"to", to.String())
		},
	})
	metrics.StoreBreakerState.WithLabelValues(s.Name).Set(stateValue(gobreaker.StateClosed))

	return &BreakerStore{next: next, cb: cb}
}

func (s *BreakerStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		data, err := s.next.Get(ctx, key)
		if errors.Is(err, ErrBlobNotFound) {
			return nil, nil
		}
		return data, err
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrBlobNotFound
	}
	return result.([]byte), nil
}

func (s *BreakerStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Put(ctx, key, data)
	})
	return err
}

func (s *BreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func stateValue(st gobreaker.State) float64 {
	switch st {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
