package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"sync"
	"time"

	"campus-canteen/internal/domain/canteen"
	"campus-canteen/internal/infra"
	"campus-canteen/internal/infra/blobstore"
	"campus-canteen/internal/infra/metrics"
	"campus-canteen/internal/infra/state"
	"campus-canteen/internal/pkg/clock"
	"campus-canteen/internal/usecase/shared"

	"github.com/sony/gobreaker"
)

type Settings struct {
	BlobKey        string
	WriteTimeout   time.Duration
	InitialBalance int64
}

// MemoryUoW serialises writers over one in-memory snapshot and mirrors every
// committed snapshot to a blob store. Mirror failures are logged only.
type MemoryUoW struct {
	mu      sync.RWMutex
	snap    *state.Snapshot
	version uint64

	roster   []*canteen.Canteen
	store    blobstore.Store
	settings Settings

	persistMu sync.Mutex
	persisted uint64
}

// NewMemoryUoW loads the snapshot from the store, seeding it when the blob is
// missing or unreadable. A seed replaces the stored blob only when the store
// answered and the blob was missing or corrupt.
func NewMemoryUoW(ctx context.Context, store blobstore.Store, roster []*canteen.Canteen, settings Settings, clk clock.Clock) (*MemoryUoW, error) {
	u := &MemoryUoW{
		roster:   roster,
		store:    store,
		settings: settings,
	}

	snap, err := u.load(ctx)
	if err == nil {
		u.snap = snap
		return u, nil
	}

	overwrite := errors.Is(err, blobstore.ErrBlobNotFound) || infra.IsKind(err, infra.KindCorruptState)
	if !errors.Is(err, blobstore.ErrBlobNotFound) {
		slog.Warn("falling back to seed data", "key", settings.BlobKey, "error", err.Error())
	}
	u.snap = state.Seed(clk.Now(), settings.InitialBalance)
	if !overwrite {
		return u, nil
	}

	data, err := u.snap.Marshal()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindCorruptState, "failed to encode seed snapshot", err)
	}
	u.persist(ctx, 0, data)
	return u, nil
}

func (u *MemoryUoW) load(ctx context.Context) (*state.Snapshot, error) {
	data, err := u.store.Get(ctx, u.settings.BlobKey)
	if err != nil {
		return nil, err
	}
	snap, err := state.Unmarshal(data)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindCorruptState, "failed to decode snapshot", err)
	}
	return snap, nil
}

// Within runs fn against a private copy and publishes it only if fn succeeds.
func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	work := u.snap.Clone()
	if err := fn(ctx, newMemoryTx(work, u.roster, false)); err != nil {
		u.mu.Unlock()
		return err
	}
	u.snap = work
	u.version++
	version := u.version
	data, err := work.Marshal()
	u.mu.Unlock()

	if err != nil {
		slog.Error("failed to encode snapshot", "version", version, "error", err.Error())
		metrics.StorePersistFailures.Inc()
		return nil
	}
	u.persist(ctx, version, data)
	return nil
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	return fn(ctx, newMemoryTx(u.snap, u.roster, true))
}

// persist writes data unless a newer version already reached the store.
func (u *MemoryUoW) persist(ctx context.Context, version uint64, data []byte) {
	u.persistMu.Lock()
	defer u.persistMu.Unlock()

	if version != 0 && version <= u.persisted {
		return
	}

	const maxRetries = 2
	base := 50 * time.Millisecond
	writeCtx := context.WithoutCancel(ctx)

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := u.put(writeCtx, data)
		if err == nil {
			u.persisted = version
			return
		}

		if !shouldRetry(err, attempt, maxRetries) {
			slog.Error("failed to persist snapshot",
				"version", version,
				"attempts", attempt+1,
				"error", err.Error())
			metrics.StorePersistFailures.Inc()
			return
		}

		waitTime := calculateBackoff(attempt, base)
		slog.Warn("retrying snapshot write",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())
		time.Sleep(waitTime)
	}
}

func (u *MemoryUoW) put(ctx context.Context, data []byte) error {
	if u.settings.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.settings.WriteTimeout)
		defer cancel()
	}
	return u.store.Put(ctx, u.settings.BlobKey, data)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

// Writes rejected by the circuit breaker are not retried.
func isRetryableError(err error) bool {
	return !errors.Is(err, gobreaker.ErrOpenState) && !errors.Is(err, gobreaker.ErrTooManyRequests)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value
	return int64(uval) % n
}
