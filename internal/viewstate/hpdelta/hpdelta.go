// Package hpdelta turns successive boss fetches into hit and victory effects.
// The last HP seen for each boss is persisted so damage dealt while the
// client was closed still shows on the next visit.
package hpdelta

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/bosshp"
)

// Effect durations
const (
	FlashDuration       = 1000 * time.Millisecond
	CelebrationDuration = 3000 * time.Millisecond
)

// Boss images
const (
	DefaultBossImage     = "/images/default-boss.png"
	PlaceholderBossImage = "https://via.placeholder.com/800x400?text=Boss"
)

// CelebrationColors is the palette of the victory burst
var CelebrationColors = []string{"#ffd700", "#ffaa00", "#ffffff", "#dc3545"}

// ImageFor returns the image a renderer should load for b
func ImageFor(b *entities.Boss) string {
	if b == nil || b.ImageURL == "" {
		return DefaultBossImage
	}
	return b.ImageURL
}

// Observation describes what one fetch changed
type Observation struct {
	Previous    int64
	HasPrevious bool
	// DamagePending is set when this fetch saw the hp drop
	DamagePending bool
	Celebrate     bool
}

// State is what the renderer draws
type State struct {
	BossID      int64
	ImageURL    string
	ImageReady  bool
	Pending     bool
	Flashing    bool
	Celebrating bool
}

// Burst is a celebration particle request
type Burst struct {
	BossID   int64
	Colors   []string
	Duration time.Duration
}

// Config holds the tracker's collaborators
type Config struct {
	Repo      bosshp.Repository
	Scheduler clock.Scheduler
	// OnChange receives every new state
	OnChange func(State)
	// OnBurst is called once per defeated boss
	OnBurst func(Burst)
	Logger  *zap.Logger
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}

	return vb.Build()
}

// Tracker compares each fetch with the persisted baseline. A pending hit
// waits until the boss image has loaded so the flash never plays over an
// empty frame.
type Tracker struct {
	mu sync.Mutex
	// observeMu serializes Observe so each fetch compares against the hp
	// stored by the previous one
	observeMu sync.Mutex
	repo      bosshp.Repository
	scheduler clock.Scheduler
	onChange  func(State)
	onBurst   func(Burst)
	logger    *zap.Logger

	state      State
	flashSeq   uint64
	celebSeq   uint64
	celebrated map[int64]bool
	closed     bool
}

// New creates a Tracker
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Tracker{
		repo:       cfg.Repo,
		scheduler:  cfg.Scheduler,
		onChange:   cfg.OnChange,
		onBurst:    cfg.OnBurst,
		logger:     logging.OrNop(cfg.Logger),
		celebrated: make(map[int64]bool),
	}, nil
}

// Observe records a freshly fetched boss. The baseline is always overwritten
// with the current HP; a failed write is returned after the observation has
// been applied.
func (t *Tracker) Observe(ctx context.Context, boss *entities.Boss) (*Observation, error) {
	if boss == nil {
		return nil, errors.InvalidArgument("boss is required")
	}

	t.observeMu.Lock()
	defer t.observeMu.Unlock()

	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return nil, errors.FailedPrecondition("tracker is closed")
	}

	obs := &Observation{}
	got, err := t.repo.Get(ctx, &bosshp.GetInput{BossID: boss.ID})
	switch {
	case err == nil:
		obs.Previous = got.Record.HP
		obs.HasPrevious = true
	case errors.IsNotFound(err):
		// first visit
	default:
		t.logger.Warn("reading last boss hp",
			zap.Int64("boss_id", boss.ID),
			zap.Error(err))
	}

	t.mu.Lock()
	image := ImageFor(boss)
	if t.state.BossID != boss.ID {
		t.state = State{BossID: boss.ID}
		t.flashSeq++
		t.celebSeq++
	}
	if t.state.ImageURL != image {
		t.state.ImageURL = image
		t.state.ImageReady = false
	}

	dropped := obs.HasPrevious && boss.IsActive && boss.CurrentHP < obs.Previous
	if dropped {
		t.state.Pending = true
	}
	obs.DamagePending = dropped

	var burst *Burst
	if !boss.IsActive && !t.celebrated[boss.ID] {
		t.celebrated[boss.ID] = true
		t.state.Celebrating = true
		t.celebSeq++
		burst = &Burst{BossID: boss.ID, Colors: append([]string(nil), CelebrationColors...), Duration: CelebrationDuration}
		obs.Celebrate = true
	}

	flashed := t.maybeFlash()
	state := t.state
	celebSeq := t.celebSeq
	t.mu.Unlock()

	t.emit(state)
	if burst != nil {
		t.logger.Info("boss defeated", zap.Int64("boss_id", boss.ID))
		if t.onBurst != nil {
			t.onBurst(*burst)
		}
		t.scheduler.AfterFunc(CelebrationDuration, func() { t.endCelebration(celebSeq) })
	}
	if flashed != 0 {
		t.scheduleFlashEnd(flashed)
	}

	if _, err := t.repo.Put(ctx, &bosshp.PutInput{BossID: boss.ID, HP: boss.CurrentHP}); err != nil {
		return obs, errors.Wrapf(err, "failed to store hp for boss %d", boss.ID)
	}

	return obs, nil
}

// ImageLoaded opens the gate for url if it is the current boss image
func (t *Tracker) ImageLoaded(url string) {
	t.imageDone(url)
}

// ImageFailed opens the gate too; the renderer shows PlaceholderBossImage
func (t *Tracker) ImageFailed(url string) {
	t.logger.Debug("boss image failed, using placeholder", zap.String("url", url))
	t.imageDone(url)
}

// State returns the current snapshot
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Close stops the tracker. Timers that fire afterwards do nothing.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
}

func (t *Tracker) imageDone(url string) {
	t.mu.Lock()
	if t.closed || t.state.ImageURL == "" || t.state.ImageURL != url {
		t.mu.Unlock()
		return
	}
	changed := !t.state.ImageReady
	t.state.ImageReady = true
	flashed := t.maybeFlash()
	state := t.state
	t.mu.Unlock()

	if changed || flashed != 0 {
		t.emit(state)
	}
	if flashed != 0 {
		t.scheduleFlashEnd(flashed)
	}
}

// maybeFlash must be called with the lock held. It returns the flash
// sequence number, or 0 when nothing fired.
func (t *Tracker) maybeFlash() uint64 {
	if !t.state.Pending || !t.state.ImageReady {
		return 0
	}
	t.state.Pending = false
	t.state.Flashing = true
	t.flashSeq++
	return t.flashSeq
}

func (t *Tracker) scheduleFlashEnd(seq uint64) {
	t.scheduler.AfterFunc(FlashDuration, func() {
		t.mu.Lock()
		if t.closed || seq != t.flashSeq || !t.state.Flashing {
			t.mu.Unlock()
			return
		}
		t.state.Flashing = false
		state := t.state
		t.mu.Unlock()

		t.emit(state)
	})
}

func (t *Tracker) endCelebration(seq uint64) {
	t.mu.Lock()
	if t.closed || seq != t.celebSeq || !t.state.Celebrating {
		t.mu.Unlock()
		return
	}
	t.state.Celebrating = false
	state := t.state
	t.mu.Unlock()

	t.emit(state)
}

func (t *Tracker) emit(st State) {
	if t.onChange != nil {
		t.onChange(st)
	}
}
