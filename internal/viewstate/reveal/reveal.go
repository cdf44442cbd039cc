// Package reveal sequences the gacha reveal: a chest appears, shakes while
// the draw settles, then opens onto the reward with a particle burst.
package reveal

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/logging"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
)

// Phase durations
const (
	ChestDuration   = 500 * time.Millisecond
	OpeningDuration = 2000 * time.Millisecond
	BurstDuration   = 3000 * time.Millisecond
)

// Phase is a step of the reveal
type Phase int

// Phases in visiting order. Idle means nothing is shown.
const (
	Idle Phase = iota
	Chest
	Opening
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Chest:
		return "chest"
	case Opening:
		return "opening"
	case Revealed:
		return "revealed"
	default:
		return "idle"
	}
}

// Caption is the text shown under the chest
func (p Phase) Caption() string {
	switch p {
	case Chest:
		return "소환 중..."
	case Opening:
		return "두근두근!"
	default:
		return ""
	}
}

// DrawID identifies one run of the sequence
type DrawID uint64

// Reward is what the draw produced
type Reward struct {
	Name     string
	Rarity   entities.Rarity
	ImageURL string
	Level    int
}

// RewardFromCharacter converts a drawn character
func RewardFromCharacter(c *entities.Character) Reward {
	return Reward{Name: c.Name, Rarity: c.Rarity, ImageURL: c.ImageURL, Level: c.Level}
}

// RewardFromItem converts a drawn item
func RewardFromItem(i *entities.Item) Reward {
	return Reward{Name: i.Name, Rarity: i.Rarity, ImageURL: i.ImageURL, Level: i.Level}
}

// Burst is a particle effect request
type Burst struct {
	Draw     DrawID
	Colors   []string
	Duration time.Duration
}

// State is a snapshot of the sequencer
type State struct {
	Phase  Phase
	Draw   DrawID
	Reward *Reward
	// Bursting is true while the reveal burst plays
	Bursting bool
}

// Config holds the sequencer's collaborators
type Config struct {
	Scheduler clock.Scheduler
	// OnChange receives every new state
	OnChange func(State)
	// OnBurst is called when the reward is revealed
	OnBurst func(Burst)
	// OnClose is called after Close returns the sequencer to Idle
	OnClose func()
	Logger  *zap.Logger
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}

	return vb.Build()
}

// Sequencer drives the phases. It advances from Opening to Revealed once the
// suspense timer has run out and the reward has been delivered, whichever
// happens last.
type Sequencer struct {
	mu        sync.Mutex
	scheduler clock.Scheduler
	onChange  func(State)
	onBurst   func(Burst)
	onClose   func()
	logger    *zap.Logger

	draw        DrawID
	phase       Phase
	reward      *Reward
	suspenseEnd bool
	bursting    bool
	stopped     bool
}

// New creates a Sequencer in Idle
func New(cfg *Config) (*Sequencer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Sequencer{
		scheduler: cfg.Scheduler,
		onChange:  cfg.OnChange,
		onBurst:   cfg.OnBurst,
		onClose:   cfg.OnClose,
		logger:    logging.OrNop(cfg.Logger),
	}, nil
}

// Start begins a new draw in Chest, abandoning any draw in progress
func (s *Sequencer) Start() DrawID {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return 0
	}
	s.draw++
	draw := s.draw
	s.phase = Chest
	s.reward = nil
	s.suspenseEnd = false
	s.bursting = false
	state := s.snapshot()
	s.mu.Unlock()

	s.logger.Debug("reveal started", zap.Uint64("draw", uint64(draw)))
	s.emit(state)
	s.scheduler.AfterFunc(ChestDuration, func() { s.open(draw) })

	return draw
}

// Deliver stores the reward for draw. Rewards for an abandoned draw are
// ignored and Deliver returns false.
func (s *Sequencer) Deliver(draw DrawID, reward Reward) bool {
	s.mu.Lock()
	if !s.live(draw) || s.phase == Revealed || s.reward != nil {
		s.mu.Unlock()
		return false
	}
	r := reward
	s.reward = &r
	state, burst, revealed := s.tryReveal()
	s.mu.Unlock()

	s.emit(state)
	if revealed {
		s.fire(burst)
	}
	return true
}

// Fail abandons draw and returns to Idle
func (s *Sequencer) Fail(draw DrawID) bool {
	s.mu.Lock()
	if !s.live(draw) || s.phase == Revealed {
		s.mu.Unlock()
		return false
	}
	s.phase = Idle
	s.reward = nil
	state := s.snapshot()
	s.mu.Unlock()

	s.logger.Debug("reveal abandoned", zap.Uint64("draw", uint64(draw)))
	s.emit(state)
	return true
}

// Close leaves Revealed and hands control back to the caller
func (s *Sequencer) Close() bool {
	s.mu.Lock()
	if s.stopped || s.phase != Revealed {
		s.mu.Unlock()
		return false
	}
	s.phase = Idle
	s.reward = nil
	s.bursting = false
	state := s.snapshot()
	onClose := s.onClose
	s.mu.Unlock()

	s.emit(state)
	if onClose != nil {
		onClose()
	}
	return true
}

// Stop tears the sequencer down. Timers that fire afterwards do nothing.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

// State returns the current snapshot
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Sequencer) open(draw DrawID) {
	s.mu.Lock()
	if !s.live(draw) || s.phase != Chest {
		s.mu.Unlock()
		return
	}
	s.phase = Opening
	state := s.snapshot()
	s.mu.Unlock()

	s.emit(state)
	s.scheduler.AfterFunc(OpeningDuration, func() { s.suspenseOver(draw) })
}

func (s *Sequencer) suspenseOver(draw DrawID) {
	s.mu.Lock()
	if !s.live(draw) || s.phase != Opening {
		s.mu.Unlock()
		return
	}
	s.suspenseEnd = true
	state, burst, revealed := s.tryReveal()
	s.mu.Unlock()

	if !revealed {
		s.logger.Debug("reveal waiting for reward", zap.Uint64("draw", uint64(draw)))
		return
	}
	s.emit(state)
	s.fire(burst)
}

func (s *Sequencer) burstOver(draw DrawID) {
	s.mu.Lock()
	if !s.live(draw) || !s.bursting {
		s.mu.Unlock()
		return
	}
	s.bursting = false
	state := s.snapshot()
	s.mu.Unlock()

	s.emit(state)
}

// tryReveal must be called with the lock held
func (s *Sequencer) tryReveal() (State, Burst, bool) {
	if s.phase != Opening || !s.suspenseEnd || s.reward == nil {
		return s.snapshot(), Burst{}, false
	}
	s.phase = Revealed
	s.bursting = true

	burst := Burst{
		Draw:     s.draw,
		Colors:   Palette(s.reward.Rarity),
		Duration: BurstDuration,
	}
	return s.snapshot(), burst, true
}

func (s *Sequencer) fire(b Burst) {
	if s.onBurst != nil {
		s.onBurst(b)
	}
	s.scheduler.AfterFunc(b.Duration, func() { s.burstOver(b.Draw) })
}

func (s *Sequencer) live(draw DrawID) bool {
	return !s.stopped && draw == s.draw && s.phase != Idle
}

func (s *Sequencer) snapshot() State {
	st := State{Phase: s.phase, Draw: s.draw, Bursting: s.bursting}
	if s.reward != nil {
		r := *s.reward
		st.Reward = &r
	}
	return st
}

func (s *Sequencer) emit(st State) {
	if s.onChange != nil {
		s.onChange(st)
	}
}
