package hpdelta_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/repositories/bosshp"
	bosshpmock "github.com/jeondoksi/jeondoksi-cli/internal/repositories/bosshp/mock"
	"github.com/jeondoksi/jeondoksi-cli/internal/testutils"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/hpdelta"
)

const bossImage = "https://cdn.example.com/bosses/7.png"

type TrackerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *bosshpmock.MockRepository
	clock   *clock.Manual
	tracker *hpdelta.Tracker
	ctx     context.Context

	flashes int
	bursts  []hpdelta.Burst
	last    hpdelta.State
}

func (s *TrackerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = bosshpmock.NewMockRepository(s.ctrl)
	s.clock = clock.NewManual(time.Date(2025, 11, 27, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
	s.flashes = 0
	s.bursts = nil
	s.last = hpdelta.State{}

	var err error
	s.tracker, err = hpdelta.New(&hpdelta.Config{
		Repo:      s.repo,
		Scheduler: s.clock,
		OnChange: func(st hpdelta.State) {
			if st.Flashing && !s.last.Flashing {
				s.flashes++
			}
			s.last = st
		},
		OnBurst: func(b hpdelta.Burst) { s.bursts = append(s.bursts, b) },
	})
	s.Require().NoError(err)
}

func (s *TrackerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TrackerTestSuite) boss(hp int64, active bool) *entities.Boss {
	return &entities.Boss{ID: 7, Name: "망각의 용", MaxHP: 1000, CurrentHP: hp, ImageURL: bossImage, IsActive: active}
}

func (s *TrackerTestSuite) expectPrevious(hp int64) {
	s.repo.EXPECT().Get(s.ctx, &bosshp.GetInput{BossID: 7}).
		Return(&bosshp.GetOutput{Record: &bosshp.Record{BossID: 7, HP: hp}}, nil)
}

func (s *TrackerTestSuite) expectFirstVisit() {
	s.repo.EXPECT().Get(s.ctx, &bosshp.GetInput{BossID: 7}).
		Return(nil, errors.NotFound("no hp stored"))
}

func (s *TrackerTestSuite) expectPut(hp int64) {
	s.repo.EXPECT().Put(s.ctx, &bosshp.PutInput{BossID: 7, HP: hp}).
		Return(&bosshp.PutOutput{Record: &bosshp.Record{BossID: 7, HP: hp}}, nil)
}

func (s *TrackerTestSuite) TestNewValidatesConfig() {
	_, err := hpdelta.New(&hpdelta.Config{Scheduler: s.clock})
	s.Error(err)

	_, err = hpdelta.New(&hpdelta.Config{Repo: s.repo})
	s.Error(err)

	_, err = hpdelta.New(nil)
	s.Error(err)
}

func (s *TrackerTestSuite) TestFirstVisitHasNoEffect() {
	s.expectFirstVisit()
	s.expectPut(800)

	obs, err := s.tracker.Observe(s.ctx, s.boss(800, true))
	s.Require().NoError(err)
	s.False(obs.HasPrevious)
	s.False(obs.DamagePending)
	s.False(obs.Celebrate)

	s.tracker.ImageLoaded(bossImage)
	s.Equal(0, s.flashes)
}

func (s *TrackerTestSuite) TestDamageWaitsForImage() {
	s.expectPrevious(1000)
	s.expectPut(900)

	obs, err := s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Require().NoError(err)
	s.True(obs.HasPrevious)
	s.Equal(int64(1000), obs.Previous)
	s.True(obs.DamagePending)

	st := s.tracker.State()
	s.True(st.Pending)
	s.False(st.Flashing)

	s.clock.Advance(5 * time.Second)
	s.Equal(0, s.flashes)

	s.tracker.ImageLoaded(bossImage)
	st = s.tracker.State()
	s.True(st.Flashing)
	s.False(st.Pending)
	s.Equal(1, s.flashes)

	s.clock.Advance(hpdelta.FlashDuration - time.Millisecond)
	s.True(s.tracker.State().Flashing)
	s.clock.Advance(time.Millisecond)
	s.False(s.tracker.State().Flashing)
}

func (s *TrackerTestSuite) TestDamageFlashesImmediatelyOnceImageLoaded() {
	s.expectFirstVisit()
	s.expectPut(1000)
	_, err := s.tracker.Observe(s.ctx, s.boss(1000, true))
	s.Require().NoError(err)
	s.tracker.ImageLoaded(bossImage)

	s.expectPrevious(1000)
	s.expectPut(950)
	_, err = s.tracker.Observe(s.ctx, s.boss(950, true))
	s.Require().NoError(err)

	s.True(s.tracker.State().Flashing)
	s.Equal(1, s.flashes)
}

func (s *TrackerTestSuite) TestNoEffectWhenHPDoesNotDrop() {
	testCases := []struct {
		name     string
		previous int64
		current  int64
	}{
		{"unchanged", 500, 500},
		{"increased", 500, 700},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectPrevious(tc.previous)
			s.expectPut(tc.current)

			obs, err := s.tracker.Observe(s.ctx, s.boss(tc.current, true))
			s.Require().NoError(err)
			s.False(obs.DamagePending)

			s.tracker.ImageLoaded(bossImage)
			s.Equal(0, s.flashes)
		})
	}
}

func (s *TrackerTestSuite) TestRapidRefetchesFlashOnce() {
	s.expectPrevious(1000)
	s.expectPut(900)
	s.expectPrevious(900)
	s.expectPut(800)

	_, err := s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Require().NoError(err)
	_, err = s.tracker.Observe(s.ctx, s.boss(800, true))
	s.Require().NoError(err)

	s.tracker.ImageLoaded(bossImage)
	s.clock.Advance(hpdelta.FlashDuration)

	s.Equal(1, s.flashes)
	s.False(s.tracker.State().Pending)
}

func (s *TrackerTestSuite) TestDefeatCelebratesOnce() {
	s.expectPrevious(100)
	s.expectPut(0)

	obs, err := s.tracker.Observe(s.ctx, s.boss(0, false))
	s.Require().NoError(err)
	s.True(obs.Celebrate)
	s.False(obs.DamagePending)
	s.True(s.tracker.State().Celebrating)

	s.Require().Len(s.bursts, 1)
	s.Equal([]string{"#ffd700", "#ffaa00", "#ffffff", "#dc3545"}, s.bursts[0].Colors)
	s.Equal(hpdelta.CelebrationDuration, s.bursts[0].Duration)

	s.clock.Advance(hpdelta.CelebrationDuration)
	s.False(s.tracker.State().Celebrating)

	s.expectPrevious(0)
	s.expectPut(0)
	obs, err = s.tracker.Observe(s.ctx, s.boss(0, false))
	s.Require().NoError(err)
	s.False(obs.Celebrate)
	s.Len(s.bursts, 1)
}

func (s *TrackerTestSuite) TestCelebrationIgnoresImageGate() {
	s.expectFirstVisit()
	s.expectPut(0)

	_, err := s.tracker.Observe(s.ctx, s.boss(0, false))
	s.Require().NoError(err)
	s.False(s.tracker.State().ImageReady)
	s.Len(s.bursts, 1)
}

func (s *TrackerTestSuite) TestReadFailureTreatedAsFirstVisit() {
	s.repo.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.Internal("corrupted value"))
	s.expectPut(10)

	obs, err := s.tracker.Observe(s.ctx, s.boss(10, true))
	s.Require().NoError(err)
	s.False(obs.HasPrevious)
	s.False(obs.DamagePending)
}

func (s *TrackerTestSuite) TestWriteFailureReturnedAfterApplying() {
	s.expectPrevious(1000)
	s.repo.EXPECT().Put(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	obs, err := s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Error(err)
	s.True(errors.IsUnavailable(err))
	s.Require().NotNil(obs)
	s.True(obs.DamagePending)
	s.True(s.tracker.State().Pending)
}

func (s *TrackerTestSuite) TestImageGateIgnoresOtherURLs() {
	s.expectPrevious(1000)
	s.expectPut(900)
	_, err := s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Require().NoError(err)

	s.tracker.ImageLoaded("https://cdn.example.com/other.png")
	s.False(s.tracker.State().ImageReady)
	s.Equal(0, s.flashes)
}

func (s *TrackerTestSuite) TestNewImageRecloseGate() {
	s.expectFirstVisit()
	s.expectPut(1000)
	_, err := s.tracker.Observe(s.ctx, s.boss(1000, true))
	s.Require().NoError(err)
	s.tracker.ImageLoaded(bossImage)
	s.True(s.tracker.State().ImageReady)

	next := s.boss(900, true)
	next.ImageURL = "https://cdn.example.com/bosses/7-enraged.png"
	s.expectPrevious(1000)
	s.expectPut(900)
	_, err = s.tracker.Observe(s.ctx, next)
	s.Require().NoError(err)

	st := s.tracker.State()
	s.False(st.ImageReady)
	s.True(st.Pending)

	s.tracker.ImageLoaded(next.ImageURL)
	s.Equal(1, s.flashes)
}

func (s *TrackerTestSuite) TestImageFailureOpensGate() {
	s.expectPrevious(1000)
	s.expectPut(900)
	_, err := s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Require().NoError(err)

	s.tracker.ImageFailed(bossImage)
	s.Equal(1, s.flashes)
}

func (s *TrackerTestSuite) TestMissingImageUsesDefault() {
	b := s.boss(900, true)
	b.ImageURL = ""
	s.expectPrevious(1000)
	s.expectPut(900)
	_, err := s.tracker.Observe(s.ctx, b)
	s.Require().NoError(err)

	s.Equal(hpdelta.DefaultBossImage, s.tracker.State().ImageURL)
	s.tracker.ImageLoaded(hpdelta.DefaultBossImage)
	s.Equal(1, s.flashes)
}

func (s *TrackerTestSuite) TestCloseSilencesTimers() {
	s.expectPrevious(1000)
	s.expectPut(900)
	_, err := s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Require().NoError(err)
	s.tracker.ImageLoaded(bossImage)

	s.tracker.Close()
	s.clock.Advance(hpdelta.FlashDuration)
	s.True(s.tracker.State().Flashing)

	_, err = s.tracker.Observe(s.ctx, s.boss(800, true))
	s.True(errors.IsFailedPrecondition(err))
}

func (s *TrackerTestSuite) TestNilBoss() {
	_, err := s.tracker.Observe(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *TrackerTestSuite) TestLaterFetchWithoutDropIsNotPending() {
	s.expectPrevious(1000)
	s.expectPut(900)
	obs, err := s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Require().NoError(err)
	s.True(obs.DamagePending)

	s.expectPrevious(900)
	s.expectPut(900)
	obs, err = s.tracker.Observe(s.ctx, s.boss(900, true))
	s.Require().NoError(err)
	s.False(obs.DamagePending)
	s.True(s.tracker.State().Pending)

	s.tracker.ImageLoaded(bossImage)
	s.Equal(1, s.flashes)
}

// slowRepository holds every Get long enough for overlapping fetches to
// read the same stored hp unless Observe is serialized
type slowRepository struct {
	bosshp.Repository
	delay time.Duration
}

func (r *slowRepository) Get(ctx context.Context, input *bosshp.GetInput) (*bosshp.GetOutput, error) {
	time.Sleep(r.delay)
	return r.Repository.Get(ctx, input)
}

func (s *TrackerTestSuite) TestConcurrentFetchesFlashOnce() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	store, err := bosshp.NewRedis(&bosshp.RedisConfig{Client: client})
	s.Require().NoError(err)

	var mu sync.Mutex
	flashes := 0
	var last hpdelta.State
	tracker, err := hpdelta.New(&hpdelta.Config{
		Repo:      &slowRepository{Repository: store, delay: 20 * time.Millisecond},
		Scheduler: s.clock,
		OnChange: func(st hpdelta.State) {
			mu.Lock()
			defer mu.Unlock()
			if st.Flashing && !last.Flashing {
				flashes++
			}
			last = st
		},
	})
	s.Require().NoError(err)
	defer tracker.Close()

	_, err = tracker.Observe(s.ctx, s.boss(100, true))
	s.Require().NoError(err)
	tracker.ImageLoaded(bossImage)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = tracker.Observe(s.ctx, s.boss(90, true))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.Require().NoError(err)
	}
	s.Equal(1, s.clock.Pending())
	mu.Lock()
	s.Equal(1, flashes)
	mu.Unlock()
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}
