package reveal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
	"github.com/jeondoksi/jeondoksi-cli/internal/pkg/clock"
	"github.com/jeondoksi/jeondoksi-cli/internal/viewstate/reveal"
)

type SequencerTestSuite struct {
	suite.Suite
	clock   *clock.Manual
	seq     *reveal.Sequencer
	phases  []reveal.Phase
	bursts  []reveal.Burst
	closed  int
	unique  reveal.Reward
	regular reveal.Reward
}

func (s *SequencerTestSuite) SetupTest() {
	s.clock = clock.NewManual(time.Date(2025, 11, 27, 12, 0, 0, 0, time.UTC))
	s.phases = nil
	s.bursts = nil
	s.closed = 0
	s.unique = reveal.Reward{Name: "전설의 사서", Rarity: entities.RarityUnique}
	s.regular = reveal.Reward{Name: "책벌레", Rarity: entities.RarityCommon}

	var err error
	s.seq, err = reveal.New(&reveal.Config{
		Scheduler: s.clock,
		OnChange: func(st reveal.State) {
			if n := len(s.phases); n == 0 || s.phases[n-1] != st.Phase {
				s.phases = append(s.phases, st.Phase)
			}
		},
		OnBurst: func(b reveal.Burst) { s.bursts = append(s.bursts, b) },
		OnClose: func() { s.closed++ },
	})
	s.Require().NoError(err)
}

func (s *SequencerTestSuite) TestNewRequiresScheduler() {
	_, err := reveal.New(&reveal.Config{})
	s.Error(err)

	_, err = reveal.New(nil)
	s.Error(err)
}

func (s *SequencerTestSuite) TestVisitsPhasesInOrder() {
	draw := s.seq.Start()
	s.Equal(reveal.Chest, s.seq.State().Phase)

	s.True(s.seq.Deliver(draw, s.unique))

	s.clock.Advance(reveal.ChestDuration - time.Millisecond)
	s.Equal(reveal.Chest, s.seq.State().Phase)

	s.clock.Advance(time.Millisecond)
	s.Equal(reveal.Opening, s.seq.State().Phase)

	s.clock.Advance(reveal.OpeningDuration - time.Millisecond)
	s.Equal(reveal.Opening, s.seq.State().Phase)

	s.clock.Advance(time.Millisecond)
	st := s.seq.State()
	s.Equal(reveal.Revealed, st.Phase)
	s.Require().NotNil(st.Reward)
	s.Equal("전설의 사서", st.Reward.Name)
	s.True(st.Bursting)

	s.Equal([]reveal.Phase{reveal.Chest, reveal.Opening, reveal.Revealed}, s.phases)
	s.Require().Len(s.bursts, 1)
	s.Equal([]string{"#ffd700", "#ffaa00", "#ffffff"}, s.bursts[0].Colors)
	s.Equal(reveal.BurstDuration, s.bursts[0].Duration)

	s.clock.Advance(reveal.BurstDuration)
	s.False(s.seq.State().Bursting)
	s.Equal(reveal.Revealed, s.seq.State().Phase)
}

func (s *SequencerTestSuite) TestWaitsForLateReward() {
	draw := s.seq.Start()
	s.clock.Advance(chestAndOpening())
	s.Equal(reveal.Opening, s.seq.State().Phase)
	s.Empty(s.bursts)

	s.clock.Advance(10 * time.Second)
	s.Equal(reveal.Opening, s.seq.State().Phase)

	s.True(s.seq.Deliver(draw, s.regular))
	s.Equal(reveal.Revealed, s.seq.State().Phase)
	s.Require().Len(s.bursts, 1)
	s.Equal([]string{"#b0b0b0", "#ffffff"}, s.bursts[0].Colors)
}

func (s *SequencerTestSuite) TestRewardDuringOpeningWaitsForTimer() {
	draw := s.seq.Start()
	s.clock.Advance(reveal.ChestDuration + time.Second)
	s.Equal(reveal.Opening, s.seq.State().Phase)

	s.True(s.seq.Deliver(draw, s.regular))
	s.Equal(reveal.Opening, s.seq.State().Phase)

	s.clock.Advance(time.Second)
	s.Equal(reveal.Revealed, s.seq.State().Phase)
}

func (s *SequencerTestSuite) TestRestartMidSequence() {
	first := s.seq.Start()
	s.clock.Advance(reveal.ChestDuration + time.Second)
	s.Equal(reveal.Opening, s.seq.State().Phase)

	second := s.seq.Start()
	s.NotEqual(first, second)
	s.Equal(reveal.Chest, s.seq.State().Phase)
	s.Nil(s.seq.State().Reward)

	s.False(s.seq.Deliver(first, s.unique))

	// the first draw's suspense timer must not touch the new draw
	s.clock.Advance(time.Second)
	s.NotEqual(reveal.Revealed, s.seq.State().Phase)

	s.True(s.seq.Deliver(second, s.regular))
	s.clock.Advance(chestAndOpening())
	st := s.seq.State()
	s.Equal(reveal.Revealed, st.Phase)
	s.Equal("책벌레", st.Reward.Name)
	s.Len(s.bursts, 1)
}

func (s *SequencerTestSuite) TestRestartAfterReveal() {
	draw := s.seq.Start()
	s.seq.Deliver(draw, s.regular)
	s.clock.Advance(chestAndOpening())
	s.Equal(reveal.Revealed, s.seq.State().Phase)

	s.seq.Start()
	s.Equal(reveal.Chest, s.seq.State().Phase)
	s.Nil(s.seq.State().Reward)
}

func (s *SequencerTestSuite) TestFailReturnsToIdle() {
	draw := s.seq.Start()
	s.True(s.seq.Fail(draw))
	s.Equal(reveal.Idle, s.seq.State().Phase)

	s.clock.Advance(chestAndOpening())
	s.Equal(reveal.Idle, s.seq.State().Phase)
	s.False(s.seq.Deliver(draw, s.regular))
	s.Empty(s.bursts)
}

func (s *SequencerTestSuite) TestCloseOnlyFromRevealed() {
	draw := s.seq.Start()
	s.False(s.seq.Close())

	s.seq.Deliver(draw, s.regular)
	s.clock.Advance(chestAndOpening())

	s.True(s.seq.Close())
	s.Equal(reveal.Idle, s.seq.State().Phase)
	s.Equal(1, s.closed)

	s.False(s.seq.Close())
	s.Equal(1, s.closed)
}

func (s *SequencerTestSuite) TestStopSilencesTimers() {
	draw := s.seq.Start()
	s.seq.Deliver(draw, s.regular)
	s.seq.Stop()

	s.clock.Advance(chestAndOpening())
	s.Equal(reveal.Chest, s.seq.State().Phase)
	s.Empty(s.bursts)
	s.Equal(reveal.DrawID(0), s.seq.Start())
}

func (s *SequencerTestSuite) TestSecondDeliveryIgnored() {
	draw := s.seq.Start()
	s.True(s.seq.Deliver(draw, s.regular))
	s.False(s.seq.Deliver(draw, s.unique))

	s.clock.Advance(chestAndOpening())
	s.Equal("책벌레", s.seq.State().Reward.Name)
}

func chestAndOpening() time.Duration {
	return reveal.ChestDuration + reveal.OpeningDuration
}

func TestSequencerTestSuite(t *testing.T) {
	suite.Run(t, new(SequencerTestSuite))
}
