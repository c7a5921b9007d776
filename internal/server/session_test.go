package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slimsherpa/rook/internal/bots"
	"github.com/slimsherpa/rook/internal/engine"
)

// newTestSession builds a session with no socket and no bots so the test
// drives every seat directly.
func newTestSession(seed int64) *Session {
	s := &Session{
		id:        "test",
		humanSeat: engine.SeatA1,
		actionIds: map[string]bool{},
		botSeats:  map[engine.Seat]bots.Bot{},
	}
	s.state = engine.NewGame(engine.StandardPreset(), seed)
	engine.DealHand(&s.state)
	s.started = true
	return s
}

func TestApplyActionRejectionLeavesStateUnchanged(t *testing.T) {
	s := newTestSession(1)
	before := s.state

	s.applyAction("a1", "B1", &ActionDTO{Type: "bid", Bid: 72})
	assert.Equal(t, before.Hand.BidValue, s.state.Hand.BidValue)
	assert.Equal(t, before.Hand.BidTurn, s.state.Hand.BidTurn)
}

func TestApplyActionIdempotentByActionId(t *testing.T) {
	s := newTestSession(1)
	bidder := s.state.Hand.BidTurn.String()

	s.applyAction("a1", bidder, &ActionDTO{Type: "bid", Bid: 70})
	assert.Equal(t, 70, s.state.Hand.BidValue)
	turnAfter := s.state.Hand.BidTurn

	// Same action id again: snapshot republished, intent not reapplied.
	s.applyAction("a1", bidder, &ActionDTO{Type: "bid", Bid: 70})
	assert.Equal(t, 70, s.state.Hand.BidValue)
	assert.Equal(t, turnAfter, s.state.Hand.BidTurn)
}

func TestApplyActionRejectsBotSeat(t *testing.T) {
	s := newTestSession(1)
	s.botSeats[engine.SeatB1] = nil
	before := s.state.Hand.BidValue

	s.applyAction("a1", "B1", &ActionDTO{Type: "bid", Bid: 70})
	assert.Equal(t, before, s.state.Hand.BidValue)
}

func TestSessionFullBiddingFlow(t *testing.T) {
	s := newTestSession(3)

	first := s.state.Hand.BidTurn
	s.applyAction("b1", first.String(), &ActionDTO{Type: "bid", Bid: 75})
	for i, seat := 0, s.state.Hand.BidTurn; i < 3; i++ {
		s.applyAction("p"+seat.String(), seat.String(), &ActionDTO{Type: "pass"})
		seat = s.state.Hand.BidTurn
	}

	assert.Equal(t, engine.PhaseGoDown, s.state.Hand.Phase)
	assert.Equal(t, first, s.state.Hand.BidWinner)
	assert.Len(t, s.state.Players[first].Hand, 13)
}

func TestRedealDealsAFreshHand(t *testing.T) {
	s := newTestSession(4)
	firstHand := append([]engine.Card(nil), s.state.Players[engine.SeatA1].Hand...)

	s.applyAction("r1", "A1", &ActionDTO{Type: "redeal"})
	assert.Equal(t, engine.PhaseBidding, s.state.Hand.Phase)
	assert.True(t, s.state.Hand.HandsDealt)
	assert.NotEqual(t, firstHand, s.state.Players[engine.SeatA1].Hand)
}
