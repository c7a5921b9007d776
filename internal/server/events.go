package server

import "github.com/slimsherpa/rook/internal/engine"

type EventPayload struct {
	Seat  string    `json:"seat,omitempty"`
	Bid   int       `json:"bid,omitempty"`
	Suit  string    `json:"suit,omitempty"`
	Cards []CardDTO `json:"cards,omitempty"`
	Trick int       `json:"trick,omitempty"`
	TeamA int       `json:"teamA,omitempty"`
	TeamB int       `json:"teamB,omitempty"`
}

// buildEvents derives a UI event stream from the action and the state delta.
func buildEvents(prev engine.GameState, next engine.GameState, seat engine.Seat, action engine.Action) []Event {
	events := []Event{}
	switch action.Type {
	case engine.ActionBid:
		events = append(events, Event{Type: "bid_made", Data: EventPayload{Seat: seat.String(), Bid: action.Bid}})
	case engine.ActionPass:
		events = append(events, Event{Type: "bid_passed", Data: EventPayload{Seat: seat.String()}})
	case engine.ActionSetGoDown:
		// Card faces stay hidden; the go-down is face down until scoring.
		events = append(events, Event{Type: "go_down_set", Data: EventPayload{Seat: seat.String()}})
	case engine.ActionChooseTrump:
		if action.Suit != nil {
			events = append(events, Event{Type: "trump_chosen", Data: EventPayload{Seat: seat.String(), Suit: action.Suit.String()}})
		}
	case engine.ActionPlayCard:
		if action.Card != nil {
			events = append(events, Event{Type: "card_played", Data: EventPayload{Seat: seat.String(), Cards: []CardDTO{cardToDTO(*action.Card)}}})
		}
	case engine.ActionRedeal:
		events = append(events, Event{Type: "redeal", Data: EventPayload{Seat: seat.String()}})
	}

	if prev.Hand.Phase == engine.PhaseBidding && next.Hand.Phase == engine.PhaseGoDown {
		events = append(events, Event{Type: "bidding_complete", Data: EventPayload{
			Seat: next.Hand.BidWinner.String(),
			Bid:  next.Hand.BidValue,
		}})
	}

	if len(next.Hand.Tricks) > len(prev.Hand.Tricks) {
		last := next.Hand.Tricks[len(next.Hand.Tricks)-1]
		events = append(events, Event{Type: "trick_won", Data: EventPayload{
			Seat:  last.Winner.String(),
			Trick: len(next.Hand.Tricks),
		}})
	}

	if len(next.Scores) > len(prev.Scores) {
		rec := next.Scores[len(next.Scores)-1]
		events = append(events, Event{Type: "hand_scored", Data: EventPayload{
			TeamA: rec.TeamAPts,
			TeamB: rec.TeamBPts,
		}})
	}

	if next.Hand.Phase == engine.PhaseGameOver && prev.Hand.Phase != engine.PhaseGameOver {
		a, b := engine.TeamTotals(next)
		events = append(events, Event{Type: "game_over", Data: EventPayload{TeamA: a, TeamB: b}})
	}
	return events
}
