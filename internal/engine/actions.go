package engine

import "fmt"

type ActionType int

const (
	ActionBid ActionType = iota
	ActionPass
	ActionSetGoDown
	ActionChooseTrump
	ActionPlayCard
	ActionRedeal
)

type Action struct {
	Type  ActionType
	Bid   int
	Suit  *Suit
	Card  *Card
	Cards []Card
}

// CurrentSeat returns the seat expected to act in the current phase.
func CurrentSeat(g GameState) (Seat, bool) {
	switch g.Hand.Phase {
	case PhaseBidding:
		return g.Hand.BidTurn, true
	case PhaseGoDown, PhaseTrumpSelect:
		if g.Hand.BidWinner != SeatNone {
			return g.Hand.BidWinner, true
		}
		return SeatNone, false
	case PhasePlayTricks:
		if len(g.Hand.TrickPlays) >= NumSeats {
			return SeatNone, false
		}
		seat := g.Hand.Leader
		for range g.Hand.TrickPlays {
			seat = seat.Next()
		}
		return seat, true
	default:
		return SeatNone, false
	}
}

func LegalActions(g GameState, seat Seat) []Action {
	// Ordering is deterministic based on rules, bid increments, and hand order.
	switch g.Hand.Phase {
	case PhaseBidding:
		return legalBids(g, seat)
	case PhaseGoDown:
		if seat != g.Hand.BidWinner {
			return nil
		}
		// Too many 4-card combinations; client/bot chooses the cards.
		return []Action{{Type: ActionSetGoDown}}
	case PhaseTrumpSelect:
		if seat != g.Hand.BidWinner {
			return nil
		}
		out := make([]Action, 0, 4)
		for _, s := range []Suit{SuitRed, SuitYellow, SuitBlack, SuitGreen} {
			out = append(out, Action{Type: ActionChooseTrump, Suit: suitPtr(s)})
		}
		return out
	case PhasePlayTricks:
		return legalPlays(g, seat)
	default:
		return nil
	}
}

// ApplyAction validates the action against the current phase and either
// commits it or returns a rule error leaving the state untouched.
func ApplyAction(g *GameState, seat Seat, a Action) error {
	if a.Type == ActionRedeal {
		return applyRedeal(g)
	}
	switch g.Hand.Phase {
	case PhaseBidding:
		return applyBid(g, seat, a)
	case PhaseGoDown:
		return applyGoDown(g, seat, a)
	case PhaseTrumpSelect:
		return applyTrump(g, seat, a)
	case PhasePlayTricks:
		return applyPlay(g, seat, a)
	default:
		return fmt.Errorf("%w: no actions accepted in this phase", ErrPhaseMismatch)
	}
}

// applyRedeal aborts the hand in progress and returns to the deal phase.
// Scores and the dealer are kept; the orchestrator deals the fresh hand.
func applyRedeal(g *GameState) error {
	if g.Hand.Phase == PhaseGameOver {
		return fmt.Errorf("%w: game is over", ErrPhaseMismatch)
	}
	g.ResetHand()
	return nil
}

func applyBid(g *GameState, seat Seat, a Action) error {
	if seat != g.Hand.BidTurn || g.Players[seat].Passed {
		return fmt.Errorf("%w: bidder is %s", ErrOutOfTurn, g.Hand.BidTurn)
	}

	switch a.Type {
	case ActionPass:
		g.Players[seat].Passed = true
	case ActionBid:
		if a.Bid%g.Rules.BidStep != 0 {
			return fmt.Errorf("%w: bid must be a multiple of %d", ErrInvalidBidAmount, g.Rules.BidStep)
		}
		if a.Bid < g.Rules.BidMin || a.Bid > g.Rules.BidMax {
			return fmt.Errorf("%w: bid must be within [%d,%d]", ErrInvalidBidAmount, g.Rules.BidMin, g.Rules.BidMax)
		}
		if a.Bid <= g.Hand.BidValue {
			return fmt.Errorf("%w: bid must exceed %d", ErrInvalidBidAmount, g.Hand.BidValue)
		}
		g.Players[seat].Bid = a.Bid
		g.Hand.BidValue = a.Bid
		g.Hand.BidWinner = seat
	default:
		return fmt.Errorf("%w: only bid or pass during bidding", ErrPhaseMismatch)
	}

	passed := 0
	survivor := SeatNone
	for s := Seat(0); s < NumSeats; s++ {
		if g.Players[s].Passed {
			passed++
		} else {
			survivor = s
		}
	}
	if passed == NumSeats-1 {
		finishBidding(g, survivor)
		return nil
	}

	g.Hand.BidTurn = nextBidTurn(g)
	return nil
}

// finishBidding locks in the survivor as bid winner. A survivor who never
// bid is held to the table floor. The widow folds into the winner's hand
// and the go-down selection begins.
func finishBidding(g *GameState, survivor Seat) {
	if g.Players[survivor].Bid == 0 {
		g.Players[survivor].Bid = g.Rules.BidMin
	}
	g.Hand.BidWinner = survivor
	g.Hand.BidValue = g.Players[survivor].Bid

	g.Players[survivor].Hand = append(g.Players[survivor].Hand, g.Hand.Widow...)
	g.Hand.Widow = nil
	g.Hand.Phase = PhaseGoDown
}

func applyGoDown(g *GameState, seat Seat, a Action) error {
	if seat != g.Hand.BidWinner {
		return fmt.Errorf("%w: only the bid winner selects the go-down", ErrOutOfTurn)
	}
	if a.Type != ActionSetGoDown {
		return fmt.Errorf("%w: expected go-down selection", ErrPhaseMismatch)
	}
	if g.Hand.GoDownSet {
		return fmt.Errorf("%w: go-down already set", ErrDuplicateAction)
	}
	if len(a.Cards) != g.Rules.WidowSize {
		return fmt.Errorf("%w: go-down requires exactly %d cards", ErrInvalidCardSelection, g.Rules.WidowSize)
	}

	// Validate removal on a copy so a rejected selection leaves the hand intact.
	hand := append([]Card(nil), g.Players[seat].Hand...)
	for _, c := range a.Cards {
		if !removeCard(&hand, c) {
			return fmt.Errorf("%w: %s not in hand", ErrInvalidCardSelection, c)
		}
	}

	g.Players[seat].Hand = hand
	g.Hand.GoDown = append([]Card(nil), a.Cards...)
	g.Hand.GoDownSet = true
	g.Hand.Phase = PhaseTrumpSelect
	return nil
}

func applyTrump(g *GameState, seat Seat, a Action) error {
	if seat != g.Hand.BidWinner {
		return fmt.Errorf("%w: only the bid winner declares trump", ErrOutOfTurn)
	}
	if a.Type != ActionChooseTrump {
		return fmt.Errorf("%w: expected trump selection", ErrPhaseMismatch)
	}
	if a.Suit == nil || *a.Suit < SuitRed || *a.Suit > SuitGreen {
		return fmt.Errorf("%w: trump suit required", ErrInvalidCardSelection)
	}

	g.Hand.Trump = suitPtr(*a.Suit)
	g.Hand.Phase = PhasePlayTricks
	g.Hand.Leader = g.Hand.Dealer.Next()
	g.Hand.TrickPlays = nil
	return nil
}

func applyPlay(g *GameState, seat Seat, a Action) error {
	if a.Type != ActionPlayCard || a.Card == nil {
		return fmt.Errorf("%w: expected a card play", ErrPhaseMismatch)
	}
	expected, ok := CurrentSeat(*g)
	if !ok || seat != expected {
		return fmt.Errorf("%w: turn belongs to %s", ErrOutOfTurn, expected)
	}
	card := *a.Card
	hand := g.Players[seat].Hand
	if !containsCard(hand, card) {
		return fmt.Errorf("%w: %s not in hand", ErrInvalidCardSelection, card)
	}
	if len(g.Hand.TrickPlays) > 0 {
		lead := g.Hand.TrickPlays[0].Card.Suit
		if card.Suit != lead && hasSuit(hand, lead) {
			return fmt.Errorf("%w: must follow %s", ErrFollowSuitViolation, lead)
		}
	}

	removeCard(&g.Players[seat].Hand, card)
	g.Hand.TrickPlays = append(g.Hand.TrickPlays, PlayedCard{Seat: seat, Card: card})

	if len(g.Hand.TrickPlays) == NumSeats {
		winner := trickWinner(g.Hand.TrickPlays, *g.Hand.Trump)
		g.Hand.Tricks = append(g.Hand.Tricks, TrickRecord{
			Plays:  append([]PlayedCard(nil), g.Hand.TrickPlays...),
			Winner: winner,
		})
		g.Hand.Leader = winner
		g.Hand.TrickPlays = nil

		if len(g.Hand.Tricks) == g.Rules.TricksPerHand {
			scoreHand(g)
		}
	}
	return nil
}

func legalBids(g GameState, seat Seat) []Action {
	if seat != g.Hand.BidTurn || g.Players[seat].Passed {
		return nil
	}
	out := []Action{{Type: ActionPass}}
	for bid := g.Rules.BidMin; bid <= g.Rules.BidMax; bid += g.Rules.BidStep {
		if bid > g.Hand.BidValue {
			out = append(out, Action{Type: ActionBid, Bid: bid})
		}
	}
	return out
}

func legalPlays(g GameState, seat Seat) []Action {
	expected, ok := CurrentSeat(g)
	if !ok || seat != expected {
		return nil
	}
	hand := g.Players[seat].Hand
	if len(hand) == 0 {
		return nil
	}
	if len(g.Hand.TrickPlays) > 0 {
		lead := g.Hand.TrickPlays[0].Card.Suit
		if hasSuit(hand, lead) {
			return cardsToActions(filterBySuit(hand, lead))
		}
	}
	return cardsToActions(hand)
}

func cardsToActions(cards []Card) []Action {
	out := make([]Action, 0, len(cards))
	for i := range cards {
		c := cards[i]
		out = append(out, Action{Type: ActionPlayCard, Card: &c})
	}
	return out
}

func nextBidTurn(g *GameState) Seat {
	for i := 1; i <= NumSeats; i++ {
		n := (g.Hand.BidTurn + Seat(i)) % NumSeats
		if !g.Players[n].Passed {
			return n
		}
	}
	return g.Hand.BidTurn
}

func hasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func filterBySuit(cards []Card, suit Suit) []Card {
	out := []Card{}
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// removeCard deletes the first card equal by (suit, rank) value; cards are
// not unique objects, so identity-based removal would be wrong here.
func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}

func suitPtr(s Suit) *Suit {
	return &s
}
