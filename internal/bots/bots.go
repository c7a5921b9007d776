package bots

import (
	"math/rand"
	"sort"

	"github.com/slimsherpa/rook/internal/engine"
)

type Bot interface {
	ChooseAction(state engine.GameState, seat engine.Seat) engine.Action
}

type EasyBot struct {
	RNG *rand.Rand
}

func NewEasy(seed int64) *EasyBot {
	return &EasyBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) ChooseAction(state engine.GameState, seat engine.Seat) engine.Action {
	legal := engine.LegalActions(state, seat)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}
	switch state.Hand.Phase {
	case engine.PhaseGoDown:
		return goDownLowestPoints(state, seat)
	case engine.PhaseBidding, engine.PhaseTrumpSelect, engine.PhasePlayTricks:
		return legal[b.RNG.Intn(len(legal))]
	default:
		return legal[0]
	}
}

type NormalBot struct {
	RNG *rand.Rand
}

func NewNormal(seed int64) *NormalBot {
	return &NormalBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *NormalBot) ChooseAction(state engine.GameState, seat engine.Seat) engine.Action {
	switch state.Hand.Phase {
	case engine.PhaseBidding:
		return bidByHeuristic(state, seat)
	case engine.PhaseGoDown:
		return goDownLowestPoints(state, seat)
	case engine.PhaseTrumpSelect:
		return chooseLongestSuit(state, seat)
	case engine.PhasePlayTricks:
		return playHeuristic(state, seat)
	default:
		legal := engine.LegalActions(state, seat)
		if len(legal) == 0 {
			return engine.Action{Type: engine.ActionPass}
		}
		return legal[0]
	}
}

func goDownLowestPoints(state engine.GameState, seat engine.Seat) engine.Action {
	hand := append([]engine.Card(nil), state.Players[seat].Hand...)
	sort.Slice(hand, func(i, j int) bool {
		pi := engine.CardPoints(hand[i])
		pj := engine.CardPoints(hand[j])
		if pi == pj {
			return hand[i].Rank < hand[j].Rank
		}
		return pi < pj
	})
	count := state.Rules.WidowSize
	if count > len(hand) {
		count = len(hand)
	}
	return engine.Action{Type: engine.ActionSetGoDown, Cards: hand[:count]}
}

func chooseLongestSuit(state engine.GameState, seat engine.Seat) engine.Action {
	counts := map[engine.Suit]int{}
	for _, c := range state.Players[seat].Hand {
		counts[c.Suit]++
	}
	best := engine.SuitRed
	for _, s := range []engine.Suit{engine.SuitYellow, engine.SuitBlack, engine.SuitGreen} {
		if counts[s] > counts[best] {
			best = s
		}
	}
	trump := best
	return engine.Action{Type: engine.ActionChooseTrump, Suit: &trump}
}

// bidByHeuristic estimates hand strength from point cards, high ranks, and
// long suits, then bids the nearest step below the estimate or passes.
func bidByHeuristic(state engine.GameState, seat engine.Seat) engine.Action {
	hand := state.Players[seat].Hand
	estimate := 0
	suitCounts := map[engine.Suit]int{}
	for _, c := range hand {
		estimate += engine.CardPoints(c)
		if c.Rank >= 12 {
			estimate += 5
		}
		suitCounts[c.Suit]++
	}
	for _, n := range suitCounts {
		if n >= 4 {
			estimate += (n - 3) * 5
		}
	}
	maxBid := (estimate / state.Rules.BidStep) * state.Rules.BidStep
	if maxBid > state.Rules.BidMax {
		maxBid = state.Rules.BidMax
	}
	if maxBid < state.Rules.BidMin || maxBid <= state.Hand.BidValue {
		return engine.Action{Type: engine.ActionPass}
	}
	next := state.Hand.BidValue + state.Rules.BidStep
	if next < state.Rules.BidMin {
		next = state.Rules.BidMin
	}
	return engine.Action{Type: engine.ActionBid, Bid: next}
}

func playHeuristic(state engine.GameState, seat engine.Seat) engine.Action {
	legal := engine.LegalActions(state, seat)
	if len(legal) == 0 {
		return engine.Action{Type: engine.ActionPass}
	}
	if len(state.Hand.TrickPlays) == 0 {
		// Lead the strongest card.
		best := legal[0]
		bestScore := -1
		for _, a := range legal {
			if a.Card == nil {
				continue
			}
			score := int(a.Card.Rank)*10 + engine.CardPoints(*a.Card)
			if score > bestScore {
				bestScore = score
				best = a
			}
		}
		return best
	}
	// Win the trick with the weakest card that still takes it.
	trump := state.Hand.Trump
	bestWinning := engine.Action{}
	bestRank := engine.Rank(999)
	for _, a := range legal {
		if a.Card == nil {
			continue
		}
		if winsIfPlayed(state, seat, *a.Card, trump) && a.Card.Rank < bestRank {
			bestRank = a.Card.Rank
			bestWinning = a
		}
	}
	if bestRank != 999 {
		return bestWinning
	}
	// Otherwise shed the cheapest card.
	lowest := legal[0]
	lowestScore := 999
	for _, a := range legal {
		if a.Card == nil {
			continue
		}
		score := engine.CardPoints(*a.Card)*100 + int(a.Card.Rank)
		if score < lowestScore {
			lowestScore = score
			lowest = a
		}
	}
	return lowest
}

func winsIfPlayed(state engine.GameState, seat engine.Seat, card engine.Card, trump *engine.Suit) bool {
	if trump == nil {
		return false
	}
	plays := append([]engine.PlayedCard(nil), state.Hand.TrickPlays...)
	plays = append(plays, engine.PlayedCard{Seat: seat, Card: card})
	return trickWinnerLocal(plays, *trump) == seat
}

// local copy to avoid exposing engine internals
func trickWinnerLocal(plays []engine.PlayedCard, trump engine.Suit) engine.Seat {
	if len(plays) == 0 {
		return engine.SeatNone
	}
	best := plays[0]
	for _, p := range plays[1:] {
		if p.Card.Suit == trump && best.Card.Suit != trump {
			best = p
			continue
		}
		if p.Card.Suit == best.Card.Suit && p.Card.Rank > best.Card.Rank {
			best = p
		}
	}
	return best.Seat
}
