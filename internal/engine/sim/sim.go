package sim

import (
	"fmt"
	"sort"

	"github.com/slimsherpa/rook/internal/engine"
)

type ActionRecord struct {
	Hand  int
	Step  int
	Phase engine.Phase
	Seat  engine.Seat
	A     engine.Action
}

// RunSelfPlayHands drives full hands with a deterministic policy, checking
// the card-partition and phase invariants after every accepted action.
func RunSelfPlayHands(seed int64, hands int, maxStepsPerHand int) error {
	rules := engine.StandardPreset()
	state := engine.NewGame(rules, seed)

	for h := 0; h < hands; h++ {
		if state.Hand.Phase == engine.PhaseGameOver {
			return nil
		}
		engine.DealHand(&state)

		records := []ActionRecord{}
		for step := 0; step < maxStepsPerHand; step++ {
			if state.Hand.Phase == engine.PhaseDeal || state.Hand.Phase == engine.PhaseGameOver {
				break
			}
			seat, ok := engine.CurrentSeat(state)
			if !ok {
				return failure(seed, h, step, state.Hand.Phase, engine.SeatNone, records, "no current seat")
			}
			legal := engine.LegalActions(state, seat)
			if len(legal) == 0 {
				return failure(seed, h, step, state.Hand.Phase, seat, records, "no legal actions")
			}
			action := chooseAction(state, seat, legal)
			if err := engine.ApplyAction(&state, seat, action); err != nil {
				return failure(seed, h, step, state.Hand.Phase, seat, records, fmt.Sprintf("apply error: %v", err))
			}
			records = append(records, ActionRecord{
				Hand:  h,
				Step:  step,
				Phase: state.Hand.Phase,
				Seat:  seat,
				A:     action,
			})
			if err := checkInvariants(state); err != nil {
				return failure(seed, h, step, state.Hand.Phase, seat, records, err.Error())
			}
		}
		if state.Hand.Phase != engine.PhaseDeal && state.Hand.Phase != engine.PhaseGameOver {
			return failure(seed, h, maxStepsPerHand, state.Hand.Phase, engine.SeatNone, records, "hand did not finish")
		}
	}
	return nil
}

func chooseAction(state engine.GameState, seat engine.Seat, legal []engine.Action) engine.Action {
	switch state.Hand.Phase {
	case engine.PhaseGoDown:
		return goDownLowest(state, seat)
	case engine.PhaseTrumpSelect:
		return chooseLongestSuit(state, seat)
	case engine.PhasePlayTricks:
		return lowestLegalPlay(legal)
	default:
		sort.Slice(legal, func(i, j int) bool {
			return actionKey(legal[i]) < actionKey(legal[j])
		})
		return legal[0]
	}
}

func goDownLowest(state engine.GameState, seat engine.Seat) engine.Action {
	hand := append([]engine.Card(nil), state.Players[seat].Hand...)
	sort.Slice(hand, func(i, j int) bool {
		pi := engine.CardPoints(hand[i])
		pj := engine.CardPoints(hand[j])
		if pi == pj {
			if hand[i].Rank == hand[j].Rank {
				return hand[i].Suit < hand[j].Suit
			}
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
	for _, s := range suitOrder {
		if counts[s] > counts[best] {
			best = s
		}
	}
	trump := best
	return engine.Action{Type: engine.ActionChooseTrump, Suit: &trump}
}

// suitOrder fixes suit iteration for deterministic choices.
var suitOrder = [4]engine.Suit{engine.SuitRed, engine.SuitYellow, engine.SuitBlack, engine.SuitGreen}

func lowestLegalPlay(legal []engine.Action) engine.Action {
	best := legal[0]
	bestScore := 1<<31 - 1
	for _, a := range legal {
		if a.Type != engine.ActionPlayCard || a.Card == nil {
			continue
		}
		score := engine.CardPoints(*a.Card)*100 + int(a.Card.Rank)*4 + int(a.Card.Suit)
		if score < bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

func actionKey(a engine.Action) string {
	switch a.Type {
	case engine.ActionBid:
		return fmt.Sprintf("1_bid_%04d", a.Bid)
	case engine.ActionPass:
		return "0_pass"
	case engine.ActionSetGoDown:
		return "2_godown"
	case engine.ActionChooseTrump:
		if a.Suit == nil {
			return "3_trump_?"
		}
		return fmt.Sprintf("3_trump_%d", *a.Suit)
	case engine.ActionPlayCard:
		if a.Card == nil {
			return "4_play_?"
		}
		return fmt.Sprintf("4_play_%d_%02d", a.Card.Suit, a.Card.Rank)
	default:
		return "9_unknown"
	}
}

// checkInvariants asserts that hands, widow, go-down, the open trick, and
// completed tricks always partition the 40-card deck without duplicates,
// and that per-phase sizes hold.
func checkInvariants(state engine.GameState) error {
	if state.Hand.Phase == engine.PhaseDeal || state.Hand.Phase == engine.PhaseGameOver {
		return nil
	}
	total, dup := countCards(state)
	if total != 40 {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if len(state.Hand.TrickPlays) > engine.NumSeats {
		return fmt.Errorf("invalid trick size: %d", len(state.Hand.TrickPlays))
	}
	switch state.Hand.Phase {
	case engine.PhaseBidding:
		if len(state.Hand.GoDown) != 0 {
			return fmt.Errorf("go-down set before bidding ended")
		}
		if len(state.Hand.Widow) != state.Rules.WidowSize {
			return fmt.Errorf("widow size mismatch: %d", len(state.Hand.Widow))
		}
	case engine.PhaseGoDown:
		if len(state.Players[state.Hand.BidWinner].Hand) != state.Rules.HandSize+state.Rules.WidowSize {
			return fmt.Errorf("winner hand not expanded after widow")
		}
		if len(state.Hand.Widow) != 0 {
			return fmt.Errorf("widow not absorbed")
		}
	case engine.PhaseTrumpSelect, engine.PhasePlayTricks:
		if len(state.Hand.GoDown) != state.Rules.WidowSize {
			return fmt.Errorf("go-down size mismatch: %d", len(state.Hand.GoDown))
		}
		for _, p := range state.Players {
			if len(p.Hand) > state.Rules.HandSize {
				return fmt.Errorf("hand size too large: %d", len(p.Hand))
			}
		}
	}
	if state.Hand.Phase == engine.PhasePlayTricks && state.Hand.Trump == nil {
		return fmt.Errorf("trick play without trump")
	}
	return nil
}

func countCards(state engine.GameState) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, p := range state.Players {
		for _, c := range p.Hand {
			add(c)
		}
	}
	for _, t := range state.Hand.Tricks {
		for _, pc := range t.Plays {
			add(pc.Card)
		}
	}
	for _, c := range state.Hand.Widow {
		add(c)
	}
	for _, c := range state.Hand.GoDown {
		add(c)
	}
	for _, pc := range state.Hand.TrickPlays {
		add(pc.Card)
	}
	return total, dup
}

func failure(seed int64, hand int, step int, phase engine.Phase, seat engine.Seat, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[h%d s%d %v %v] %v\n", r.Hand, r.Step, r.Seat, r.Phase, r.A)
	}
	return fmt.Errorf("seed=%d hand=%d step=%d phase=%v seat=%v reason=%s\nlast actions:\n%s",
		seed, hand, step, phase, seat, reason, log)
}
