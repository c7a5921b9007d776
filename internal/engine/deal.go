package engine

import "math/rand"

// BuildDeck returns the full 40-card deck: 4 suits x ranks 5..14.
func BuildDeck() []Card {
	deck := make([]Card, 0, 40)
	suits := []Suit{SuitRed, SuitYellow, SuitBlack, SuitGreen}
	for _, s := range suits {
		for r := RankMin; r <= RankMax; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle returns a seeded Fisher-Yates permutation of deck, walking indices
// from last to first and swapping each with a uniform index in [0, i].
func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// DealHand shuffles a fresh deck from the game seed and distributes it:
// round-robin pops from the top into 4 hands of HandSize, then WidowSize
// cards into the widow. The deck is exactly consumed. The seed advances so
// consecutive hands get distinct shuffles while staying deterministic.
func DealHand(g *GameState) {
	deck := Shuffle(BuildDeck(), g.Seed)
	g.Seed++

	handSize := g.Rules.HandSize
	widowSize := g.Rules.WidowSize
	if handSize*NumSeats+widowSize != len(deck) {
		panic("invalid deal configuration: does not exhaust deck")
	}

	top := len(deck)
	pop := func() Card {
		top--
		return deck[top]
	}

	for s := range g.Players {
		g.Players[s].Hand = make([]Card, 0, handSize+widowSize)
	}
	for i := 0; i < handSize; i++ {
		for s := Seat(0); s < NumSeats; s++ {
			g.Players[s].Hand = append(g.Players[s].Hand, pop())
		}
	}
	g.Hand.Widow = make([]Card, 0, widowSize)
	for i := 0; i < widowSize; i++ {
		g.Hand.Widow = append(g.Hand.Widow, pop())
	}

	g.Hand.HandsDealt = true
	g.Hand.Phase = PhaseBidding
	g.Hand.BidTurn = g.Hand.Dealer.Next()
	g.Hand.BidWinner = SeatNone
	g.Hand.BidValue = 0
}
