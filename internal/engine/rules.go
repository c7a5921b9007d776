package engine

// CardPoints is the counting value of a card: 5s are worth 5,
// 10s and 13s are worth 10, everything else 0. Each suit carries 25
// points, the full deck 100.
func CardPoints(c Card) int {
	switch c.Rank {
	case 5:
		return 5
	case 10, 13:
		return 10
	default:
		return 0
	}
}

// trickWinner folds over the plays keeping a running best: a play beats the
// best if it is trump and the best is not, or if it matches the best's suit
// with a higher rank. A non-trump card never beats a trump best; an off-suit
// non-trump card never beats the lead.
func trickWinner(plays []PlayedCard, trump Suit) Seat {
	if len(plays) == 0 {
		return SeatNone
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

func trickPoints(plays []PlayedCard) int {
	pts := 0
	for _, p := range plays {
		pts += CardPoints(p.Card)
	}
	return pts
}

// scoreHand settles a completed hand: trick points go to each trick's
// winning team, the go-down's points go to the team that took the last
// trick, the team with the strict trick majority gets the bonus, and the
// bid contract is applied (a failed bid scores minus the bid amount, the
// opponents keep their earned points either way). The record is appended,
// game end is checked against the recomputed totals, and otherwise the
// dealer rotates into a fresh deal.
func scoreHand(g *GameState) {
	var pts [2]int
	for _, t := range g.Hand.Tricks {
		pts[t.Winner.Team()] += trickPoints(t.Plays)
	}

	last := g.Hand.Tricks[len(g.Hand.Tricks)-1]
	goDownPts := 0
	for _, c := range g.Hand.GoDown {
		goDownPts += CardPoints(c)
	}
	pts[last.Winner.Team()] += goDownPts

	countA, countB := TrickCounts(*g)
	if countA > countB {
		pts[TeamA] += g.Rules.TrickBonus
	} else {
		pts[TeamB] += g.Rules.TrickBonus
	}

	bidTeam := g.Hand.BidWinner.Team()
	if pts[bidTeam] < g.Hand.BidValue {
		pts[bidTeam] = -g.Hand.BidValue
	}

	g.Scores = append(g.Scores, HandScoreRecord{
		Dealer:     g.Hand.Dealer,
		BidWinner:  g.Players[g.Hand.BidWinner].Name,
		WinningBid: g.Hand.BidValue,
		TeamAPts:   pts[TeamA],
		TeamBPts:   pts[TeamB],
	})

	totalA, totalB := TeamTotals(*g)
	for _, total := range []int{totalA, totalB} {
		if total > g.Rules.WinScore || total < g.Rules.LoseScore {
			g.Hand.Phase = PhaseGameOver
			return
		}
	}

	g.Hand.Dealer = g.Hand.Dealer.Next()
	g.ResetHand()
}
