package engine

import "testing"

func TestCardPoints(t *testing.T) {
	cases := []struct {
		rank Rank
		want int
	}{
		{5, 5}, {6, 0}, {9, 0}, {10, 10}, {12, 0}, {13, 10}, {14, 0},
	}
	for _, c := range cases {
		if got := CardPoints(Card{Suit: SuitRed, Rank: c.rank}); got != c.want {
			t.Fatalf("points for rank %d: got %d want %d", c.rank, got, c.want)
		}
	}
}

func TestTrickWinnerTrumpBeatsLead(t *testing.T) {
	plays := []PlayedCard{
		{Seat: SeatA1, Card: Card{Suit: SuitRed, Rank: 9}},
		{Seat: SeatB1, Card: Card{Suit: SuitGreen, Rank: 12}},
		{Seat: SeatA2, Card: Card{Suit: SuitRed, Rank: 13}},
		{Seat: SeatB2, Card: Card{Suit: SuitGreen, Rank: 5}},
	}
	if winner := trickWinner(plays, SuitGreen); winner != SeatB1 {
		t.Fatalf("expected the high trump to win, got %v", winner)
	}
}

func TestTrickWinnerByRankWithinLeadSuit(t *testing.T) {
	plays := []PlayedCard{
		{Seat: SeatA1, Card: Card{Suit: SuitBlack, Rank: 8}},
		{Seat: SeatB1, Card: Card{Suit: SuitBlack, Rank: 14}},
		{Seat: SeatA2, Card: Card{Suit: SuitBlack, Rank: 11}},
		{Seat: SeatB2, Card: Card{Suit: SuitYellow, Rank: 14}},
	}
	if winner := trickWinner(plays, SuitRed); winner != SeatB1 {
		t.Fatalf("expected the high lead-suit card to win, got %v", winner)
	}
}

// scoringFixture builds a hand ready for scoreHand: all 9 tricks recorded,
// a known go-down, and a bid on record.
func scoringFixture(bidWinner Seat, bid int, tricks []TrickRecord, goDown []Card) GameState {
	g := NewGame(StandardPreset(), 1)
	g.Hand.Phase = PhasePlayTricks
	g.Hand.BidWinner = bidWinner
	g.Hand.BidValue = bid
	g.Players[bidWinner].Bid = bid
	g.Hand.Tricks = tricks
	g.Hand.GoDown = goDown
	g.Hand.GoDownSet = true
	return g
}

// trickTo makes a 4-card trick worth pts (built from one point card and
// three zero cards) taken by the given seat.
func trickTo(winner Seat, pts int) TrickRecord {
	plays := []PlayedCard{
		{Seat: SeatA1, Card: Card{Suit: SuitRed, Rank: 6}},
		{Seat: SeatB1, Card: Card{Suit: SuitRed, Rank: 7}},
		{Seat: SeatA2, Card: Card{Suit: SuitRed, Rank: 8}},
		{Seat: SeatB2, Card: Card{Suit: SuitRed, Rank: 9}},
	}
	switch pts {
	case 5:
		plays[0].Card = Card{Suit: SuitYellow, Rank: 5}
	case 10:
		plays[0].Card = Card{Suit: SuitYellow, Rank: 10}
	case 15:
		plays[0].Card = Card{Suit: SuitYellow, Rank: 5}
		plays[1].Card = Card{Suit: SuitYellow, Rank: 10}
	case 20:
		plays[0].Card = Card{Suit: SuitYellow, Rank: 10}
		plays[1].Card = Card{Suit: SuitYellow, Rank: 13}
	}
	return TrickRecord{Plays: plays, Winner: winner}
}

func TestScoreHandContractMade(t *testing.T) {
	// Team A takes eight tricks worth 10 each plus the majority bonus;
	// team B takes the last trick worth 15 and with it the 5-point go-down.
	tricks := []TrickRecord{}
	for i := 0; i < 8; i++ {
		tricks = append(tricks, trickTo(SeatA1, 10))
	}
	tricks = append(tricks, trickTo(SeatB1, 15))
	goDown := []Card{
		{Suit: SuitGreen, Rank: 5},
		{Suit: SuitGreen, Rank: 6},
		{Suit: SuitGreen, Rank: 7},
		{Suit: SuitGreen, Rank: 8},
	}
	g := scoringFixture(SeatA1, 80, tricks, goDown)
	scoreHand(&g)

	if len(g.Scores) != 1 {
		t.Fatalf("expected one score record, got %d", len(g.Scores))
	}
	rec := g.Scores[0]
	// A: 80 trick points + 20 bonus = 100; bid of 80 is made.
	if rec.TeamAPts != 100 {
		t.Fatalf("team A points: got %d", rec.TeamAPts)
	}
	// B: 15 trick points + 5 go-down (last trick) = 20.
	if rec.TeamBPts != 20 {
		t.Fatalf("team B points: got %d", rec.TeamBPts)
	}
	if g.Hand.Phase != PhaseDeal {
		t.Fatalf("expected reset to deal, got phase %v", g.Hand.Phase)
	}
	if g.Hand.Dealer != SeatB1 {
		t.Fatalf("expected dealer to rotate, got %v", g.Hand.Dealer)
	}
}

func TestScoreHandContractSet(t *testing.T) {
	// Bid team A bids 90 but only earns 70 (50 trick points + 20 bonus);
	// it is set for -90 while team B keeps its earned 30.
	tricks := []TrickRecord{}
	for i := 0; i < 5; i++ {
		tricks = append(tricks, trickTo(SeatA1, 10))
	}
	for i := 0; i < 3; i++ {
		tricks = append(tricks, trickTo(SeatB1, 10))
	}
	tricks = append(tricks, trickTo(SeatB1, 0))
	g := scoringFixture(SeatA1, 90, tricks, nil)
	scoreHand(&g)

	rec := g.Scores[0]
	if rec.TeamAPts != -90 {
		t.Fatalf("set team should score minus the bid, got %d", rec.TeamAPts)
	}
	if rec.TeamBPts != 30 {
		t.Fatalf("opposing team keeps earned points, got %d", rec.TeamBPts)
	}
}

func TestScoreHandGoDownToLastTrickWinner(t *testing.T) {
	// Team B takes only the last trick; the go-down's 20 points follow it.
	tricks := []TrickRecord{}
	for i := 0; i < 8; i++ {
		tricks = append(tricks, trickTo(SeatA1, 0))
	}
	tricks = append(tricks, trickTo(SeatB2, 0))
	goDown := []Card{
		{Suit: SuitGreen, Rank: 10},
		{Suit: SuitGreen, Rank: 13},
		{Suit: SuitGreen, Rank: 6},
		{Suit: SuitGreen, Rank: 7},
	}
	g := scoringFixture(SeatB1, 65, tricks, goDown)
	scoreHand(&g)

	rec := g.Scores[0]
	if rec.TeamBPts != -65 {
		t.Fatalf("bid team earned only 20 against 65, expected -65, got %d", rec.TeamBPts)
	}
	if rec.TeamAPts != 20 {
		t.Fatalf("team A keeps majority bonus, got %d", rec.TeamAPts)
	}
}

func TestScoreHandFullHandTotalsHundredPlusBonus(t *testing.T) {
	// All 100 deck points are distributed between trick points and the
	// go-down; with the 20-point majority bonus the earned columns sum to 120.
	tricks := []TrickRecord{}
	for i := 0; i < 4; i++ {
		tricks = append(tricks, trickTo(SeatA1, 20))
	}
	for i := 0; i < 4; i++ {
		tricks = append(tricks, trickTo(SeatB1, 0))
	}
	tricks = append(tricks, trickTo(SeatA2, 15))
	goDown := []Card{
		{Suit: SuitGreen, Rank: 5},
		{Suit: SuitGreen, Rank: 6},
		{Suit: SuitGreen, Rank: 7},
		{Suit: SuitGreen, Rank: 8},
	}
	g := scoringFixture(SeatA1, 65, tricks, goDown)
	scoreHand(&g)

	rec := g.Scores[0]
	if rec.TeamAPts+rec.TeamBPts != 120 {
		t.Fatalf("earned totals should be 100 deck points plus the bonus, got %d", rec.TeamAPts+rec.TeamBPts)
	}
}

func TestGameEndsWhenTotalExceedsWinScore(t *testing.T) {
	tricks := []TrickRecord{}
	for i := 0; i < 5; i++ {
		tricks = append(tricks, trickTo(SeatA1, 10))
	}
	for i := 0; i < 4; i++ {
		tricks = append(tricks, trickTo(SeatB1, 10))
	}
	g := scoringFixture(SeatA1, 65, tricks, nil)
	g.Scores = append(g.Scores, HandScoreRecord{TeamAPts: 480, TeamBPts: 0})
	scoreHand(&g)

	totalA, _ := TeamTotals(g)
	if totalA != 550 {
		t.Fatalf("total: got %d", totalA)
	}
	if g.Hand.Phase != PhaseGameOver {
		t.Fatalf("expected game over past %d", g.Rules.WinScore)
	}
}

func TestGameEndsWhenTotalFallsBelowLoseScore(t *testing.T) {
	tricks := []TrickRecord{}
	for i := 0; i < 9; i++ {
		tricks = append(tricks, trickTo(SeatB1, 0))
	}
	g := scoringFixture(SeatA1, 120, tricks, nil)
	g.Scores = append(g.Scores, HandScoreRecord{TeamAPts: -200, TeamBPts: 0})
	scoreHand(&g)

	totalA, _ := TeamTotals(g)
	if totalA != -320 {
		t.Fatalf("total: got %d", totalA)
	}
	if g.Hand.Phase != PhaseGameOver {
		t.Fatalf("expected game over below %d", g.Rules.LoseScore)
	}
}

func TestGameContinuesAtExactlyWinScore(t *testing.T) {
	tricks := []TrickRecord{}
	for i := 0; i < 5; i++ {
		tricks = append(tricks, trickTo(SeatA1, 10))
	}
	for i := 0; i < 4; i++ {
		tricks = append(tricks, trickTo(SeatB1, 10))
	}
	g := scoringFixture(SeatA1, 65, tricks, nil)
	g.Scores = append(g.Scores, HandScoreRecord{TeamAPts: 430, TeamBPts: 0})
	scoreHand(&g)

	totalA, _ := TeamTotals(g)
	if totalA != 500 {
		t.Fatalf("total: got %d", totalA)
	}
	if g.Hand.Phase == PhaseGameOver {
		t.Fatalf("game should only end when the total exceeds %d", g.Rules.WinScore)
	}
}
