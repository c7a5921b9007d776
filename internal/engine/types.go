package engine

import "fmt"

type Suit int

// Rank is the card's face number, 5 through 14. Higher rank wins within a suit.
type Rank int

const (
	SuitRed Suit = iota
	SuitYellow
	SuitBlack
	SuitGreen
)

const (
	RankMin Rank = 5
	RankMax Rank = 14
)

func (s Suit) String() string {
	switch s {
	case SuitRed:
		return "Red"
	case SuitYellow:
		return "Yellow"
	case SuitBlack:
		return "Black"
	case SuitGreen:
		return "Green"
	default:
		return "?"
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s %d", c.Suit.String(), c.Rank)
}

// Seat is a fixed table position. The turn ring is A1 -> B1 -> A2 -> B2 -> A1.
type Seat int

const (
	SeatA1 Seat = iota
	SeatB1
	SeatA2
	SeatB2
)

const NumSeats = 4

// SeatNone marks an unset seat field (no bid winner yet).
const SeatNone Seat = -1

func (s Seat) String() string {
	switch s {
	case SeatA1:
		return "A1"
	case SeatB1:
		return "B1"
	case SeatA2:
		return "A2"
	case SeatB2:
		return "B2"
	default:
		return "?"
	}
}

func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	if t == TeamA {
		return "A"
	}
	return "B"
}

func (t Team) Other() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// Team membership alternates around the ring: A1 and A2 partner against B1 and B2.
func (s Seat) Team() Team {
	if s == SeatA1 || s == SeatA2 {
		return TeamA
	}
	return TeamB
}

type Phase int

const (
	PhaseDeal Phase = iota
	PhaseBidding
	PhaseGoDown
	PhaseTrumpSelect
	PhasePlayTricks
	PhaseGameOver
)

type Rules struct {
	HandSize      int
	WidowSize     int
	TricksPerHand int
	BidMin        int
	BidMax        int
	BidStep       int
	TrickBonus    int
	WinScore      int
	LoseScore     int
}

func StandardPreset() Rules {
	return Rules{
		HandSize:      9,
		WidowSize:     4,
		TricksPerHand: 9,
		BidMin:        65,
		BidMax:        120,
		BidStep:       5,
		TrickBonus:    20,
		WinScore:      500,
		LoseScore:     -250,
	}
}

type PlayerState struct {
	Seat   Seat
	Name   string
	Hand   []Card
	Bid    int // 0 until the player places a bid
	Passed bool
}

type PlayedCard struct {
	Seat Seat
	Card Card
}

// TrickRecord is a completed trick; immutable once appended to HandState.Tricks.
type TrickRecord struct {
	Plays  []PlayedCard
	Winner Seat
}

// HandScoreRecord is the settled result of one hand. Game totals are always
// recomputed as column sums over the record history, never accumulated apart.
type HandScoreRecord struct {
	Dealer     Seat
	BidWinner  string
	WinningBid int
	TeamAPts   int
	TeamBPts   int
}

type HandState struct {
	Phase      Phase
	Dealer     Seat
	HandsDealt bool
	Widow      []Card
	BidTurn    Seat
	BidWinner  Seat
	BidValue   int
	GoDown     []Card
	GoDownSet  bool
	Trump      *Suit
	Leader     Seat
	TrickPlays []PlayedCard
	Tricks     []TrickRecord
}

type GameState struct {
	Rules   Rules
	Seed    int64
	Hand    HandState
	Players [NumSeats]PlayerState
	Scores  []HandScoreRecord
}

func NewGame(r Rules, seed int64) GameState {
	g := GameState{
		Rules: r,
		Seed:  seed,
		Hand: HandState{
			Phase:     PhaseDeal,
			Dealer:    SeatA1,
			BidWinner: SeatNone,
		},
	}
	for s := Seat(0); s < NumSeats; s++ {
		g.Players[s] = PlayerState{
			Seat: s,
			Name: fmt.Sprintf("Player %d", int(s)+1),
		}
	}
	return g
}

// ResetHand clears all per-hand transient state, keeping the dealer and the
// score history. The next deal starts from PhaseDeal.
func (g *GameState) ResetHand() {
	g.Hand = HandState{
		Phase:     PhaseDeal,
		Dealer:    g.Hand.Dealer,
		BidWinner: SeatNone,
	}
	for s := range g.Players {
		g.Players[s].Hand = nil
		g.Players[s].Bid = 0
		g.Players[s].Passed = false
	}
}

// TeamTotals recomputes the running game score for both teams from the
// hand score history.
func TeamTotals(g GameState) (a, b int) {
	for _, rec := range g.Scores {
		a += rec.TeamAPts
		b += rec.TeamBPts
	}
	return a, b
}

// TrickCounts tallies completed tricks of the current hand per team.
func TrickCounts(g GameState) (a, b int) {
	for _, t := range g.Hand.Tricks {
		if t.Winner.Team() == TeamA {
			a++
		} else {
			b++
		}
	}
	return a, b
}
