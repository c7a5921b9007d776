package server

import "github.com/slimsherpa/rook/internal/engine"

type PlayerView struct {
	Seat      string    `json:"seat"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
	Bid       int       `json:"bid,omitempty"`
	Passed    bool      `json:"passed"`
}

type PlayedCardView struct {
	Seat string  `json:"seat"`
	Card CardDTO `json:"card"`
}

type TrickView struct {
	Plays  []PlayedCardView `json:"plays"`
	Winner string           `json:"winner"`
}

type HandScoreView struct {
	Dealer     string `json:"dealer"`
	BidWinner  string `json:"bidWinner"`
	WinningBid int    `json:"winningBid"`
	TeamAPts   int    `json:"teamAPoints"`
	TeamBPts   int    `json:"teamBPoints"`
}

type HandView struct {
	Phase       string           `json:"phase"`
	Dealer      string           `json:"dealer"`
	BidTurn     string           `json:"bidTurn,omitempty"`
	BidWinner   string           `json:"bidWinner,omitempty"`
	BidValue    int              `json:"bidValue"`
	WidowCount  int              `json:"widowCount"`
	GoDownSet   bool             `json:"goDownSet"`
	Trump       *string          `json:"trump,omitempty"`
	Leader      string           `json:"leader,omitempty"`
	TrickNumber int              `json:"trickNumber"`
	TrickPlays  []PlayedCardView `json:"trickPlays"`
	Tricks      []TrickView      `json:"tricks"`
}

type TeamScoreView struct {
	A int `json:"a"`
	B int `json:"b"`
}

type GameView struct {
	SessionID    string          `json:"sessionId"`
	Players      []PlayerView    `json:"players"`
	Hand         HandView        `json:"hand"`
	Scores       []HandScoreView `json:"scores"`
	Totals       TeamScoreView   `json:"totals"`
	TrickCounts  TeamScoreView   `json:"trickCounts"`
	LegalActions []ActionDTO     `json:"legalActions"`
}

// BuildGameView renders a snapshot for one viewing seat. Only the viewer's
// hand is serialized with faces; other hands appear as counts. The engine
// itself is visibility-agnostic, so redaction happens here.
func BuildGameView(g engine.GameState, viewer engine.Seat, sessionID string) *GameView {
	players := make([]PlayerView, 0, engine.NumSeats)
	for s := engine.Seat(0); s < engine.NumSeats; s++ {
		p := g.Players[s]
		view := PlayerView{
			Seat:      s.String(),
			Name:      p.Name,
			Team:      s.Team().String(),
			HandCount: len(p.Hand),
			Bid:       p.Bid,
			Passed:    p.Passed,
		}
		if s == viewer {
			for _, c := range p.Hand {
				view.Hand = append(view.Hand, cardToDTO(c))
			}
		}
		players = append(players, view)
	}

	var trump *string
	if g.Hand.Trump != nil {
		s := g.Hand.Trump.String()
		trump = &s
	}

	hand := HandView{
		Phase:       phaseToString(g.Hand.Phase),
		Dealer:      g.Hand.Dealer.String(),
		BidValue:    g.Hand.BidValue,
		WidowCount:  len(g.Hand.Widow),
		GoDownSet:   g.Hand.GoDownSet,
		Trump:       trump,
		TrickNumber: len(g.Hand.Tricks) + 1,
		TrickPlays:  playsToViews(g.Hand.TrickPlays),
	}
	if g.Hand.Phase == engine.PhaseBidding {
		hand.BidTurn = g.Hand.BidTurn.String()
	}
	if g.Hand.BidWinner != engine.SeatNone {
		hand.BidWinner = g.Hand.BidWinner.String()
	}
	if g.Hand.Phase == engine.PhasePlayTricks {
		hand.Leader = g.Hand.Leader.String()
	}
	for _, t := range g.Hand.Tricks {
		hand.Tricks = append(hand.Tricks, TrickView{
			Plays:  playsToViews(t.Plays),
			Winner: t.Winner.String(),
		})
	}

	scores := make([]HandScoreView, 0, len(g.Scores))
	for _, rec := range g.Scores {
		scores = append(scores, HandScoreView{
			Dealer:     rec.Dealer.String(),
			BidWinner:  rec.BidWinner,
			WinningBid: rec.WinningBid,
			TeamAPts:   rec.TeamAPts,
			TeamBPts:   rec.TeamBPts,
		})
	}
	totalA, totalB := engine.TeamTotals(g)
	countA, countB := engine.TrickCounts(g)

	legal := []ActionDTO{}
	for _, a := range engine.LegalActions(g, viewer) {
		legal = append(legal, ActionFromEngine(a))
	}

	return &GameView{
		SessionID:    sessionID,
		Players:      players,
		Hand:         hand,
		Scores:       scores,
		Totals:       TeamScoreView{A: totalA, B: totalB},
		TrickCounts:  TeamScoreView{A: countA, B: countB},
		LegalActions: legal,
	}
}

func playsToViews(plays []engine.PlayedCard) []PlayedCardView {
	out := make([]PlayedCardView, 0, len(plays))
	for _, p := range plays {
		out = append(out, PlayedCardView{Seat: p.Seat.String(), Card: cardToDTO(p.Card)})
	}
	return out
}

func phaseToString(p engine.Phase) string {
	switch p {
	case engine.PhaseDeal:
		return "Dealing"
	case engine.PhaseBidding:
		return "Bidding"
	case engine.PhaseGoDown:
		return "SelectingGoDown"
	case engine.PhaseTrumpSelect:
		return "SelectingTrump"
	case engine.PhasePlayTricks:
		return "PlayingTricks"
	case engine.PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
