package server

import (
	"errors"
	"fmt"

	"github.com/slimsherpa/rook/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
}

type ActionDTO struct {
	Type  string    `json:"type"`
	Bid   int       `json:"bid,omitempty"`
	Suit  string    `json:"suit,omitempty"`
	Card  *CardDTO  `json:"card,omitempty"`
	Cards []CardDTO `json:"cards,omitempty"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "bid":
		return engine.Action{Type: engine.ActionBid, Bid: a.Bid}, nil
	case "pass":
		return engine.Action{Type: engine.ActionPass}, nil
	case "set_go_down":
		if len(a.Cards) == 0 {
			return engine.Action{}, errors.New("go-down cards required")
		}
		cards := make([]engine.Card, 0, len(a.Cards))
		for _, c := range a.Cards {
			card, err := c.toEngine()
			if err != nil {
				return engine.Action{}, err
			}
			cards = append(cards, card)
		}
		return engine.Action{Type: engine.ActionSetGoDown, Cards: cards}, nil
	case "choose_trump":
		s, err := parseSuit(a.Suit)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionChooseTrump, Suit: &s}, nil
	case "play_card":
		if a.Card == nil {
			return engine.Action{}, errors.New("card required")
		}
		card, err := a.Card.toEngine()
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionPlayCard, Card: &card}, nil
	case "redeal", "start_new_hand":
		return engine.Action{Type: engine.ActionRedeal}, nil
	default:
		return engine.Action{}, fmt.Errorf("unknown action type %q", a.Type)
	}
}

func ActionFromEngine(a engine.Action) ActionDTO {
	switch a.Type {
	case engine.ActionBid:
		return ActionDTO{Type: "bid", Bid: a.Bid}
	case engine.ActionPass:
		return ActionDTO{Type: "pass"}
	case engine.ActionSetGoDown:
		cards := make([]CardDTO, 0, len(a.Cards))
		for _, c := range a.Cards {
			cards = append(cards, cardToDTO(c))
		}
		return ActionDTO{Type: "set_go_down", Cards: cards}
	case engine.ActionChooseTrump:
		if a.Suit == nil {
			return ActionDTO{Type: "choose_trump"}
		}
		return ActionDTO{Type: "choose_trump", Suit: a.Suit.String()}
	case engine.ActionPlayCard:
		if a.Card == nil {
			return ActionDTO{Type: "play_card"}
		}
		card := cardToDTO(*a.Card)
		return ActionDTO{Type: "play_card", Card: &card}
	case engine.ActionRedeal:
		return ActionDTO{Type: "redeal"}
	default:
		return ActionDTO{Type: "unknown"}
	}
}

func (c CardDTO) toEngine() (engine.Card, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	if engine.Rank(c.Rank) < engine.RankMin || engine.Rank(c.Rank) > engine.RankMax {
		return engine.Card{}, fmt.Errorf("invalid rank %d", c.Rank)
	}
	return engine.Card{Suit: s, Rank: engine.Rank(c.Rank)}, nil
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Rank: int(c.Rank)}
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "Red":
		return engine.SuitRed, nil
	case "Yellow":
		return engine.SuitYellow, nil
	case "Black":
		return engine.SuitBlack, nil
	case "Green":
		return engine.SuitGreen, nil
	default:
		return engine.SuitRed, fmt.Errorf("invalid suit %q", s)
	}
}

func parseSeat(s string) (engine.Seat, error) {
	switch s {
	case "A1":
		return engine.SeatA1, nil
	case "B1":
		return engine.SeatB1, nil
	case "A2":
		return engine.SeatA2, nil
	case "B2":
		return engine.SeatB2, nil
	default:
		return engine.SeatNone, fmt.Errorf("invalid seat %q", s)
	}
}
