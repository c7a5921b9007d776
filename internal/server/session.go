package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/slimsherpa/rook/internal/bots"
	"github.com/slimsherpa/rook/internal/engine"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session is the single authoritative decision-maker for one game: it owns
// the state, applies one intent at a time under the mutex, and publishes a
// snapshot after every accepted intent.
type Session struct {
	mu        sync.Mutex
	id        string
	state     engine.GameState
	started   bool
	humanSeat engine.Seat
	actionIds map[string]bool
	conn      *websocket.Conn
	botSeats  map[engine.Seat]bots.Bot
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = &Session{
			id:        uuid.NewString(),
			humanSeat: engine.SeatA1,
			actionIds: map[string]bool{},
			botSeats:  map[engine.Seat]bots.Bot{},
		}
	})
	return sessionInst
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type     string     `json:"type"`
	ActionId string     `json:"actionId,omitempty"`
	Seat     string     `json:"seat,omitempty"`
	Action   *ActionDTO `json:"action,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session":
		s.sendState(nil)
	case "start_game":
		s.startGame()
	case "request_state":
		s.sendState(nil)
	case "player_action":
		s.applyAction(msg.ActionId, msg.Seat, msg.Action)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) startGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = engine.NewGame(engine.StandardPreset(), time.Now().UnixNano())
	engine.DealHand(&s.state)
	s.started = true
	s.actionIds = map[string]bool{}
	s.botSeats = map[engine.Seat]bots.Bot{
		engine.SeatB1: bots.NewEasy(s.state.Seed + 1),
		engine.SeatA2: bots.NewNormal(s.state.Seed + 2),
		engine.SeatB2: bots.NewNormal(s.state.Seed + 3),
	}
	s.sendStateLocked(nil)
	s.botAutoPlayLocked()
}

func (s *Session) applyAction(actionId, seatName string, dto *ActionDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendError("not_started", "game not started")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		// Replayed intent: republish the snapshot, never reapply.
		s.sendStateLocked(nil)
		return
	}
	s.actionIds[actionId] = true

	action, err := dto.ToEngine()
	if err != nil {
		s.sendError("bad_action", err.Error())
		return
	}
	// The client drives the human seat by default; hotseat clients may
	// address another non-bot seat explicitly.
	seat := s.humanSeat
	if seatName != "" {
		parsed, err := parseSeat(seatName)
		if err != nil {
			s.sendError("bad_seat", err.Error())
			return
		}
		if _, isBot := s.botSeats[parsed]; isBot {
			s.sendError("bad_seat", "seat is bot controlled")
			return
		}
		seat = parsed
	}
	prev := s.state
	if err := engine.ApplyAction(&s.state, seat, action); err != nil {
		s.sendError("apply_failed", err.Error())
		return
	}
	s.ensureDealLocked()
	events := buildEvents(prev, s.state, seat, action)
	s.sendStateLocked(events)
	s.botAutoPlayLocked()
}

// botAutoPlayLocked lets bot seats act until the turn returns to the human
// or the game ends; a snapshot goes out after every accepted bot action.
func (s *Session) botAutoPlayLocked() {
	for {
		seat, ok := engine.CurrentSeat(s.state)
		if !ok {
			return
		}
		bot, isBot := s.botSeats[seat]
		if !isBot {
			return
		}
		prev := s.state
		action := bot.ChooseAction(s.state, seat)
		if err := engine.ApplyAction(&s.state, seat, action); err != nil {
			log.Printf("bot action error: %v", err)
			return
		}
		s.ensureDealLocked()
		events := buildEvents(prev, s.state, seat, action)
		s.sendStateLocked(events)
	}
}

// ensureDealLocked deals the next hand whenever scoring or a redeal has
// returned the session to the deal phase.
func (s *Session) ensureDealLocked() {
	if s.state.Hand.Phase == engine.PhaseDeal && !s.state.Hand.HandsDealt {
		engine.DealHand(&s.state)
	}
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	if !s.started {
		s.state = engine.NewGame(engine.StandardPreset(), 0)
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.state, s.humanSeat, s.id),
		Events: events,
	}
	_ = s.conn.WriteJSON(msg)
}

// sendError reports a rejection along with the unchanged snapshot, so the
// caller can re-present the legal options without a second round trip.
func (s *Session) sendError(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	if s.started {
		msg.State = BuildGameView(s.state, s.humanSeat, s.id)
	}
	_ = s.conn.WriteJSON(msg)
}
