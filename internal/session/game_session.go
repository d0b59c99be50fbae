package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/text/language"

	"skazmor/internal/game"
)

var (
	// ErrUnknownIntent is returned for an intent kind the facade does not map.
	ErrUnknownIntent = errors.New("unknown intent")
	// ErrGodModeDisabled is returned when god mode is requested but not allowed.
	ErrGodModeDisabled = errors.New("god mode is disabled")
)

// Intent kinds accepted by Perform.
const (
	IntentStart         = "start"
	IntentTake          = "take"
	IntentMove          = "move"
	IntentAttack        = "attack"
	IntentPotion        = "potion"
	IntentCoin          = "coin"
	IntentSpell         = "spell"
	IntentSell          = "sell"
	IntentReset         = "reset"
	IntentCurse         = "curse"
	IntentMerchantBuy   = "merchant_buy"
	IntentMerchantLeave = "merchant_leave"
	IntentGodMode       = "god_mode"
	IntentClearPeek     = "clear_peek"
	IntentClearScout    = "clear_scout"
	IntentClearHP       = "clear_hp"
	IntentClearEffect   = "clear_effect"
)

// Intent is a UI-level request. Fields are read per Kind:
//
//	take:          CardID, Target (hand)
//	move:          From, Target (hands)
//	attack:        CardID (monster), Source
//	potion, coin:  CardID
//	spell:         CardID (spell), Target ("player" or monster id)
//	sell:          CardID
//	curse:         Curse
//	merchant_buy:  CardID (offer), Target (hand)
type Intent struct {
	Kind   string `json:"kind"`
	CardID string `json:"cardId,omitempty"`
	Target string `json:"target,omitempty"`
	From   string `json:"from,omitempty"`
	Source string `json:"source,omitempty"`
	Curse  string `json:"curse,omitempty"`
}

// RunRecorder receives every finished run exactly once.
type RunRecorder interface {
	RecordRun(ctx context.Context, seed int64, st game.GameState) error
}

// Factory builds sessions that share content, deck and settings.
type Factory struct {
	Content        game.Content
	Deck           game.DeckConfig
	Lang           language.Tag
	Seed           int64 // 0 draws a fresh seed per session
	GodModeAllowed bool
	Recorder       RunRecorder
	Clock          game.Clock
}

// New returns a session with its own seeded engine. The run is not started.
func (f Factory) New() (*GameSession, error) {
	seed := f.Seed
	if seed == 0 {
		var err error
		if seed, err = game.NewSeed(); err != nil {
			return nil, err
		}
	}
	clock := f.Clock
	if clock == nil {
		clock = game.SystemClock{}
	}
	return &GameSession{
		engine:         game.NewEngine(game.NewRng(seed), clock, f.Lang),
		content:        f.Content,
		deck:           f.Deck,
		seed:           seed,
		godModeAllowed: f.GodModeAllowed,
		recorder:       f.Recorder,
	}, nil
}

// GameSession owns one run. It is safe for concurrent use; actions are
// applied one at a time in arrival order.
type GameSession struct {
	mu             sync.Mutex
	engine         *game.Engine
	content        game.Content
	deck           game.DeckConfig
	state          game.GameState
	seed           int64
	godModeAllowed bool
	recorder       RunRecorder
	recorded       bool
}

// State returns the current snapshot.
func (s *GameSession) State() game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Seed returns the seed that drives this session's randomness.
func (s *GameSession) Seed() int64 {
	return s.seed
}

// Perform maps in to an action, applies it and returns the new state.
func (s *GameSession) Perform(ctx context.Context, in Intent) (game.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.action(in)
	if err != nil {
		return s.state, err
	}
	if _, ok := a.(game.StartGame); ok {
		s.recorded = false
	}
	s.state = s.engine.Apply(s.state, a)

	if s.state.Status != game.StatusPlaying && !s.recorded && s.recorder != nil {
		s.recorded = true
		if err := s.recorder.RecordRun(ctx, s.seed, s.state); err != nil {
			log.Printf("record run: %v", err)
		}
	}
	return s.state, nil
}

func (s *GameSession) action(in Intent) (game.Action, error) {
	switch in.Kind {
	case IntentStart:
		return game.StartGame{Config: s.deck, Content: s.content}, nil
	case IntentTake:
		return game.TakeCardToHand{CardID: in.CardID, Target: game.HandSlot(in.Target)}, nil
	case IntentMove:
		return game.MoveItem{From: game.HandSlot(in.From), To: game.HandSlot(in.Target)}, nil
	case IntentAttack:
		return game.InteractWithMonster{MonsterID: in.CardID, Source: game.InteractionSource(in.Source)}, nil
	case IntentPotion:
		return game.UsePotion{CardID: in.CardID}, nil
	case IntentCoin:
		return game.CollectCoin{CardID: in.CardID}, nil
	case IntentSpell:
		if in.Target == "" || in.Target == string(game.TargetPlayer) {
			return game.UseSpellOnTarget{SpellCardID: in.CardID, Kind: game.TargetPlayer}, nil
		}
		return game.UseSpellOnTarget{SpellCardID: in.CardID, Kind: game.TargetMonster, TargetID: in.Target}, nil
	case IntentSell:
		return game.SellItem{CardID: in.CardID}, nil
	case IntentReset:
		return game.ResetHand{}, nil
	case IntentCurse:
		return game.ActivateCurse{Curse: game.CurseType(in.Curse), Content: s.content}, nil
	case IntentMerchantBuy:
		return game.MerchantBuy{OfferID: in.CardID, TargetHand: game.HandSlot(in.Target)}, nil
	case IntentMerchantLeave:
		return game.MerchantLeave{}, nil
	case IntentGodMode:
		if !s.godModeAllowed {
			return nil, ErrGodModeDisabled
		}
		return game.ToggleGodMode{}, nil
	case IntentClearPeek:
		return game.ClearPeek{}, nil
	case IntentClearScout:
		return game.ClearScout{}, nil
	case IntentClearHP:
		return game.ClearHPUpdates{}, nil
	case IntentClearEffect:
		return game.ClearLastEffect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, in.Kind)
	}
}
