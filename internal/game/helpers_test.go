package game

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

// scriptedRng replays vals in order and then keeps returning 0.
type scriptedRng struct {
	vals []float64
	i    int
}

func (r *scriptedRng) Float64() float64 {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i]
	r.i++
	return v
}

type fixedClock struct{}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func (fixedClock) Now() time.Time { return testNow }

func testEngine(vals ...float64) *Engine {
	return NewEngine(&scriptedRng{vals: vals}, fixedClock{}, language.English)
}

func monster(id string, hp int, ability AbilityID) *Card {
	return &Card{ID: id, Type: CardMonster, Value: hp, Ability: ability, Label: LabelOrdinary}
}

func item(id string, t CardType, v int) *Card {
	return &Card{ID: id, Type: t, Value: v}
}

func spellCard(id string, s SpellID) *Card {
	return &Card{ID: id, Type: CardSpell, Spell: s}
}

// newState builds a playing state with a 10/10 hero and the given table.
// Call seal after placing every other card.
func newState(slots ...*Card) GameState {
	st := GameState{
		Status: StatusPlaying,
		Player: Player{HP: 10, MaxHP: 10, BaseMaxHP: 10},
	}
	copy(st.EnemySlots[:], slots)
	return st
}

// seal records the current card count as the issued total.
func seal(st GameState) GameState {
	st.IssuedCards = st.CardsInPlay()
	return st
}

func lastCode(t *testing.T, st GameState) string {
	t.Helper()
	if len(st.Logs) == 0 {
		t.Fatalf("Expected at least one log entry")
	}
	return st.Logs[0].Code
}

func assertConserved(t *testing.T, st GameState) {
	t.Helper()
	if got := st.CardsInPlay(); got != st.IssuedCards {
		t.Errorf("Expected %d cards in play, got %d", st.IssuedCards, got)
	}
}
