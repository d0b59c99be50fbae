package game

// CardType classifies what a card does when it is played.
type CardType string

const (
	CardWeapon   CardType = "weapon"
	CardShield   CardType = "shield"
	CardPotion   CardType = "potion"
	CardCoin     CardType = "coin"
	CardMonster  CardType = "monster"
	CardSpell    CardType = "spell"
	CardSkull    CardType = "skull"
	CardMerchant CardType = "merchant"
)

// Label is the tier classification of a monster card.
type Label string

const (
	LabelOrdinary Label = "ordinary"
	LabelTank     Label = "tank"
	LabelMedium   Label = "medium"
	LabelMiniBoss Label = "mini_boss"
	LabelBoss     Label = "boss"
)

// Card is a unit of play. Cards are never mutated once built; every change
// produces a new card (see withValue).
type Card struct {
	ID          string    `json:"id"`
	Type        CardType  `json:"type"`
	Value       int       `json:"value"`
	Icon        string    `json:"icon,omitempty"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Ability     AbilityID `json:"ability,omitempty"`
	Label       Label     `json:"label,omitempty"`
	Spell       SpellID   `json:"spell,omitempty"`
	IsHidden    bool      `json:"isHidden,omitempty"`
	IsBoss      bool      `json:"isBoss,omitempty"`

	MerchantAction    string   `json:"merchantAction,omitempty"` // "buy" | "leave"
	MerchantOfferType CardType `json:"merchantOfferType,omitempty"`
	MerchantPrice     int      `json:"merchantPrice,omitempty"`
}

func (c *Card) withValue(v int) *Card {
	cp := *c
	cp.Value = v
	return &cp
}

// Status is the lifecycle phase of a run.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Player holds the hero's vital numbers.
type Player struct {
	HP        int `json:"hp"`
	MaxHP     int `json:"maxHp"`
	BaseMaxHP int `json:"baseMaxHp"`
	Coins     int `json:"coins"`
}

// Slot is one inventory position (left hand, right hand or backpack).
type Slot struct {
	Card    *Card `json:"card"`
	Blocked bool  `json:"blocked"`
}

// HandSlot names an inventory position.
type HandSlot string

const (
	HandLeft     HandSlot = "left"
	HandRight    HandSlot = "right"
	HandBackpack HandSlot = "backpack"
)

// inventoryOrder is the fixed search order used by abilities.
var inventoryOrder = []HandSlot{HandLeft, HandRight, HandBackpack}

// LogEntry is one line of combat narration, newest first in GameState.Logs.
type LogEntry struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HPUpdate is a staged HP change the UI animates in order.
type HPUpdate struct {
	Timestamp int64 `json:"timestamp"`
	To        int   `json:"to"`
}

// VisualEffect describes a targeted effect the UI should play once.
type VisualEffect struct {
	Kind    string `json:"kind"`
	Target  string `json:"target"`
	CardID  string `json:"cardId,omitempty"`
	Amount  int    `json:"amount,omitempty"`
	Delayed bool   `json:"delayed,omitempty"`
}

// Stats are running totals for the current run.
type Stats struct {
	DamageDealt    int `json:"damageDealt"`
	DamageTaken    int `json:"damageTaken"`
	MonstersKilled int `json:"monstersKilled"`
	MonstersFled   int `json:"monstersFled"`
	Healed         int `json:"healed"`
	CoinsEarned    int `json:"coinsEarned"`
	SpellsCast     int `json:"spellsCast"`
}

// Overheads track value that was wasted during the run.
type Overheads struct {
	Overheal    int `json:"overheal"`
	Overkill    int `json:"overkill"`
	Overdefense int `json:"overdefense"`
}

// EffectID names a transient buff or debuff.
type EffectID string

const EffectMiss EffectID = "miss"

// TableSize is the number of enemy slots on the table.
const TableSize = 4

// MerchantState is the nested state of the traveling-merchant event.
type MerchantState struct {
	IsActive         bool             `json:"isActive"`
	OverlaySlots     [TableSize]*Card `json:"overlaySlots"`
	BlockedSlotIndex int              `json:"blockedSlotIndex"`
}

// GameState is the aggregate root of a run. Only Engine.Apply produces new
// values; callers treat it as read-only.
type GameState struct {
	Status        Status           `json:"status"`
	Player        Player           `json:"player"`
	Deck          []*Card          `json:"deck"`
	DiscardPile   []*Card          `json:"discardPile"`
	EnemySlots    [TableSize]*Card `json:"enemySlots"`
	LeftHand      Slot             `json:"leftHand"`
	RightHand     Slot             `json:"rightHand"`
	Backpack      Slot             `json:"backpack"`
	Curse         CurseType        `json:"curse,omitempty"`
	HasActed      bool             `json:"hasActed"`
	ActiveEffects []EffectID       `json:"activeEffects"`
	Logs          []LogEntry       `json:"logs"`
	HPUpdates     []HPUpdate       `json:"hpUpdates"`
	LastEffect    []VisualEffect   `json:"lastEffect,omitempty"`
	Stats         Stats            `json:"stats"`
	Overheads     Overheads        `json:"overheads"`
	PeekCards     []*Card          `json:"peekCards,omitempty"`
	ScoutCards    []*Card          `json:"scoutCards,omitempty"`
	Merchant      *MerchantState   `json:"merchant,omitempty"`
	IsGodMode     bool             `json:"isGodMode"`

	IssuedCards int `json:"issuedCards"`
	LogSeq      int `json:"logSeq"`
}

// slot returns a pointer to the named inventory slot.
func (st *GameState) slot(h HandSlot) *Slot {
	switch h {
	case HandLeft:
		return &st.LeftHand
	case HandRight:
		return &st.RightHand
	case HandBackpack:
		return &st.Backpack
	default:
		return nil
	}
}

// clone copies every nested record so the caller can change the copy
// without touching the original. Cards are shared since they are immutable.
func (st GameState) clone() GameState {
	next := st
	next.Deck = append([]*Card(nil), st.Deck...)
	next.DiscardPile = append([]*Card(nil), st.DiscardPile...)
	next.ActiveEffects = append([]EffectID(nil), st.ActiveEffects...)
	next.Logs = append([]LogEntry(nil), st.Logs...)
	next.HPUpdates = append([]HPUpdate(nil), st.HPUpdates...)
	next.LastEffect = append([]VisualEffect(nil), st.LastEffect...)
	next.PeekCards = append([]*Card(nil), st.PeekCards...)
	next.ScoutCards = append([]*Card(nil), st.ScoutCards...)
	if st.Merchant != nil {
		m := *st.Merchant
		next.Merchant = &m
	}
	return next
}

// CardsInPlay counts every card the run still tracks: piles, table,
// inventory and the merchant overlay.
func (st GameState) CardsInPlay() int {
	n := len(st.Deck) + len(st.DiscardPile)
	for _, c := range st.EnemySlots {
		if c != nil {
			n++
		}
	}
	for _, h := range inventoryOrder {
		if st.slot(h).Card != nil {
			n++
		}
	}
	if st.Merchant != nil {
		for _, c := range st.Merchant.OverlaySlots {
			if c != nil {
				n++
			}
		}
	}
	return n
}

// TableEmpty reports whether no card is on the table.
func (st GameState) TableEmpty() bool {
	for _, c := range st.EnemySlots {
		if c != nil {
			return false
		}
	}
	return true
}

// MerchantActive reports whether the merchant event is in progress.
func (st GameState) MerchantActive() bool {
	return st.Merchant != nil && st.Merchant.IsActive
}
