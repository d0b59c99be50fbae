package game

// Action is one player or UI intent applied by Engine.Apply. The set of
// variants is closed: only types in this file implement it.
type Action interface {
	isAction()
}

// InteractionSource is what the hero uses against a monster.
type InteractionSource string

const (
	SourceWeaponLeft  InteractionSource = "weapon_left"
	SourceWeaponRight InteractionSource = "weapon_right"
	SourceShieldLeft  InteractionSource = "shield_left"
	SourceShieldRight InteractionSource = "shield_right"
	SourcePlayer      InteractionSource = "player"
)

// TargetKind is what a spell is aimed at.
type TargetKind string

const (
	TargetMonster TargetKind = "monster"
	TargetPlayer  TargetKind = "player"
)

type (
	// StartGame deals a fresh run from Config; Content supplies display metadata.
	StartGame struct {
		Config  DeckConfig
		Content Content
	}

	// TakeCardToHand moves a table card into an empty inventory slot.
	TakeCardToHand struct {
		CardID string
		Target HandSlot
	}

	// MoveItem moves an inventory card into another, empty, inventory slot.
	MoveItem struct {
		From HandSlot
		To   HandSlot
	}

	// InteractWithMonster resolves combat between Source and a table monster.
	InteractWithMonster struct {
		MonsterID string
		Source    InteractionSource
	}

	UsePotion struct {
		CardID string
	}

	CollectCoin struct {
		CardID string
	}

	// UseSpellOnTarget casts the spell card SpellCardID. TargetID is the
	// monster card id when Kind is TargetMonster and ignored otherwise.
	UseSpellOnTarget struct {
		SpellCardID string
		Kind        TargetKind
		TargetID    string
	}

	SellItem struct {
		CardID string
	}

	ResetHand struct{}

	ActivateCurse struct {
		Curse   CurseType
		Content Content
	}

	MerchantBuy struct {
		OfferID    string
		TargetHand HandSlot
	}

	MerchantLeave struct{}

	ToggleGodMode struct{}

	ClearPeek struct{}

	ClearScout struct{}

	ClearHPUpdates struct{}

	ClearLastEffect struct{}
)

func (StartGame) isAction()           {}
func (TakeCardToHand) isAction()      {}
func (MoveItem) isAction()            {}
func (InteractWithMonster) isAction() {}
func (UsePotion) isAction()           {}
func (CollectCoin) isAction()         {}
func (UseSpellOnTarget) isAction()    {}
func (SellItem) isAction()            {}
func (ResetHand) isAction()           {}
func (ActivateCurse) isAction()       {}
func (MerchantBuy) isAction()         {}
func (MerchantLeave) isAction()       {}
func (ToggleGodMode) isAction()       {}
func (ClearPeek) isAction()           {}
func (ClearScout) isAction()          {}
func (ClearHPUpdates) isAction()      {}
func (ClearLastEffect) isAction()     {}
