package game

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Engine applies actions to game states. It holds no game state of its
// own; Rng and Clock are its only sources of nondeterminism.
type Engine struct {
	Rng   Rng
	Clock Clock

	printer *message.Printer
}

// NewEngine builds an engine that narrates in lang.
func NewEngine(rng Rng, clock Clock, lang language.Tag) *Engine {
	return &Engine{Rng: rng, Clock: clock, printer: message.NewPrinter(lang)}
}

// rejection is a refused action: the state stays as it was, plus one log
// entry unless the rejection is silent.
type rejection struct {
	code string
	args []any
}

func reject(code string, args ...any) *rejection {
	return &rejection{code: code, args: args}
}

var silent = &rejection{}

// Apply returns the state that follows st after a. It never fails: an
// illegal action yields st with at most one extra log entry.
func (e *Engine) Apply(st GameState, a Action) GameState {
	switch act := a.(type) {
	case StartGame:
		return e.startGame(act)
	case ToggleGodMode:
		next := st.clone()
		next.IsGodMode = !next.IsGodMode
		e.log(&next, codeGodMode, next.IsGodMode)
		return next
	case ClearPeek:
		next := st.clone()
		next.PeekCards = nil
		return next
	case ClearScout:
		next := st.clone()
		next.ScoutCards = nil
		return next
	case ClearHPUpdates:
		next := st.clone()
		next.HPUpdates = nil
		return next
	case ClearLastEffect:
		next := st.clone()
		next.LastEffect = nil
		return next
	}

	if st.Status != StatusPlaying {
		return st
	}
	if st.MerchantActive() {
		switch a.(type) {
		case MerchantBuy, MerchantLeave:
		default:
			return e.rejected(st, reject(codeMerchantBusy))
		}
	}

	next := st.clone()
	next.LastEffect = nil

	var rej *rejection
	switch act := a.(type) {
	case TakeCardToHand:
		rej = e.takeCardToHand(&next, act)
	case MoveItem:
		rej = e.moveItem(&next, act)
	case InteractWithMonster:
		rej = e.interactWithMonster(&next, act)
	case UsePotion:
		rej = e.usePotion(&next, act)
	case CollectCoin:
		rej = e.collectCoin(&next, act)
	case UseSpellOnTarget:
		rej = e.useSpell(&next, act)
	case SellItem:
		rej = e.sellItem(&next, act)
	case ResetHand:
		rej = e.resetHand(&next)
	case ActivateCurse:
		rej = e.activateCurse(&next, act)
	case MerchantBuy:
		rej = e.merchantBuy(&next, act)
	case MerchantLeave:
		rej = e.merchantLeave(&next)
	default:
		rej = reject(codeUnknownAction)
	}
	if rej != nil {
		return e.rejected(st, rej)
	}

	if _, isCurse := a.(ActivateCurse); !isCurse {
		next.HasActed = true
	}
	e.settle(&next)
	return next
}

func (e *Engine) startGame(a StartGame) GameState {
	deck := GenerateDeck(a.Config, a.Content, e.Rng)
	maxHP := a.Config.maxHP()
	st := GameState{
		Status:      StatusPlaying,
		Player:      Player{HP: maxHP, MaxHP: maxHP, BaseMaxHP: maxHP, Coins: a.Config.StartGold},
		Deck:        deck,
		IssuedCards: len(deck),
	}
	e.log(&st, codeGameStarted, len(deck))
	e.settle(&st)
	return st
}

func (e *Engine) rejected(st GameState, rej *rejection) GameState {
	if rej == silent {
		return st
	}
	next := st.clone()
	e.log(&next, rej.code, rej.args...)
	return next
}

// settle runs after every applied action: passives are refreshed, an empty
// table is dealt, a dealt merchant opens its event, and the run ends when
// the hero is dead or nothing is left to play.
func (e *Engine) settle(st *GameState) {
	for {
		e.refreshPassives(st)
		if st.Player.HP <= 0 {
			st.Player.HP = 0
			st.Status = StatusLost
			e.log(st, codeGameLost)
			return
		}
		if st.TableEmpty() && len(st.Deck) > 0 {
			e.deal(st)
			continue
		}
		if !st.MerchantActive() {
			if idx := merchantTokenSlot(st); idx >= 0 {
				e.openMerchant(st, idx)
			}
		}
		break
	}
	if st.TableEmpty() && len(st.Deck) == 0 {
		st.Status = StatusWon
		e.log(st, codeGameWon)
	}
}

// deal fills the table from the top of the deck and runs on-spawn
// abilities of the new monsters in slot order.
func (e *Engine) deal(st *GameState) {
	var spawned []int
	for i := 0; i < TableSize && len(st.Deck) > 0; i++ {
		if st.EnemySlots[i] != nil {
			continue
		}
		st.EnemySlots[i] = st.Deck[0]
		st.Deck = st.Deck[1:]
		if st.EnemySlots[i].Type == CardMonster {
			spawned = append(spawned, i)
		}
	}
	for _, i := range spawned {
		if m := st.EnemySlots[i]; m != nil {
			e.resolveAbility(st, abilityEvent{Trigger: TriggerSpawn, Slot: i, Monster: m})
		}
	}
}

// refreshPassives recomputes values that depend on which monsters are alive.
func (e *Engine) refreshPassives(st *GameState) {
	exhausted := countAlive(st, AbilityExhaustion)
	st.Player.MaxHP = max(1, st.Player.BaseMaxHP-exhausted)
	if st.Player.HP > st.Player.MaxHP {
		e.setHP(st, st.Player.MaxHP)
	}
	st.Backpack.Blocked = countAlive(st, AbilityWeb) > 0
}

func (e *Engine) now() int64 {
	if e.Clock == nil {
		return 0
	}
	return e.Clock.Now().UnixMilli()
}

var defaultPrinter = message.NewPrinter(DefaultLanguage)

func (e *Engine) p() *message.Printer {
	if e.printer == nil {
		return defaultPrinter
	}
	return e.printer
}

// log prepends a narration entry; logs are newest first.
func (e *Engine) log(st *GameState, code string, args ...any) {
	st.LogSeq++
	entry := LogEntry{
		ID:      fmt.Sprintf("%d-%d", e.now(), st.LogSeq),
		Code:    code,
		Message: e.p().Sprintf(code, args...),
	}
	st.Logs = append([]LogEntry{entry}, st.Logs...)
}

func (e *Engine) setHP(st *GameState, hp int) {
	if hp == st.Player.HP {
		return
	}
	st.Player.HP = hp
	st.HPUpdates = append(st.HPUpdates, HPUpdate{Timestamp: e.now(), To: hp})
}

func (e *Engine) damageHero(st *GameState, n int) {
	if n <= 0 {
		return
	}
	st.Stats.DamageTaken += n
	e.setHP(st, st.Player.HP-n)
}

// healHero heals up to MaxHP and returns the HP actually restored.
func (e *Engine) healHero(st *GameState, n int) int {
	if n <= 0 {
		return 0
	}
	target := st.Player.HP + n
	capped := min(target, st.Player.MaxHP)
	st.Overheads.Overheal += target - capped
	healed := max(0, capped-st.Player.HP)
	st.Stats.Healed += healed
	e.setHP(st, max(capped, st.Player.HP))
	return healed
}

func (st *GameState) nextCardID() string {
	st.IssuedCards++
	return cardID(st.IssuedCards)
}

func (st *GameState) discard(c *Card) {
	if c != nil {
		st.DiscardPile = append(st.DiscardPile, c)
	}
}

// cardLoc is where a card currently sits: a table slot or an inventory slot.
type cardLoc struct {
	table int
	hand  HandSlot
}

func (l cardLoc) onTable() bool { return l.hand == "" }

func (st *GameState) findCard(id string) (cardLoc, *Card, bool) {
	if id == "" {
		return cardLoc{}, nil, false
	}
	for i, c := range st.EnemySlots {
		if c != nil && c.ID == id {
			return cardLoc{table: i}, c, true
		}
	}
	for _, h := range inventoryOrder {
		if c := st.slot(h).Card; c != nil && c.ID == id {
			return cardLoc{hand: h}, c, true
		}
	}
	return cardLoc{}, nil, false
}

func (st *GameState) takeAt(l cardLoc) *Card {
	if l.onTable() {
		c := st.EnemySlots[l.table]
		st.EnemySlots[l.table] = nil
		return c
	}
	s := st.slot(l.hand)
	c := s.Card
	s.Card = nil
	return c
}

func (st *GameState) putAt(l cardLoc, c *Card) {
	if l.onTable() {
		st.EnemySlots[l.table] = c
		return
	}
	st.slot(l.hand).Card = c
}

// usableFrom rejects cards the hero cannot reach: a blocked backpack.
func (st *GameState) usableFrom(l cardLoc) *rejection {
	if !l.onTable() && st.slot(l.hand).Blocked {
		return reject(codeSlotBlocked)
	}
	return nil
}
