package game

const (
	resetCost      = 5
	rotPenalty     = 2
	resetMinHPGate = 5
)

func (e *Engine) takeCardToHand(st *GameState, a TakeCardToHand) *rejection {
	loc, card, ok := st.findCard(a.CardID)
	if !ok || !loc.onTable() {
		return reject(codeCardNotFound)
	}
	switch card.Type {
	case CardWeapon, CardShield, CardPotion, CardSpell:
	case CardSkull:
		if a.Target != HandBackpack {
			return reject(codeTakeForbidden)
		}
	default:
		return reject(codeTakeForbidden)
	}
	target := st.slot(a.Target)
	if rej := emptySlot(target); rej != nil {
		return rej
	}
	target.Card = st.takeAt(loc)
	e.log(st, codeTakeDone, displayName(card), string(a.Target))
	return nil
}

func (e *Engine) moveItem(st *GameState, a MoveItem) *rejection {
	from := st.slot(a.From)
	if from == nil || a.From == a.To {
		return reject(codeMoveForbidden)
	}
	if from.Blocked {
		return reject(codeSlotBlocked)
	}
	if from.Card == nil {
		return reject(codeSlotEmpty)
	}
	if from.Card.Type == CardSkull {
		return reject(codeMoveForbidden)
	}
	to := st.slot(a.To)
	if rej := emptySlot(to); rej != nil {
		return rej
	}
	to.Card, from.Card = from.Card, nil
	e.log(st, codeMoveDone)
	return nil
}

func (e *Engine) usePotion(st *GameState, a UsePotion) *rejection {
	loc, card, ok := st.findCard(a.CardID)
	if !ok {
		return reject(codeCardNotFound)
	}
	if card.Type != CardPotion {
		return reject(codeNotPotion)
	}
	if rej := st.usableFrom(loc); rej != nil {
		return rej
	}
	heal := max(0, curseModifier(st.Curse, CardPotion, card.Value)-rotPenalty*countAlive(st, AbilityRot))
	st.takeAt(loc)
	healed := e.healHero(st, heal)
	e.log(st, codePotionHeal, healed)
	st.discard(card)
	return nil
}

func (e *Engine) collectCoin(st *GameState, a CollectCoin) *rejection {
	loc, card, ok := st.findCard(a.CardID)
	if !ok {
		return reject(codeCardNotFound)
	}
	if card.Type != CardCoin {
		return reject(codeNotCoin)
	}
	if rej := st.usableFrom(loc); rej != nil {
		return rej
	}
	value := curseModifier(st.Curse, CardCoin, card.Value)
	st.takeAt(loc)
	st.Player.Coins += value
	st.Stats.CoinsEarned += value
	e.log(st, codeCoinCollected, value)
	st.discard(card)
	return nil
}

func (e *Engine) sellItem(st *GameState, a SellItem) *rejection {
	if countAlive(st, AbilityScream) > 0 {
		return reject(codeSellScream)
	}
	loc, card, ok := st.findCard(a.CardID)
	if !ok {
		return reject(codeCardNotFound)
	}
	switch {
	case card.Type == CardMonster || card.Type == CardMerchant:
		return reject(codeSellForbidden)
	case loc.hand == HandLeft || loc.hand == HandRight:
		return reject(codeSellEquipped)
	case loc.hand == HandBackpack && st.Backpack.Blocked:
		return reject(codeSlotBlocked)
	case loc.hand == HandBackpack && card.Type == CardSkull:
		return reject(codeSellSkull)
	}
	value := curseModifier(st.Curse, card.Type, card.Value)
	st.takeAt(loc)
	st.Player.Coins += value
	st.Stats.CoinsEarned += value
	e.log(st, codeSellDone, value)
	st.discard(card)
	return nil
}

// resetHand sends the whole table to the bottom of the deck for 5 HP.
func (e *Engine) resetHand(st *GameState) *rejection {
	if !st.IsGodMode {
		if st.Player.HP <= resetMinHPGate {
			return reject(codeResetDenied)
		}
		for _, c := range st.EnemySlots {
			if c == nil {
				return reject(codeResetDenied)
			}
		}
	}
	for i, c := range st.EnemySlots {
		if c != nil {
			st.Deck = append(st.Deck, c)
			st.EnemySlots[i] = nil
		}
	}
	hp := st.Player.HP - resetCost
	if st.IsGodMode {
		hp = max(1, hp)
	}
	cost := st.Player.HP - hp
	e.damageHero(st, cost)
	e.log(st, codeResetDone, cost)
	return nil
}

func (e *Engine) activateCurse(st *GameState, a ActivateCurse) *rejection {
	if st.Curse != "" || st.HasActed {
		return reject(codeCurseLocked)
	}
	if !knownCurses[a.Curse] {
		return reject(codeCurseUnknown)
	}
	st.Curse = a.Curse
	name := a.Content.Curse(a.Curse).Name
	if name == "" {
		name = string(a.Curse)
	}
	e.log(st, codeCurseActivated, name)
	return nil
}

func emptySlot(s *Slot) *rejection {
	switch {
	case s == nil:
		return reject(codeCardNotFound)
	case s.Blocked:
		return reject(codeSlotBlocked)
	case s.Card != nil:
		return reject(codeSlotOccupied)
	}
	return nil
}

func displayName(c *Card) string {
	if c.Name != "" {
		return c.Name
	}
	return string(c.Type)
}
