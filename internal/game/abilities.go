package game

import "fmt"

// AbilityID names a monster's special rule. The rules are code, not data:
// content only supplies display metadata for them.
type AbilityID string

const (
	AbilityCommission  AbilityID = "commission"
	AbilityBreach      AbilityID = "breach"
	AbilityDisarm      AbilityID = "disarm"
	AbilityBlessing    AbilityID = "blessing"
	AbilityStomp       AbilityID = "stomp"
	AbilityMirror      AbilityID = "mirror"
	AbilityStealth     AbilityID = "stealth"
	AbilityGraveyard   AbilityID = "graveyard"
	AbilityScream      AbilityID = "scream"
	AbilityLegacy      AbilityID = "legacy"
	AbilityEscape      AbilityID = "escape"
	AbilityAmbush      AbilityID = "ambush"
	AbilityTheft       AbilityID = "theft"
	AbilityRot         AbilityID = "rot"
	AbilityWeb         AbilityID = "web"
	AbilityBones       AbilityID = "bones"
	AbilityJunk        AbilityID = "junk"
	AbilityParasite    AbilityID = "parasite"
	AbilityCorrosion   AbilityID = "corrosion"
	AbilityExhaustion  AbilityID = "exhaustion"
	AbilityMiss        AbilityID = "miss"
	AbilityScavenger   AbilityID = "scavenger"
	AbilityCorpseeater AbilityID = "corpseeater"
	AbilitySilence     AbilityID = "silence"
)

// Trigger is the moment an ability is evaluated.
type Trigger string

const (
	TriggerSpawn   Trigger = "on_spawn"
	TriggerKill    Trigger = "on_kill"
	TriggerContact Trigger = "on_contact"
	TriggerPassive Trigger = "passive_check"
)

// abilityCatalog lists every ability in resolution order.
var abilityCatalog = []struct {
	ID      AbilityID
	Trigger Trigger
}{
	{AbilityCommission, TriggerKill},
	{AbilityBreach, TriggerKill},
	{AbilityDisarm, TriggerKill},
	{AbilityBlessing, TriggerKill},
	{AbilityStomp, TriggerContact},
	{AbilityMirror, TriggerPassive},
	{AbilityStealth, TriggerPassive},
	{AbilityGraveyard, TriggerKill},
	{AbilityScream, TriggerPassive},
	{AbilityLegacy, TriggerKill},
	{AbilityEscape, TriggerPassive},
	{AbilityAmbush, TriggerSpawn},
	{AbilityTheft, TriggerKill},
	{AbilityRot, TriggerPassive},
	{AbilityWeb, TriggerPassive},
	{AbilityBones, TriggerKill},
	{AbilityJunk, TriggerKill},
	{AbilityParasite, TriggerPassive},
	{AbilityCorrosion, TriggerKill},
	{AbilityExhaustion, TriggerPassive},
	{AbilityMiss, TriggerKill},
	{AbilityScavenger, TriggerSpawn},
	{AbilityCorpseeater, TriggerPassive},
	{AbilitySilence, TriggerPassive},
}

func knownAbility(id AbilityID) bool {
	_, ok := AbilityTrigger(id)
	return ok
}

// AbilityTrigger reports when the ability id is evaluated.
func AbilityTrigger(id AbilityID) (Trigger, bool) {
	for _, a := range abilityCatalog {
		if a.ID == id {
			return a.Trigger, true
		}
	}
	return "", false
}

// abilityEvent is one evaluation request for the resolver.
type abilityEvent struct {
	Trigger Trigger
	Slot    int      // table slot the monster occupies (or occupied, for kills)
	Monster *Card    // the monster whose ability is evaluated
	Hand    HandSlot // shield hand for contact events
	Damaged bool     // passive check after the monster lost HP
	Victim  *Card    // monster whose death prompted a passive reaction
}

// resolveAbility applies the consequence of ev.Monster's ability for the
// event and reports whether anything happened.
func (e *Engine) resolveAbility(st *GameState, ev abilityEvent) bool {
	m := ev.Monster
	if m == nil || m.Ability == "" {
		return false
	}
	switch ev.Trigger {
	case TriggerSpawn:
		return e.resolveSpawn(st, ev)
	case TriggerKill:
		return e.resolveKill(st, ev)
	case TriggerContact:
		if m.Ability != AbilityStomp {
			return false
		}
		shield := st.slot(ev.Hand)
		st.discard(shield.Card)
		shield.Card = nil
		e.log(st, codeStompShield)
		return true
	case TriggerPassive:
		if ev.Damaged {
			return e.checkEscape(st, ev.Slot)
		}
		return e.reactToKill(st, ev)
	}
	return false
}

func (e *Engine) resolveSpawn(st *GameState, ev abilityEvent) bool {
	switch ev.Monster.Ability {
	case AbilityAmbush:
		e.damageHero(st, 1)
		e.log(st, codeAmbush, 1)
		return true
	case AbilityScavenger:
		n := 0
		for _, c := range st.DiscardPile {
			if c.Type == CardMonster {
				n++
			}
		}
		if n == 0 {
			return false
		}
		st.EnemySlots[ev.Slot] = ev.Monster.withValue(ev.Monster.Value + n)
		e.log(st, codeScavenger, n)
		return true
	}
	return false
}

func (e *Engine) resolveKill(st *GameState, ev abilityEvent) bool {
	switch ev.Monster.Ability {
	case AbilityCommission:
		lost := min(3, st.Player.Coins)
		st.Player.Coins -= lost
		e.log(st, codeCommission, lost)
		return true
	case AbilityBreach:
		if h, ok := firstInInventory(st, CardShield); ok {
			s := st.slot(h)
			st.discard(s.Card)
			s.Card = nil
			e.log(st, codeBreach)
			return true
		}
	case AbilityDisarm:
		if h, ok := firstInInventory(st, CardWeapon); ok {
			s := st.slot(h)
			st.discard(s.Card)
			s.Card = nil
			e.log(st, codeDisarm)
			return true
		}
	case AbilityBlessing:
		e.healHero(st, 2)
		e.log(st, codeBlessing, 2)
		return true
	case AbilityGraveyard:
		return e.reviveFromDiscard(st, ev.Monster)
	case AbilityLegacy:
		for i, c := range st.EnemySlots {
			if c != nil && c.Type == CardMonster {
				st.EnemySlots[i] = c.withValue(c.Value + 1)
			}
		}
		e.log(st, codeLegacy)
		return true
	case AbilityTheft:
		var occupied []HandSlot
		for _, h := range inventoryOrder {
			if s := st.slot(h); s.Card != nil && !s.Blocked {
				occupied = append(occupied, h)
			}
		}
		if len(occupied) == 0 {
			return false
		}
		s := st.slot(occupied[intn(e.Rng, len(occupied))])
		st.discard(s.Card)
		s.Card = nil
		e.log(st, codeTheft)
		return true
	case AbilityBones:
		coin := deadCoin(st.nextCardID())
		at := intn(e.Rng, len(st.Deck)+1)
		st.Deck = append(st.Deck[:at], append([]*Card{coin}, st.Deck[at:]...)...)
		e.log(st, codeBones)
		return true
	case AbilityJunk:
		coin := deadCoin(st.nextCardID())
		placed := false
		for _, h := range inventoryOrder {
			if s := st.slot(h); s.Card == nil && !s.Blocked {
				s.Card = coin
				placed = true
				break
			}
		}
		if !placed {
			st.discard(coin)
		}
		e.log(st, codeJunk)
		return true
	case AbilityCorrosion:
		var targets []HandSlot
		for _, h := range []HandSlot{HandLeft, HandRight} {
			if c := st.slot(h).Card; c != nil && (c.Type == CardWeapon || c.Type == CardShield || c.Type == CardPotion) {
				targets = append(targets, h)
			}
		}
		if len(targets) == 0 {
			return false
		}
		h := targets[intn(e.Rng, len(targets))]
		s := st.slot(h)
		s.Card = s.Card.withValue(max(1, s.Card.Value-2))
		st.LastEffect = append(st.LastEffect, VisualEffect{Kind: string(AbilityCorrosion), Target: string(h), CardID: s.Card.ID, Amount: 2})
		e.log(st, codeCorrosion)
		return true
	case AbilityMiss:
		st.ActiveEffects = append(st.ActiveEffects, EffectMiss)
		e.log(st, codeMiss)
		return true
	}
	return false
}

// reviveFromDiscard moves a random monster other than dead from the
// discard pile into a random empty table slot.
func (e *Engine) reviveFromDiscard(st *GameState, dead *Card) bool {
	var candidates []int
	for i, c := range st.DiscardPile {
		if c.Type == CardMonster && c.ID != dead.ID {
			candidates = append(candidates, i)
		}
	}
	var empty []int
	for i, c := range st.EnemySlots {
		if c == nil {
			empty = append(empty, i)
		}
	}
	if len(candidates) == 0 || len(empty) == 0 {
		return false
	}
	idx := candidates[intn(e.Rng, len(candidates))]
	slot := empty[intn(e.Rng, len(empty))]
	revived := st.DiscardPile[idx]
	st.DiscardPile = append(st.DiscardPile[:idx], st.DiscardPile[idx+1:]...)
	st.EnemySlots[slot] = revived
	e.log(st, codeGraveyard, revived.Value)
	return true
}

// reactToKill lets a surviving monster respond to another monster's death.
func (e *Engine) reactToKill(st *GameState, ev abilityEvent) bool {
	m := ev.Monster
	if ev.Victim != nil && ev.Victim.ID == m.ID {
		return false
	}
	switch m.Ability {
	case AbilityParasite:
		st.EnemySlots[ev.Slot] = m.withValue(m.Value + 1)
		e.log(st, codeParasite)
		return true
	case AbilityCorpseeater:
		st.EnemySlots[ev.Slot] = m.withValue(m.Value + 2)
		st.LastEffect = append(st.LastEffect, VisualEffect{
			Kind:    string(AbilityCorpseeater),
			Target:  fmt.Sprintf("slot-%d", ev.Slot),
			CardID:  m.ID,
			Amount:  2,
			Delayed: true,
		})
		e.log(st, codeCorpseeater, 2)
		return true
	}
	return false
}

// checkEscape sends a wounded escape monster at 3 HP or less to the bottom
// of the deck. A flee is not a kill.
func (e *Engine) checkEscape(st *GameState, slot int) bool {
	m := st.EnemySlots[slot]
	if m == nil || m.Ability != AbilityEscape {
		return false
	}
	hp := effectiveHP(st, m)
	if hp <= 0 || hp > 3 {
		return false
	}
	st.EnemySlots[slot] = nil
	st.Deck = append(st.Deck, m)
	st.Stats.MonstersFled++
	e.log(st, codeEscape)
	return true
}

// countAlive counts table monsters carrying ability id.
func countAlive(st *GameState, id AbilityID) int {
	n := 0
	for _, c := range st.EnemySlots {
		if c != nil && c.Type == CardMonster && c.Ability == id {
			n++
		}
	}
	return n
}

// effectiveHP is the HP combat uses: a mirror monster copies the hero's
// strongest weapon.
func effectiveHP(st *GameState, m *Card) int {
	if m.Ability != AbilityMirror {
		return m.Value
	}
	best := 0
	for _, h := range inventoryOrder {
		if c := st.slot(h).Card; c != nil && c.Type == CardWeapon && c.Value > best {
			best = c.Value
		}
	}
	if best == 0 {
		return m.Value
	}
	return best
}

// stealthBlocked reports whether target hides behind another monster.
func stealthBlocked(st *GameState, target *Card) bool {
	if target.Ability != AbilityStealth {
		return false
	}
	for _, c := range st.EnemySlots {
		if c != nil && c.Type == CardMonster && c.ID != target.ID && c.Ability != AbilityStealth {
			return true
		}
	}
	return false
}

func firstInInventory(st *GameState, t CardType) (HandSlot, bool) {
	for _, h := range inventoryOrder {
		if c := st.slot(h).Card; c != nil && c.Type == t {
			return h, true
		}
	}
	return "", false
}

func consumeEffect(st *GameState, id EffectID) bool {
	for i, eff := range st.ActiveEffects {
		if eff == id {
			st.ActiveEffects = append(st.ActiveEffects[:i], st.ActiveEffects[i+1:]...)
			return true
		}
	}
	return false
}
