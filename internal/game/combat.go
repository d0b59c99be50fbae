package game

func (e *Engine) interactWithMonster(st *GameState, a InteractWithMonster) *rejection {
	slot, m := findMonster(st, a.MonsterID)
	if m == nil {
		return reject(codeCardNotFound)
	}
	if stealthBlocked(st, m) {
		return reject(codeStealthBlocked)
	}
	switch a.Source {
	case SourceWeaponLeft:
		return e.swing(st, slot, HandLeft)
	case SourceWeaponRight:
		return e.swing(st, slot, HandRight)
	case SourceShieldLeft:
		return e.block(st, slot, HandLeft)
	case SourceShieldRight:
		return e.block(st, slot, HandRight)
	case SourcePlayer:
		hp := effectiveHP(st, m)
		e.damageHero(st, hp)
		e.log(st, codeBareHanded, hp)
		e.defeat(st, slot)
		return nil
	default:
		return reject(codeBadSource)
	}
}

// swing resolves a weapon attack. The weapon is spent either way: it keeps
// only the printed damage left over after a kill.
func (e *Engine) swing(st *GameState, slot int, hand HandSlot) *rejection {
	s := st.slot(hand)
	w := s.Card
	if w == nil || w.Type != CardWeapon {
		return reject(codeNoWeapon)
	}
	m := st.EnemySlots[slot]
	dmg := curseModifier(st.Curse, CardWeapon, w.Value)
	if consumeEffect(st, EffectMiss) {
		dmg = max(0, dmg-2)
	}
	hp := effectiveHP(st, m)

	if dmg >= hp {
		leftover := dmg - hp
		st.Overheads.Overkill += leftover
		st.Stats.DamageDealt += hp
		// the card keeps its printed value; the curse bonus is reapplied on use
		kept := max(0, leftover-(curseModifier(st.Curse, CardWeapon, w.Value)-w.Value))
		if kept > 0 {
			s.Card = w.withValue(kept)
		} else {
			s.Card = nil
			st.discard(w)
		}
		e.log(st, codeMonsterKilled, hp)
		e.defeat(st, slot)
		return nil
	}

	s.Card = nil
	st.discard(w)
	e.wound(st, slot, hp, dmg)
	return nil
}

// block resolves a monster hitting a shield. The shield soaks up to its
// value, the rest reaches the hero, and the monster is spent.
func (e *Engine) block(st *GameState, slot int, hand HandSlot) *rejection {
	s := st.slot(hand)
	sh := s.Card
	if sh == nil || sh.Type != CardShield {
		return reject(codeNoShield)
	}
	m := st.EnemySlots[slot]
	if e.resolveAbility(st, abilityEvent{Trigger: TriggerContact, Slot: slot, Monster: m, Hand: hand}) {
		return nil
	}
	hp := effectiveHP(st, m)
	taken := max(0, hp-sh.Value)
	st.Overheads.Overdefense += max(0, sh.Value-hp)
	if sh.Value > hp {
		s.Card = sh.withValue(sh.Value - hp)
	} else {
		s.Card = nil
		st.discard(sh)
	}
	e.damageHero(st, taken)
	e.log(st, codeShieldBlock, taken)
	e.defeat(st, slot)
	return nil
}

// wound lowers the monster at slot from hp by dmg (dmg < hp). A mirror
// monster that survives keeps its current HP and loses the reflection.
func (e *Engine) wound(st *GameState, slot, hp, dmg int) {
	if dmg <= 0 {
		return
	}
	m := st.EnemySlots[slot]
	next := m.withValue(hp - dmg)
	if next.Ability == AbilityMirror {
		next.Ability = ""
	}
	st.EnemySlots[slot] = next
	st.Stats.DamageDealt += dmg
	e.log(st, codeMonsterHit, next.Value)
	e.resolveAbility(st, abilityEvent{Trigger: TriggerPassive, Slot: slot, Monster: next, Damaged: true})
}

// defeat takes the monster off the table and resolves its death.
func (e *Engine) defeat(st *GameState, slot int) {
	m := st.EnemySlots[slot]
	st.EnemySlots[slot] = nil
	e.resolveDeath(st, slot, m)
}

// resolveDeath discards a monster already removed from the table, runs its
// own on-kill ability, then lets survivors react in slot order. Passives are
// refreshed before the on-kill ability runs.
func (e *Engine) resolveDeath(st *GameState, slot int, m *Card) {
	st.discard(m)
	st.Stats.MonstersKilled++
	e.refreshPassives(st)
	e.resolveAbility(st, abilityEvent{Trigger: TriggerKill, Slot: slot, Monster: m})
	for i := 0; i < TableSize; i++ {
		other := st.EnemySlots[i]
		if other == nil || other.Type != CardMonster {
			continue
		}
		e.resolveAbility(st, abilityEvent{Trigger: TriggerPassive, Slot: i, Monster: other, Victim: m})
	}
}

func findMonster(st *GameState, id string) (int, *Card) {
	for i, c := range st.EnemySlots {
		if c != nil && c.Type == CardMonster && c.ID == id {
			return i, c
		}
	}
	return -1, nil
}
