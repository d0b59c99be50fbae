package game

import "slices"

// SpellID names a spell rule. As with abilities, content only supplies the
// display metadata.
type SpellID string

const (
	SpellSplit    SpellID = "split"
	SpellVolley   SpellID = "volley"
	SpellFireball SpellID = "fireball"
	SpellHeal     SpellID = "heal"
	SpellPeek     SpellID = "peek"
	SpellScout    SpellID = "scout"
)

const (
	fireballDamage = 4
	healAmount     = 4
	peekDepth      = 3
	scoutDepth     = 5
)

// spellRule is the hardcoded behavior of one spell. An empty target
// accepts any target kind. slot is the targeted table slot, or -1.
type spellRule struct {
	target TargetKind
	cast   func(e *Engine, st *GameState, slot int) *rejection
}

var spellRules = map[SpellID]spellRule{
	SpellSplit:    {target: TargetMonster, cast: (*Engine).castSplit},
	SpellVolley:   {cast: (*Engine).castVolley},
	SpellFireball: {target: TargetMonster, cast: (*Engine).castFireball},
	SpellHeal:     {target: TargetPlayer, cast: (*Engine).castHeal},
	SpellPeek:     {cast: (*Engine).castPeek},
	SpellScout:    {cast: (*Engine).castScout},
}

// SpellTarget reports what kind of target the spell id needs, or "" when
// any target will do. ok is false for an unknown spell.
func SpellTarget(id SpellID) (TargetKind, bool) {
	r, ok := spellRules[id]
	return r.target, ok
}

func (e *Engine) useSpell(st *GameState, a UseSpellOnTarget) *rejection {
	loc, card, ok := st.findCard(a.SpellCardID)
	if !ok {
		return reject(codeCardNotFound)
	}
	if card.Type != CardSpell {
		return reject(codeSpellUnknown)
	}
	if rej := st.usableFrom(loc); rej != nil {
		return rej
	}
	if countAlive(st, AbilitySilence) > 0 {
		return reject(codeSilenceBlocked)
	}
	rule, ok := spellRules[card.Spell]
	if !ok {
		return reject(codeSpellUnknown)
	}

	slot := -1
	if rule.target != "" && a.Kind != rule.target {
		return reject(codeSpellTarget)
	}
	if rule.target == TargetMonster {
		i, m := findMonster(st, a.TargetID)
		if m == nil {
			return reject(codeSpellTarget)
		}
		if stealthBlocked(st, m) {
			return reject(codeStealthBlocked)
		}
		slot = i
	}

	st.takeAt(loc)
	if rej := rule.cast(e, st, slot); rej != nil {
		return rej
	}
	name := card.Name
	if name == "" {
		name = string(card.Spell)
	}
	e.log(st, codeSpellCast, name)
	st.discard(card)
	st.Stats.SpellsCast++
	return nil
}

// castSplit halves the target and puts a twin into an empty slot.
func (e *Engine) castSplit(st *GameState, slot int) *rejection {
	m := st.EnemySlots[slot]
	half := effectiveHP(st, m) / 2
	if half == 0 {
		return reject(codeSpellNoEffect)
	}
	free := -1
	for i, c := range st.EnemySlots {
		if c == nil {
			free = i
			break
		}
	}
	if free < 0 {
		return reject(codeSpellNoEffect)
	}
	halved := m.withValue(half)
	if halved.Ability == AbilityMirror {
		halved.Ability = ""
	}
	twin := *halved
	twin.ID = st.nextCardID()
	st.EnemySlots[slot] = halved
	st.EnemySlots[free] = &twin
	e.checkEscape(st, slot)
	e.checkEscape(st, free)
	return nil
}

// castVolley deals 1 damage to every monster at once: survivors are wounded
// first, then the dead leave the table together and die in slot order.
func (e *Engine) castVolley(st *GameState, _ int) *rejection {
	var dead []int
	for i := 0; i < TableSize; i++ {
		m := st.EnemySlots[i]
		if m == nil || m.Type != CardMonster {
			continue
		}
		if effectiveHP(st, m) <= 1 {
			dead = append(dead, i)
		}
	}
	for i := 0; i < TableSize; i++ {
		m := st.EnemySlots[i]
		if m == nil || m.Type != CardMonster || slices.Contains(dead, i) {
			continue
		}
		e.wound(st, i, effectiveHP(st, m), 1)
	}
	victims := make([]*Card, len(dead))
	for k, i := range dead {
		victims[k] = st.EnemySlots[i]
		st.Stats.DamageDealt += effectiveHP(st, victims[k])
		st.EnemySlots[i] = nil
	}
	for k, i := range dead {
		e.resolveDeath(st, i, victims[k])
	}
	return nil
}

func (e *Engine) castFireball(st *GameState, slot int) *rejection {
	m := st.EnemySlots[slot]
	hp := effectiveHP(st, m)
	if fireballDamage >= hp {
		st.Overheads.Overkill += fireballDamage - hp
		st.Stats.DamageDealt += hp
		e.log(st, codeMonsterKilled, hp)
		e.defeat(st, slot)
		return nil
	}
	e.wound(st, slot, hp, fireballDamage)
	return nil
}

func (e *Engine) castHeal(st *GameState, _ int) *rejection {
	healed := e.healHero(st, healAmount)
	e.log(st, codePotionHeal, healed)
	return nil
}

func (e *Engine) castPeek(st *GameState, _ int) *rejection {
	n := min(peekDepth, len(st.Deck))
	st.PeekCards = append([]*Card(nil), st.Deck[:n]...)
	return nil
}

func (e *Engine) castScout(st *GameState, _ int) *rejection {
	n := min(scoutDepth, len(st.Deck))
	st.ScoutCards = nil
	for _, c := range st.Deck[:n] {
		if c.Type == CardMonster {
			st.ScoutCards = append(st.ScoutCards, c)
		}
	}
	return nil
}
