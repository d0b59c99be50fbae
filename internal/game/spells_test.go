package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHalvesMonster(t *testing.T) {
	engine := testEngine()
	for h := 1; h <= 9; h++ {
		st := newState(monster("m1", h, ""), nil, nil, item("p1", CardPotion, 1))
		st.Backpack.Card = spellCard("s1", SpellSplit)
		st = seal(st)

		next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetMonster, TargetID: "m1"})

		if h/2 == 0 {
			assert.Equal(t, codeSpellNoEffect, lastCode(t, next), "h=%d", h)
			assert.Equal(t, st.EnemySlots, next.EnemySlots, "h=%d", h)
			assert.Equal(t, "s1", next.Backpack.Card.ID, "h=%d: spell kept", h)
			continue
		}
		require.NotNil(t, next.EnemySlots[0], "h=%d", h)
		require.NotNil(t, next.EnemySlots[1], "h=%d", h)
		assert.Equal(t, h/2, next.EnemySlots[0].Value, "h=%d", h)
		assert.Equal(t, h/2, next.EnemySlots[1].Value, "h=%d", h)
		assert.Equal(t, cardID(st.IssuedCards+1), next.EnemySlots[1].ID, "h=%d", h)
		assert.Nil(t, next.Backpack.Card, "h=%d", h)
		assert.Equal(t, 1, next.Stats.SpellsCast)
		assertConserved(t, next)
	}
}

func TestSplitNeedsFreeSlot(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 8, ""), monster("m2", 1, ""), monster("m3", 1, ""), monster("m4", 1, ""))
	st.LeftHand.Card = spellCard("s1", SpellSplit)
	st = seal(st)

	next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetMonster, TargetID: "m1"})

	assert.Equal(t, codeSpellNoEffect, lastCode(t, next))
	assert.Equal(t, 8, next.EnemySlots[0].Value)
}

func TestVolleyHitsEveryone(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 1, ""), monster("m2", 3, ""), monster("m3", 4, AbilityParasite), item("p1", CardPotion, 1))
	st.LeftHand.Card = spellCard("s1", SpellVolley)
	st = seal(st)

	next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetPlayer})

	assert.Nil(t, next.EnemySlots[0])
	assert.Equal(t, 2, next.EnemySlots[1].Value)
	assert.Equal(t, 4, next.EnemySlots[2].Value)
	assert.Equal(t, 1, next.Stats.MonstersKilled)
	assert.Equal(t, 3, next.Stats.DamageDealt)
	assertConserved(t, next)
}

func TestFireball(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 4, ""), monster("m2", 6, ""))
	st.LeftHand.Card = spellCard("s1", SpellFireball)
	st.RightHand.Card = spellCard("s2", SpellFireball)
	st = seal(st)

	st = engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetMonster, TargetID: "m1"})
	assert.Nil(t, st.EnemySlots[0])

	st = engine.Apply(st, UseSpellOnTarget{SpellCardID: "s2", Kind: TargetMonster, TargetID: "m2"})
	require.NotNil(t, st.EnemySlots[1])
	assert.Equal(t, 2, st.EnemySlots[1].Value)
	assert.Equal(t, 2, st.Stats.SpellsCast)
}

func TestHealSpellTargetsHero(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 4, ""))
	st.LeftHand.Card = spellCard("s1", SpellHeal)
	st.Player.HP = 5
	st = seal(st)

	wrong := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetMonster, TargetID: "m1"})
	assert.Equal(t, codeSpellTarget, lastCode(t, wrong))
	assert.Equal(t, 5, wrong.Player.HP)

	next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetPlayer})
	assert.Equal(t, 9, next.Player.HP)
	assert.Equal(t, "s1", next.DiscardPile[0].ID)
}

func TestPeekAndScout(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 4, ""))
	st.LeftHand.Card = spellCard("s1", SpellPeek)
	st.RightHand.Card = spellCard("s2", SpellScout)
	st.Deck = []*Card{
		item("k1", CardCoin, 1),
		monster("m2", 2, ""),
		item("p1", CardPotion, 2),
		item("w1", CardWeapon, 3),
		monster("m3", 5, ""),
		monster("m4", 6, ""),
	}
	st = seal(st)

	st = engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetPlayer})
	require.Len(t, st.PeekCards, 3)
	assert.Equal(t, "k1", st.PeekCards[0].ID)
	assert.Equal(t, "p1", st.PeekCards[2].ID)

	st = engine.Apply(st, UseSpellOnTarget{SpellCardID: "s2", Kind: TargetPlayer})
	require.Len(t, st.ScoutCards, 2)
	assert.Equal(t, "m2", st.ScoutCards[0].ID)
	assert.Equal(t, "m3", st.ScoutCards[1].ID)

	st = engine.Apply(st, ClearPeek{})
	assert.Nil(t, st.PeekCards)
	assert.Len(t, st.ScoutCards, 2)
}

func TestSilenceBlocksSpells(t *testing.T) {
	engine := NewEngine(&scriptedRng{}, fixedClock{}, DefaultLanguage)
	st := newState(monster("m1", 9, AbilitySilence))
	st.LeftHand.Card = spellCard("s1", SpellHeal)
	st.Player.HP = 5
	st = seal(st)

	next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetPlayer})

	assert.Equal(t, codeSilenceBlocked, lastCode(t, next))
	assert.Equal(t, "МОЛЧАНИЕ: Магия заблокирована", next.Logs[0].Message)
	assert.Equal(t, 5, next.Player.HP)
	assert.NotNil(t, next.LeftHand.Card)
}

func TestSpellRespectsStealth(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 3, AbilityStealth), monster("m2", 3, ""))
	st.LeftHand.Card = spellCard("s1", SpellFireball)
	st = seal(st)

	next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetMonster, TargetID: "m1"})

	assert.Equal(t, codeStealthBlocked, lastCode(t, next))
}

func TestUnknownSpellIsRejected(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 3, ""))
	st.LeftHand.Card = spellCard("s1", "meteor")
	st.RightHand.Card = item("w1", CardWeapon, 2)
	st = seal(st)

	next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetPlayer})
	assert.Equal(t, codeSpellUnknown, lastCode(t, next))

	next = engine.Apply(st, UseSpellOnTarget{SpellCardID: "w1", Kind: TargetPlayer})
	assert.Equal(t, codeSpellUnknown, lastCode(t, next))
}

func TestSplitTriggersEscape(t *testing.T) {
	engine := testEngine()

	t.Run("both halves flee", func(t *testing.T) {
		st := newState(monster("m1", 6, AbilityEscape), nil, nil, item("p1", CardPotion, 1))
		st.Backpack.Card = spellCard("s1", SpellSplit)
		st = seal(st)

		next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetMonster, TargetID: "m1"})

		assert.Nil(t, next.EnemySlots[0])
		assert.Nil(t, next.EnemySlots[1])
		require.Len(t, next.Deck, 2)
		assert.Equal(t, "m1", next.Deck[0].ID)
		assert.Equal(t, 3, next.Deck[1].Value)
		assert.Equal(t, 2, next.Stats.MonstersFled)
		assert.Equal(t, 0, next.Stats.MonstersKilled)
		assertConserved(t, next)
	})

	t.Run("halves above the threshold stay", func(t *testing.T) {
		st := newState(monster("m1", 8, AbilityEscape), nil, nil, item("p1", CardPotion, 1))
		st.Backpack.Card = spellCard("s1", SpellSplit)
		st = seal(st)

		next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetMonster, TargetID: "m1"})

		require.NotNil(t, next.EnemySlots[0])
		require.NotNil(t, next.EnemySlots[1])
		assert.Equal(t, 4, next.EnemySlots[0].Value)
		assert.Empty(t, next.Deck)
		assert.Equal(t, 0, next.Stats.MonstersFled)
	})
}

func TestVolleyKillRestoresMaxHPBeforeHealing(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 1, AbilityBlessing), monster("m2", 1, AbilityExhaustion), item("p1", CardPotion, 1))
	st.Player.MaxHP = 9
	st.Player.HP = 9
	st.LeftHand.Card = spellCard("s1", SpellVolley)
	st = seal(st)

	next := engine.Apply(st, UseSpellOnTarget{SpellCardID: "s1", Kind: TargetPlayer})

	assert.Equal(t, 10, next.Player.MaxHP)
	assert.Equal(t, 10, next.Player.HP)
	assert.Equal(t, 1, next.Overheads.Overheal)
	assert.Equal(t, 2, next.Stats.MonstersKilled)
}
