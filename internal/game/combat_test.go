package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeaponSwingPartition(t *testing.T) {
	engine := testEngine()
	for w := 1; w <= 8; w++ {
		for hp := 1; hp <= 8; hp++ {
			st := newState(monster("m1", hp, ""), item("p1", CardPotion, 1))
			st.LeftHand.Card = item("w1", CardWeapon, w)
			st = seal(st)

			next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})

			if w >= hp {
				assert.Nil(t, next.EnemySlots[0], "w=%d hp=%d: monster should die", w, hp)
				if w > hp {
					require.NotNil(t, next.LeftHand.Card, "w=%d hp=%d", w, hp)
					assert.Equal(t, w-hp, next.LeftHand.Card.Value, "w=%d hp=%d: leftover", w, hp)
					assert.Equal(t, "w1", next.LeftHand.Card.ID)
				} else {
					assert.Nil(t, next.LeftHand.Card, "w=%d hp=%d: weapon spent", w, hp)
				}
				assert.Equal(t, w-hp, next.Overheads.Overkill)
			} else {
				require.NotNil(t, next.EnemySlots[0], "w=%d hp=%d: monster should survive", w, hp)
				assert.Equal(t, hp-w, next.EnemySlots[0].Value, "w=%d hp=%d", w, hp)
				assert.Nil(t, next.LeftHand.Card, "w=%d hp=%d: weapon spent", w, hp)
				assert.Equal(t, "w1", next.DiscardPile[len(next.DiscardPile)-1].ID)
			}
			assertConserved(t, next)
		}
	}
}

func TestSwingNeedsWeapon(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 3, ""))
	st.RightHand.Card = item("s1", CardShield, 3)
	st = seal(st)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponRight})
	assert.Equal(t, codeNoWeapon, lastCode(t, next))

	next = engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: "elbow"})
	assert.Equal(t, codeBadSource, lastCode(t, next))

	next = engine.Apply(st, InteractWithMonster{MonsterID: "nope", Source: SourceShieldRight})
	assert.Equal(t, codeCardNotFound, lastCode(t, next))
}

func TestShieldBlock(t *testing.T) {
	engine := testEngine()

	t.Run("shield outlasts the monster", func(t *testing.T) {
		st := newState(monster("m1", 3, ""), item("p1", CardPotion, 1))
		st.LeftHand.Card = item("s1", CardShield, 5)
		st = seal(st)

		next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceShieldLeft})

		assert.Nil(t, next.EnemySlots[0])
		assert.Equal(t, 10, next.Player.HP)
		require.NotNil(t, next.LeftHand.Card)
		assert.Equal(t, 2, next.LeftHand.Card.Value)
		assert.Equal(t, 2, next.Overheads.Overdefense)
		assert.Equal(t, 1, next.Stats.MonstersKilled)
	})

	t.Run("monster breaks through", func(t *testing.T) {
		st := newState(monster("m1", 5, ""), item("p1", CardPotion, 1))
		st.RightHand.Card = item("s1", CardShield, 2)
		st = seal(st)

		next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceShieldRight})

		assert.Nil(t, next.EnemySlots[0])
		assert.Equal(t, 7, next.Player.HP)
		assert.Nil(t, next.RightHand.Card)
		assert.Equal(t, 3, next.Stats.DamageTaken)
		assertConserved(t, next)
	})

	t.Run("stomp shatters the shield", func(t *testing.T) {
		st := newState(monster("m1", 5, AbilityStomp))
		st.LeftHand.Card = item("s1", CardShield, 9)
		st = seal(st)

		next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceShieldLeft})

		require.NotNil(t, next.EnemySlots[0])
		assert.Equal(t, 5, next.EnemySlots[0].Value)
		assert.Nil(t, next.LeftHand.Card)
		assert.Equal(t, 10, next.Player.HP)
		assert.Equal(t, codeStompShield, lastCode(t, next))
		assertConserved(t, next)
	})
}

func TestBareHanded(t *testing.T) {
	engine := testEngine()
	st := seal(newState(monster("m1", 4, ""), item("p1", CardPotion, 1)))

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourcePlayer})

	assert.Nil(t, next.EnemySlots[0])
	assert.Equal(t, 6, next.Player.HP)
	assert.Equal(t, StatusPlaying, next.Status)
}

func TestHeroDies(t *testing.T) {
	engine := testEngine()
	st := seal(newState(monster("m1", 12, ""), item("p1", CardPotion, 1)))

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourcePlayer})

	assert.Equal(t, StatusLost, next.Status)
	assert.Equal(t, 0, next.Player.HP)
	assert.Equal(t, codeGameLost, lastCode(t, next))

	after := engine.Apply(next, UsePotion{CardID: "p1"})
	assert.Equal(t, next, after)
}

func TestStealthBlocksInteraction(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 3, AbilityStealth), monster("m2", 3, ""))
	st.LeftHand.Card = item("w1", CardWeapon, 5)
	st = seal(st)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})

	assert.Equal(t, codeStealthBlocked, lastCode(t, next))
	assert.Equal(t, "HIDDEN", next.Logs[0].Message)
	assert.Equal(t, st.EnemySlots, next.EnemySlots)
	assert.Equal(t, st.LeftHand, next.LeftHand)

	// Once the guard is gone the stealthy monster can be hit.
	next = engine.Apply(next, InteractWithMonster{MonsterID: "m2", Source: SourceWeaponLeft})
	next = engine.Apply(next, InteractWithMonster{MonsterID: "m1", Source: SourcePlayer})
	assert.Nil(t, next.EnemySlots[0])
}

func TestMirrorCopiesStrongestWeapon(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 2, AbilityMirror), item("p1", CardPotion, 1))
	st.LeftHand.Card = item("w1", CardWeapon, 5)
	st.Backpack.Card = item("w2", CardWeapon, 7)
	st = seal(st)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})

	require.NotNil(t, next.EnemySlots[0])
	assert.Equal(t, 2, next.EnemySlots[0].Value)
	assert.Empty(t, next.EnemySlots[0].Ability)
}

func TestMirrorWithoutWeaponsUsesPrintedValue(t *testing.T) {
	st := newState(monster("m1", 4, AbilityMirror))
	assert.Equal(t, 4, effectiveHP(&st, st.EnemySlots[0]))
}

func TestEscapeFleesToDeckBottom(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 6, AbilityEscape), item("p1", CardPotion, 1))
	st.LeftHand.Card = item("w1", CardWeapon, 3)
	st.Deck = []*Card{item("k1", CardCoin, 1)}
	st = seal(st)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})

	assert.Nil(t, next.EnemySlots[0])
	require.Len(t, next.Deck, 2)
	assert.Equal(t, "m1", next.Deck[1].ID)
	assert.Equal(t, 3, next.Deck[1].Value)
	assert.Equal(t, 1, next.Stats.MonstersFled)
	assert.Equal(t, 0, next.Stats.MonstersKilled)
	assertConserved(t, next)
}

func TestEscapeIgnoresHighHP(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 9, AbilityEscape))
	st.LeftHand.Card = item("w1", CardWeapon, 3)
	st = seal(st)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})

	require.NotNil(t, next.EnemySlots[0])
	assert.Equal(t, 6, next.EnemySlots[0].Value)
}

func TestMissWeakensNextSwing(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 1, AbilityMiss), monster("m2", 3, ""))
	st.LeftHand.Card = item("w1", CardWeapon, 1)
	st.RightHand.Card = item("w2", CardWeapon, 4)
	st = seal(st)

	st = engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})
	require.Equal(t, []EffectID{EffectMiss}, st.ActiveEffects)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m2", Source: SourceWeaponRight})

	require.NotNil(t, next.EnemySlots[1])
	assert.Equal(t, 1, next.EnemySlots[1].Value)
	assert.Empty(t, next.ActiveEffects)
}

func TestMerchantBlocksCombat(t *testing.T) {
	engine := testEngine()
	st := newState(item("t1", CardMerchant, 0), monster("m1", 3, ""))
	st.LeftHand.Card = item("w1", CardWeapon, 5)
	st.Merchant = &MerchantState{IsActive: true}
	st = seal(st)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})

	assert.Equal(t, codeMerchantBusy, lastCode(t, next))
	assert.Equal(t, st.EnemySlots, next.EnemySlots)
}

func TestTemperedWeaponKeepsPrintedLeftover(t *testing.T) {
	engine := testEngine()
	st := newState(monster("m1", 2, ""), monster("m2", 4, ""), item("p1", CardPotion, 1))
	st.LeftHand.Card = item("w1", CardWeapon, 5)
	st.Curse = CurseTempering
	st = seal(st)

	next := engine.Apply(st, InteractWithMonster{MonsterID: "m1", Source: SourceWeaponLeft})

	require.NotNil(t, next.LeftHand.Card)
	assert.Equal(t, 3, next.LeftHand.Card.Value, "curse bonus must not be stored on the card")
	assert.Equal(t, 4, next.Overheads.Overkill)

	// The bonus applies again on use: 3+1 kills a 4 HP monster exactly.
	next = engine.Apply(next, InteractWithMonster{MonsterID: "m2", Source: SourceWeaponLeft})

	assert.Nil(t, next.EnemySlots[1])
	assert.Nil(t, next.LeftHand.Card)
	assert.Equal(t, 4, next.Overheads.Overkill)
	assertConserved(t, next)
}
