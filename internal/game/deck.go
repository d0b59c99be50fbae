package game

import "fmt"

var defaultIcons = map[CardType]string{
	CardWeapon:   "🗡️",
	CardShield:   "🛡️",
	CardPotion:   "🧪",
	CardCoin:     "🪙",
	CardMonster:  "👹",
	CardSpell:    "✨",
	CardSkull:    "💀",
	CardMerchant: "🧳",
}

// cardID formats the n-th card issued in a run.
func cardID(n int) string {
	return fmt.Sprintf("c%d", n)
}

// GenerateDeck expands cfg into cards and shuffles them with rng.
// Index 0 of the result is the top of the deck. Card ids are c1..cN in
// expansion order, so the same config and rng always yield the same deck.
func GenerateDeck(cfg DeckConfig, content Content, rng Rng) []*Card {
	var cards []*Card
	add := func(c Card) {
		c.ID = cardID(len(cards) + 1)
		if c.Icon == "" {
			c.Icon = defaultIcons[c.Type]
		}
		cards = append(cards, &c)
	}
	item := func(t CardType, groups []ItemGroup) {
		meta := content.Item(t)
		for _, g := range groups {
			for i := 0; i < g.Count; i++ {
				add(Card{Type: t, Value: g.Value, Name: meta.Name, Icon: meta.Icon, Description: meta.Description})
			}
		}
	}

	item(CardWeapon, cfg.Weapons)
	item(CardShield, cfg.Shields)
	item(CardPotion, cfg.Potions)
	item(CardCoin, cfg.Coins)

	for _, g := range cfg.Monsters {
		for i := 0; i < g.Count; i++ {
			add(newMonster(g, content))
		}
	}
	for _, g := range cfg.Spells {
		for i := 0; i < g.Count; i++ {
			add(newSpellCard(g.ID, content))
		}
	}
	if len(content.BaseSpellIDs) > 0 {
		for i := 0; i < cfg.RandomSpells; i++ {
			id := content.BaseSpellIDs[intn(rng, len(content.BaseSpellIDs))]
			add(newSpellCard(id, content))
		}
	}

	skull := content.Item(CardSkull)
	for i := 0; i < cfg.Skulls; i++ {
		add(Card{Type: CardSkull, Name: skull.Name, Icon: skull.Icon, Description: skull.Description})
	}
	merchant := content.Item(CardMerchant)
	for i := 0; i < cfg.Merchants; i++ {
		add(Card{Type: CardMerchant, Name: merchant.Name, Icon: merchant.Icon, Description: merchant.Description})
	}

	shuffle(cards, rng)
	return cards
}

func newMonster(g MonsterGroup, content Content) Card {
	c := Card{
		Type:     CardMonster,
		Value:    g.Value,
		Label:    g.Label,
		IsBoss:   g.Label == LabelBoss,
		IsHidden: g.Hidden,
	}
	if c.Label == "" {
		c.Label = LabelOrdinary
	}
	if g.Ability != "" {
		meta := content.Ability(g.Ability)
		c.Ability = g.Ability
		c.Name = meta.Name
		c.Icon = meta.Icon
		c.Description = meta.Description
	}
	return c
}

func newSpellCard(id SpellID, content Content) Card {
	meta := content.Spell(id)
	return Card{
		Type:        CardSpell,
		Spell:       id,
		Name:        meta.Name,
		Icon:        meta.Icon,
		Description: meta.Description,
	}
}

// deadCoin builds the worthless coin left behind by bones and junk.
func deadCoin(id string) *Card {
	return &Card{ID: id, Type: CardCoin, Value: 0, Name: "Dead coin", Icon: "⚫"}
}

// shuffle is an in-place Fisher–Yates shuffle driven by rng.
func shuffle(cards []*Card, rng Rng) {
	for i := len(cards) - 1; i > 0; i-- {
		j := intn(rng, i+1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
