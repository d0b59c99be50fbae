package game

// Meta is display-only metadata for a spell, ability or curse.
type Meta struct {
	Name        string `yaml:"name" json:"name"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

// Content is the read-only lookup snapshot handed to the engine with
// START_GAME and ACTIVATE_CURSE. A missing entry means "no display
// metadata"; rules never depend on it.
type Content struct {
	BaseSpellIDs         []SpellID          `yaml:"baseSpellIds" json:"baseSpellIds"`
	SpellsByID           map[SpellID]Meta   `yaml:"spells" json:"spellsById"`
	MonsterAbilitiesByID map[AbilityID]Meta `yaml:"abilities" json:"monsterAbilitiesById"`
	CursesByID           map[CurseType]Meta `yaml:"curses" json:"cursesById"`
	Items                map[CardType]Meta  `yaml:"items" json:"items"`
}

func (c Content) Spell(id SpellID) Meta {
	return c.SpellsByID[id]
}

func (c Content) Ability(id AbilityID) Meta {
	return c.MonsterAbilitiesByID[id]
}

func (c Content) Curse(id CurseType) Meta {
	return c.CursesByID[id]
}

func (c Content) Item(t CardType) Meta {
	return c.Items[t]
}
