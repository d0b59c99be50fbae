package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestLoadDeckConfig(t *testing.T) {
	data := `
name: test
maxHp: 12
startGold: 4
weapons:
  - value: 3
    count: 2
monsters:
  - value: 4
    count: 1
    ability: ambush
    label: mini_boss
spells:
  - id: volley
    count: 1
merchants: 1
`
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("Failed to write deck: %v", err)
	}

	cfg, err := LoadDeckConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.MaxHP != 12 || cfg.StartGold != 4 {
		t.Errorf("Expected maxHp 12 and gold 4, got %d and %d", cfg.MaxHP, cfg.StartGold)
	}
	if len(cfg.Monsters) != 1 || cfg.Monsters[0].Label != LabelMiniBoss {
		t.Errorf("Expected one mini boss group, got %+v", cfg.Monsters)
	}
	if cfg.Spells[0].ID != SpellVolley || cfg.Merchants != 1 {
		t.Errorf("Unexpected spells/merchants %+v %d", cfg.Spells, cfg.Merchants)
	}
}

func TestLoadDeckConfigErrors(t *testing.T) {
	if _, err := LoadDeckConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("weapons: [oops"), 0o600); err != nil {
		t.Fatalf("Failed to write deck: %v", err)
	}
	if _, err := LoadDeckConfig(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestDeckConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  DeckConfig
	}{
		{"empty", DeckConfig{}},
		{"negative count", DeckConfig{Weapons: []ItemGroup{{Value: 2, Count: -1}}}},
		{"zero hp monster", DeckConfig{Monsters: []MonsterGroup{{Value: 0, Count: 1}}}},
		{"unknown ability", DeckConfig{Monsters: []MonsterGroup{{Value: 2, Count: 1, Ability: "teleport"}}}},
		{"unknown spell", DeckConfig{Spells: []SpellGroup{{ID: "meteor", Count: 1}}}},
		{"negative gold", DeckConfig{StartGold: -1, Skulls: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, ErrInvalidDeckConfig) {
				t.Errorf("Expected ErrInvalidDeckConfig, got %v", err)
			}
		})
	}

	ok := DeckConfig{Monsters: []MonsterGroup{{Value: 2, Count: 1, Ability: AbilityCorpseeater}}}
	if err := ok.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if ok.maxHP() != defaultMaxHP {
		t.Errorf("Expected default max HP %d, got %d", defaultMaxHP, ok.maxHP())
	}
}

func TestLoadContent(t *testing.T) {
	data := `
baseSpellIds: [peek, scout]
spells:
  peek:
    name: Peek
    icon: "👁"
abilities:
  ambush:
    name: Ambusher
curses:
  greed:
    name: Greed
items:
  weapon:
    name: Sword
`
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("Failed to write content: %v", err)
	}

	c, err := LoadContent(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(c.BaseSpellIDs) != 2 {
		t.Errorf("Expected 2 base spells, got %v", c.BaseSpellIDs)
	}
	if c.Spell(SpellPeek).Name != "Peek" || c.Ability(AbilityAmbush).Name != "Ambusher" {
		t.Errorf("Unexpected lookups %+v", c)
	}
	if c.Curse(CurseGreed).Name != "Greed" || c.Item(CardWeapon).Name != "Sword" {
		t.Errorf("Unexpected lookups %+v", c)
	}
	if c.Spell(SpellHeal) != (Meta{}) {
		t.Errorf("Expected blank metadata for a miss, got %+v", c.Spell(SpellHeal))
	}
}

func TestParseLanguage(t *testing.T) {
	if got := ParseLanguage("en-US"); got != language.English {
		t.Errorf("Expected en, got %s", got)
	}
	if got := ParseLanguage("ru"); got != language.Russian {
		t.Errorf("Expected ru, got %s", got)
	}
	if got := ParseLanguage("???"); got != DefaultLanguage {
		t.Errorf("Expected default language, got %s", got)
	}
}

func TestShippedDataLoads(t *testing.T) {
	deck, err := LoadDeckConfig(filepath.Join("..", "..", "decks", "default.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	content, err := LoadContent(filepath.Join("..", "..", "content", "content.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, g := range deck.Monsters {
		if g.Ability != "" && content.Ability(g.Ability).Name == "" {
			t.Errorf("Expected metadata for ability %q", g.Ability)
		}
	}
	for _, s := range deck.Spells {
		if content.Spell(s.ID).Name == "" {
			t.Errorf("Expected metadata for spell %q", s.ID)
		}
	}
	for _, id := range content.BaseSpellIDs {
		if _, ok := SpellTarget(id); !ok {
			t.Errorf("Expected a rule for base spell %q", id)
		}
	}

	st := NewEngine(NewRng(7), fixedClock{}, language.Russian).Apply(GameState{}, StartGame{Config: deck, Content: content})
	if st.Status != StatusPlaying {
		t.Fatalf("Expected playing, got %s", st.Status)
	}
	if st.CardsInPlay() != st.IssuedCards {
		t.Errorf("Expected %d cards in play, got %d", st.IssuedCards, st.CardsInPlay())
	}
	if st.Player.MaxHP != deck.MaxHP {
		t.Errorf("Expected maxHp %d, got %d", deck.MaxHP, st.Player.MaxHP)
	}
}
