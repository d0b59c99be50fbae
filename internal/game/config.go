package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDeckConfig is returned when a deck file describes an unplayable deck.
var ErrInvalidDeckConfig = errors.New("invalid deck config")

const defaultMaxHP = 20

// ItemGroup expands into Count cards of the same type and value.
type ItemGroup struct {
	Value int `yaml:"value" json:"value"`
	Count int `yaml:"count" json:"count"`
}

// MonsterGroup expands into Count monsters sharing value, ability and label.
type MonsterGroup struct {
	Value   int       `yaml:"value" json:"value"`
	Count   int       `yaml:"count" json:"count"`
	Ability AbilityID `yaml:"ability" json:"ability,omitempty"`
	Label   Label     `yaml:"label" json:"label,omitempty"`
	Hidden  bool      `yaml:"hidden" json:"hidden,omitempty"`
}

// SpellGroup expands into Count copies of one spell.
type SpellGroup struct {
	ID    SpellID `yaml:"id" json:"id"`
	Count int     `yaml:"count" json:"count"`
}

// DeckConfig describes the composition of a run's draw pile.
type DeckConfig struct {
	Name         string         `yaml:"name" json:"name"`
	MaxHP        int            `yaml:"maxHp" json:"maxHp"`
	StartGold    int            `yaml:"startGold" json:"startGold"`
	Weapons      []ItemGroup    `yaml:"weapons" json:"weapons"`
	Shields      []ItemGroup    `yaml:"shields" json:"shields"`
	Potions      []ItemGroup    `yaml:"potions" json:"potions"`
	Coins        []ItemGroup    `yaml:"coins" json:"coins"`
	Monsters     []MonsterGroup `yaml:"monsters" json:"monsters"`
	Spells       []SpellGroup   `yaml:"spells" json:"spells"`
	RandomSpells int            `yaml:"randomSpells" json:"randomSpells"`
	Skulls       int            `yaml:"skulls" json:"skulls"`
	Merchants    int            `yaml:"merchants" json:"merchants"`
}

// Validate rejects negative counts and decks without any card.
func (c DeckConfig) Validate() error {
	total := c.RandomSpells + c.Skulls + c.Merchants
	if c.RandomSpells < 0 || c.Skulls < 0 || c.Merchants < 0 {
		return fmt.Errorf("%w: negative card count", ErrInvalidDeckConfig)
	}
	if c.MaxHP < 0 || c.StartGold < 0 {
		return fmt.Errorf("%w: negative maxHp or startGold", ErrInvalidDeckConfig)
	}
	for _, groups := range [][]ItemGroup{c.Weapons, c.Shields, c.Potions, c.Coins} {
		for _, g := range groups {
			if g.Count < 0 || g.Value < 0 {
				return fmt.Errorf("%w: negative item group", ErrInvalidDeckConfig)
			}
			total += g.Count
		}
	}
	for _, m := range c.Monsters {
		if m.Count < 0 || m.Value <= 0 {
			return fmt.Errorf("%w: monster groups need positive value", ErrInvalidDeckConfig)
		}
		if m.Ability != "" && !knownAbility(m.Ability) {
			return fmt.Errorf("%w: unknown ability %q", ErrInvalidDeckConfig, m.Ability)
		}
		total += m.Count
	}
	for _, s := range c.Spells {
		if s.Count < 0 {
			return fmt.Errorf("%w: negative spell count", ErrInvalidDeckConfig)
		}
		if _, ok := spellRules[s.ID]; !ok {
			return fmt.Errorf("%w: unknown spell %q", ErrInvalidDeckConfig, s.ID)
		}
		total += s.Count
	}
	if total == 0 {
		return fmt.Errorf("%w: deck is empty", ErrInvalidDeckConfig)
	}
	return nil
}

func (c DeckConfig) maxHP() int {
	if c.MaxHP <= 0 {
		return defaultMaxHP
	}
	return c.MaxHP
}

// LoadDeckConfig loads and validates a deck from a YAML file.
func LoadDeckConfig(path string) (DeckConfig, error) {
	var cfg DeckConfig
	if err := loadYAML(path, &cfg); err != nil {
		return DeckConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DeckConfig{}, err
	}
	return cfg, nil
}

// LoadContent loads a content snapshot from a YAML file.
func LoadContent(path string) (Content, error) {
	var c Content
	if err := loadYAML(path, &c); err != nil {
		return Content{}, err
	}
	return c, nil
}

func loadYAML(path string, out any) error {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path is cleaned and comes from config
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", cleanPath, err)
	}
	return nil
}
