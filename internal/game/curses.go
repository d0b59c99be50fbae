package game

// CurseType names a run-wide modifier chosen once before the first action.
type CurseType string

const (
	CurseTempering CurseType = "tempering"
	CurseGreed     CurseType = "greed"
	CursePoison    CurseType = "poison"
	CurseDarkness  CurseType = "darkness"
)

var knownCurses = map[CurseType]bool{
	CurseTempering: true,
	CurseGreed:     true,
	CursePoison:    true,
	CurseDarkness:  true,
}

// curseModifier returns the value of a card of type t after the curse is
// applied at the point of use. The card itself keeps its printed value.
func curseModifier(curse CurseType, t CardType, base int) int {
	switch {
	case curse == CurseTempering && t == CardWeapon:
		return base + 1
	case curse == CurseGreed && t == CardCoin:
		return base + 2
	case curse == CursePoison && t == CardPotion:
		return max(0, base-1)
	default:
		return base
	}
}
