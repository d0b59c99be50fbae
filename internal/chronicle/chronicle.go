// Package chronicle renders a printable PDF summary of a run: every slain
// monster as a stop along a winding dungeon path, followed by the run's
// tallies.
package chronicle

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"skazmor/internal/game"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	stopSize  = 56.0
	pathStep  = 70.0
	perRow    = 6
	maxStops  = 30
	fontSize  = 9
	titleSize = 16
	labelSize = 7
)

type stop struct {
	label game.Label
	boss  bool
	name  string
	hp    int
}

// Generate returns PDF bytes for st. Numbers are grouped the way lang
// writes them; the text itself is English since the PDF core fonts only
// cover Western code pages.
func Generate(st game.GameState, title string, lang language.Tag) ([]byte, error) {
	p := message.NewPrinter(lang)
	stops := slain(st)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Stone background
	pdf.SetFillColor(228, 224, 214)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawRaggedBorder(pdf)

	pdf.SetDrawColor(60, 40, 30)
	pdf.SetTextColor(60, 40, 30)
	pdf.SetLineWidth(1)

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin+10, margin+8)
	pdf.CellFormat(pageW-2*margin-20, 16, tr("Dungeon Chronicle"), "", 0, "L", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(margin+10, margin+26)
		pdf.CellFormat(pageW-2*margin-20, 10, tr(title), "", 0, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(pageW-margin-150, margin+8)
	pdf.CellFormat(140, 16, tr(outcome(st.Status)), "", 0, "R", false, 0, "")

	positions := layout(len(stops))

	// Dashed path between the fallen
	pdf.SetDrawColor(140, 20, 20)
	pdf.SetLineWidth(2)
	pdf.SetDashPattern([]float64{10, 6}, 0)
	for i := 0; i < len(positions)-1; i++ {
		pdf.Line(positions[i][0], positions[i][1], positions[i+1][0], positions[i+1][1])
	}
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetLineWidth(1)

	if len(stops) == 0 {
		pdf.SetFont("Helvetica", "I", fontSize)
		pdf.SetXY(margin+10, margin+70)
		pdf.CellFormat(200, 10, tr("No monster fell on this run."), "", 0, "L", false, 0, "")
	}
	for i, s := range stops {
		x, y := positions[i][0], positions[i][1]
		drawMonster(pdf, x, y, s, i == len(stops)-1)
		label := ""
		if latin1(s.name) {
			label = strings.ToUpper(s.name)
		}
		if label == "" {
			label = strings.ToUpper(strings.ReplaceAll(string(s.label), "_", " "))
		}
		if r := []rune(label); len(r) > 14 {
			label = string(r[:11]) + "..."
		}
		pdf.SetFont("Helvetica", "B", labelSize)
		pdf.SetTextColor(30, 20, 15)
		pdf.SetXY(x-stopSize/2-4, y+stopSize/2+2)
		pdf.CellFormat(stopSize+8, 9, tr(label), "", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", labelSize)
		pdf.SetXY(x-stopSize/2, y+stopSize/2+11)
		pdf.CellFormat(stopSize, 8, tr(p.Sprintf("%d HP", s.hp)), "", 0, "C", false, 0, "")
	}

	drawTallies(pdf, tr, p, st, tallyTop(len(stops)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render chronicle: %w", err)
	}
	return buf.Bytes(), nil
}

// latin1 reports whether the core fonts can draw name.
func latin1(name string) bool {
	for _, r := range name {
		if r > 0xff {
			return false
		}
	}
	return true
}

// slain lists the monsters in the discard pile in the order they fell.
func slain(st game.GameState) []stop {
	var out []stop
	for _, c := range st.DiscardPile {
		if c == nil || c.Type != game.CardMonster {
			continue
		}
		out = append(out, stop{label: c.Label, boss: c.IsBoss, name: c.Name, hp: c.Value})
	}
	if len(out) > maxStops {
		out = out[len(out)-maxStops:]
	}
	return out
}

// layout places n stops on a snake path so the run zig-zags down the page.
func layout(n int) [][2]float64 {
	positions := make([][2]float64, n)
	x0 := float64(margin) + stopSize
	y0 := float64(margin) + 90
	for i := range positions {
		row := i / perRow
		col := i % perRow
		if row%2 == 1 {
			col = perRow - 1 - col
		}
		positions[i][0] = x0 + float64(col)*pathStep
		positions[i][1] = y0 + float64(row)*pathStep
	}
	return positions
}

func tallyTop(n int) float64 {
	rows := (n + perRow - 1) / perRow
	return float64(margin) + 90 + float64(rows)*pathStep + 10
}

func outcome(s game.Status) string {
	switch s {
	case game.StatusWon:
		return "Victory"
	case game.StatusLost:
		return "Defeat"
	default:
		return "In progress"
	}
}

func drawTallies(pdf *gofpdf.Fpdf, tr func(string) string, p *message.Printer, st game.GameState, top float64) {
	curse := string(st.Curse)
	if curse == "" {
		curse = "none"
	}
	rows := []struct {
		label string
		value string
	}{
		{"Hero HP", p.Sprintf("%d / %d", st.Player.HP, st.Player.MaxHP)},
		{"Coins", p.Sprintf("%d", st.Player.Coins)},
		{"Curse", curse},
		{"Monsters slain", p.Sprintf("%d", st.Stats.MonstersKilled)},
		{"Monsters fled", p.Sprintf("%d", st.Stats.MonstersFled)},
		{"Damage dealt", p.Sprintf("%d", st.Stats.DamageDealt)},
		{"Damage taken", p.Sprintf("%d", st.Stats.DamageTaken)},
		{"Healed", p.Sprintf("%d", st.Stats.Healed)},
		{"Coins earned", p.Sprintf("%d", st.Stats.CoinsEarned)},
		{"Spells cast", p.Sprintf("%d", st.Stats.SpellsCast)},
		{"Overheal", p.Sprintf("%d", st.Overheads.Overheal)},
		{"Overkill", p.Sprintf("%d", st.Overheads.Overkill)},
		{"Overdefense", p.Sprintf("%d", st.Overheads.Overdefense)},
	}
	pdf.SetDrawColor(60, 40, 30)
	pdf.Line(margin+10, top, pageW-margin-10, top)
	pdf.SetTextColor(60, 40, 30)
	y := top + 8
	for _, r := range rows {
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(margin+20, y)
		pdf.CellFormat(160, 12, tr(r.label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.CellFormat(120, 12, tr(r.value), "", 0, "R", false, 0, "")
		y += 13
	}
}

// drawRaggedBorder draws a rough-hewn border around the page.
func drawRaggedBorder(pdf *gofpdf.Fpdf) {
	pts := raggedRectPoints(margin, margin, pageW-2*margin, pageH-2*margin, 12, 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
}

// raggedRectPoints returns polygon points for a rectangle with sinusoidal
// wobble on each side.
func raggedRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, steps*4+4)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + t*w + amp*math.Sin(float64(i)*0.7), Y: y + amp*math.Cos(float64(i)*0.5)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + w + amp*math.Sin(float64(i)*0.6), Y: y + t*h + amp*math.Cos(float64(i)*0.4)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + w - t*w + amp*math.Sin(float64(i)*0.8), Y: y + h + amp*math.Cos(float64(i)*0.3)})
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pts = append(pts, gofpdf.PointType{X: x + amp*math.Sin(float64(i)*0.5), Y: y + h - t*h + amp*math.Cos(float64(i)*0.6)})
	}
	return pts
}

// drawMonster draws a small emblem for the monster's tier at (x,y).
func drawMonster(pdf *gofpdf.Fpdf, x, y float64, s stop, last bool) {
	r := stopSize / 2.0
	if last {
		pdf.SetDrawColor(140, 20, 20)
		pdf.SetLineWidth(2)
		pdf.Circle(x, y, r+2, "D")
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.2)
	switch {
	case s.boss || s.label == game.LabelBoss:
		drawCrown(pdf, x, y, r)
		drawSkull(pdf, x, y+r*0.2, r*0.6)
	case s.label == game.LabelMiniBoss:
		drawHorns(pdf, x, y, r)
		drawSkull(pdf, x, y, r*0.6)
	case s.label == game.LabelTank:
		drawShieldShape(pdf, x, y, r)
	case s.label == game.LabelMedium:
		drawSkull(pdf, x, y, r*0.55)
		drawClaws(pdf, x, y, r)
	default:
		drawSkull(pdf, x, y, r*0.45)
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(60, 40, 30)
}

func drawSkull(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Circle(x, y-r*0.2, r*0.7, "D")
	pdf.Rect(x-r*0.35, y+r*0.4, r*0.7, r*0.35, "D")
	pdf.Circle(x-r*0.28, y-r*0.25, r*0.15, "D")
	pdf.Circle(x+r*0.28, y-r*0.25, r*0.15, "D")
}

func drawCrown(pdf *gofpdf.Fpdf, x, y, r float64) {
	top := y - r*0.8
	base := y - r*0.45
	pdf.Line(x-r*0.5, base, x+r*0.5, base)
	pdf.Line(x-r*0.5, base, x-r*0.5, top)
	pdf.Line(x-r*0.5, top, x-r*0.25, base-r*0.1)
	pdf.Line(x-r*0.25, base-r*0.1, x, top)
	pdf.Line(x, top, x+r*0.25, base-r*0.1)
	pdf.Line(x+r*0.25, base-r*0.1, x+r*0.5, top)
	pdf.Line(x+r*0.5, top, x+r*0.5, base)
}

func drawHorns(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Arc(x-r*0.45, y-r*0.35, r*0.3, r*0.4, 0, 180, 300, "D")
	pdf.Arc(x+r*0.45, y-r*0.35, r*0.3, r*0.4, 0, 240, 360, "D")
}

func drawShieldShape(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Line(x-r*0.5, y-r*0.5, x+r*0.5, y-r*0.5)
	pdf.Line(x-r*0.5, y-r*0.5, x-r*0.5, y)
	pdf.Line(x+r*0.5, y-r*0.5, x+r*0.5, y)
	pdf.Line(x-r*0.5, y, x, y+r*0.6)
	pdf.Line(x+r*0.5, y, x, y+r*0.6)
}

func drawClaws(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.SetLineWidth(1.5)
	for i := -1; i <= 1; i++ {
		dx := float64(i) * r * 0.2
		pdf.Line(x+r*0.55+dx, y-r*0.5, x+r*0.35+dx, y+r*0.5)
	}
	pdf.SetLineWidth(1.2)
}
