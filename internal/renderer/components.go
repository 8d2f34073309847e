package renderer

import (
	"strconv"
	"strings"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
	"github.com/emberforge/adventurer-api/internal/pkg/gamemath"
	"github.com/emberforge/adventurer-api/internal/pkg/shortstr"
)

// Canvas geometry. The outer frame is 862x1270; page content is drawn
// inside a 567x862 region at a fixed offset and clipped to it.
const (
	canvasWidth  = 862.0
	canvasHeight = 1270.0

	contentX      = 147.5
	contentY      = 204.0
	contentWidth  = 567.0
	contentHeight = 862.0
)

// Name banner truncation and font sizing.
const (
	nameMaxLen  = 31
	nameKeepLen = 28
	nameEllipsis = "..."
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return textEscaper.Replace(s)
}

func num(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// text emits a positioned <text> element. An empty anchor means the
// default start anchor.
func text(b *strings.Builder, x, y float64, size int, fill, anchor, content string) {
	b.WriteString(`<text x="`)
	b.WriteString(coord(x))
	b.WriteString(`" y="`)
	b.WriteString(coord(y))
	b.WriteString(`" font-size="`)
	b.WriteString(strconv.Itoa(size))
	b.WriteString(`" fill="`)
	b.WriteString(fill)
	if anchor != "" {
		b.WriteString(`" text-anchor="`)
		b.WriteString(anchor)
	}
	b.WriteString(`">`)
	b.WriteString(escape(content))
	b.WriteString(`</text>`)
}

func rect(b *strings.Builder, x, y, w, h float64, fill string) {
	b.WriteString(`<rect x="`)
	b.WriteString(coord(x))
	b.WriteString(`" y="`)
	b.WriteString(coord(y))
	b.WriteString(`" width="`)
	b.WriteString(coord(w))
	b.WriteString(`" height="`)
	b.WriteString(coord(h))
	b.WriteString(`" fill="`)
	b.WriteString(fill)
	b.WriteString(`"/>`)
}

func rectOutline(b *strings.Builder, x, y, w, h float64, stroke string, strokeWidth int) {
	b.WriteString(`<rect x="`)
	b.WriteString(coord(x))
	b.WriteString(`" y="`)
	b.WriteString(coord(y))
	b.WriteString(`" width="`)
	b.WriteString(coord(w))
	b.WriteString(`" height="`)
	b.WriteString(coord(h))
	b.WriteString(`" fill="none" stroke="`)
	b.WriteString(stroke)
	b.WriteString(`" stroke-width="`)
	b.WriteString(strconv.Itoa(strokeWidth))
	b.WriteString(`"/>`)
}

// icon places a 24x24 slot icon path at (x, y) scaled by scale.
func icon(b *strings.Builder, x, y, scale float64, fill, d string) {
	b.WriteString(`<g transform="translate(`)
	b.WriteString(coord(x))
	b.WriteString(`,`)
	b.WriteString(coord(y))
	b.WriteString(`) scale(`)
	b.WriteString(coord(scale))
	b.WriteString(`)"><path d="`)
	b.WriteString(d)
	b.WriteString(`" fill="none" stroke="`)
	b.WriteString(fill)
	b.WriteString(`" stroke-width="1.5"/></g>`)
}

// bannerName applies the display truncation rule: text longer than 31
// characters keeps the first 28 and gains a three-character ellipsis.
func bannerName(name string) string {
	if len(name) > nameMaxLen {
		return name[:nameKeepLen] + nameEllipsis
	}
	return name
}

// bannerFontSize picks the banner font for the (already truncated)
// name: short names render large.
func bannerFontSize(name string) int {
	switch {
	case len(name) <= 10:
		return 32
	case len(name) <= 16:
		return 24
	default:
		return 16
	}
}

// NameBanner draws the adventurer name centered in a framed banner
// across the top of the content region.
func NameBanner(b *strings.Builder, name shortstr.String, color string) {
	display := bannerName(name.Decode())
	rectOutline(b, contentX+24, contentY+76, contentWidth-48, 46, color, 2)
	text(b, contentX+contentWidth/2, contentY+108, bannerFontSize(display), color, "middle", display)
}

// Logo draws the crossed-torch emblem in the top-left corner.
func Logo(b *strings.Builder, color string) {
	icon(b, contentX+24, contentY+20, 1.6, color, "M12 2 C9 6 10 8 12 10 C14 8 15 6 12 2 Z M8 10 L16 10 L14 22 L10 22 Z M12 13 L12 19")
}

// GoldDisplay draws a coin marker and the gold amount in the top-right
// corner.
func GoldDisplay(b *strings.Builder, gold uint16, color string) {
	b.WriteString(`<circle cx="`)
	b.WriteString(coord(contentX + contentWidth - 112))
	b.WriteString(`" cy="`)
	b.WriteString(coord(contentY + 38))
	b.WriteString(`" r="10" fill="none" stroke="`)
	b.WriteString(color)
	b.WriteString(`" stroke-width="2"/>`)
	text(b, contentX+contentWidth-96, contentY+44, 20, color, "", num(uint64(gold)))
}

// LevelDisplay draws the adventurer level under the name banner.
func LevelDisplay(b *strings.Builder, level uint8, color string) {
	text(b, contentX+28, contentY+150, 18, color, "", "LEVEL "+num(uint64(level)))
}

// HealthBar draws the health readout and proportional bar. Fill width
// and band color follow gamemath; the outline always spans the full
// bar so an empty bar still reads as a bar.
func HealthBar(b *strings.Builder, health uint16, vitality uint8, color string) {
	maxHealth := gamemath.MaxHealth(vitality)
	filled := gamemath.HealthBarWidth(health, maxHealth)

	bandColor := colorCritical
	switch gamemath.HealthBandOf(health, maxHealth) {
	case gamemath.HealthBandHealthy:
		bandColor = colorHealthy
	case gamemath.HealthBandWarning:
		bandColor = colorWarning
	}

	label := num(uint64(health)) + " / " + num(uint64(maxHealth)) + " HP"
	text(b, contentX+239, contentY+128, 14, color, "", label)
	rectOutline(b, contentX+239, contentY+138, gamemath.HealthBarMaxWidth, 14, color, 1)
	if filled > 0 {
		rect(b, contentX+239, contentY+138, float64(filled), 14, bandColor)
	}
}

// PageHeader draws the page title and its underline.
func PageHeader(b *strings.Builder, title, color string) {
	text(b, contentX+28, contentY+214, 22, color, "", title)
	rect(b, contentX+28, contentY+224, contentWidth-56, 2, color)
}

// statRows pairs stat labels with their values in display order.
func statRows(stats adventurer.Stats) [7]struct {
	Label string
	Value uint8
} {
	return [7]struct {
		Label string
		Value uint8
	}{
		{"STR", stats.Strength},
		{"DEX", stats.Dexterity},
		{"VIT", stats.Vitality},
		{"INT", stats.Intelligence},
		{"WIS", stats.Wisdom},
		{"CHA", stats.Charisma},
		{"LCK", stats.Luck},
	}
}

// StatsColumn draws the seven-attribute block down the left edge.
func StatsColumn(b *strings.Builder, stats adventurer.Stats, color string) {
	y := contentY + 280.0
	for _, row := range statRows(stats) {
		text(b, contentX+28, y, 16, color, "", row.Label)
		text(b, contentX+120, y, 16, color, "end", num(uint64(row.Value)))
		y += 32
	}
}

// equipment grid geometry: 2 columns x 4 rows to the right of the
// stats column.
const (
	equipGridX     = 180.0
	equipGridY     = 250.0
	equipCellW     = 185.0
	equipCellH     = 140.0
	equipCellStepX = 190.0
	equipCellStepY = 150.0
)

// EquipmentGrid draws the eight equipment slots: frame, slot icon,
// greatness badge, and up to two lines of item name. Empty slots draw
// the frame and a dimmed icon with no name lines.
func EquipmentGrid(b *strings.Builder, equipment adventurer.Equipment, color string) {
	items := equipment.Slots()
	for i, item := range items {
		slot := adventurer.AllSlots[i]
		col := float64(i % 2)
		row := float64(i / 2)
		x := contentX + equipGridX + col*equipCellStepX
		y := contentY + equipGridY + row*equipCellStepY

		rectOutline(b, x, y, equipCellW, equipCellH, color, 1)
		icon(b, x+12, y+12, 1.4, color, SlotIconPath(slot))
		if item.IsEmpty() {
			continue
		}
		greatnessBadge(b, x+equipCellW-34, y+28, item.Greatness(), color)
		itemNameLines(b, x+12, y+70, equipNameWords(item.Name), color)
	}
}

// bag grid geometry: 3 columns x 5 rows filling the lower region.
const (
	bagGridX     = 28.0
	bagGridY     = 250.0
	bagCellW     = 170.0
	bagCellH     = 110.0
	bagCellStepX = 180.0
	bagCellStepY = 120.0
)

// BagGrid draws the fifteen bag slots. Unlike equipment, an empty bag
// slot renders the EMPTY placeholder word.
func BagGrid(b *strings.Builder, bag [adventurer.BagSize]adventurer.Item, color string) {
	for i, item := range bag {
		col := float64(i % 3)
		row := float64(i / 3)
		x := contentX + bagGridX + col*bagCellStepX
		y := contentY + bagGridY + row*bagCellStepY

		rectOutline(b, x, y, bagCellW, bagCellH, color, 1)
		if !item.IsEmpty() {
			icon(b, x+10, y+10, 1.1, color, SlotIconPath(item.Slot))
			greatnessBadge(b, x+bagCellW-30, y+24, item.Greatness(), color)
		}
		itemNameLines(b, x+10, y+58, bagNameWords(item), color)
	}
}

// greatnessBadge draws the G-prefixed item level marker.
func greatnessBadge(b *strings.Builder, x, y float64, greatness uint8, color string) {
	text(b, x, y, 14, color, "", "G"+num(uint64(greatness)))
}

// itemNameLines stacks name words, two words per line, at most two
// lines per cell.
func itemNameLines(b *strings.Builder, x, y float64, words []string, color string) {
	const wordsPerLine = 2
	const maxLines = 2
	line := 0
	for i := 0; i < len(words) && line < maxLines; i += wordsPerLine {
		end := i + wordsPerLine
		if end > len(words) {
			end = len(words)
		}
		text(b, x, y+float64(line)*18, 13, color, "", strings.Join(words[i:end], " "))
		line++
	}
}

// equipNameWords returns no words for an unnamed item: equipment slots
// draw no name line when empty.
func equipNameWords(name string) []string {
	if name == "" {
		return nil
	}
	return shortstr.Fields(name)
}

// bagNameWords substitutes the EMPTY placeholder for vacant bag slots.
func bagNameWords(item adventurer.Item) []string {
	if item.IsEmpty() || item.Name == "" {
		return []string{"EMPTY"}
	}
	return shortstr.Fields(item.Name)
}

// Border draws the decorative double frame around the content region.
func Border(b *strings.Builder, color string) {
	rectOutline(b, contentX+6, contentY+6, contentWidth-12, contentHeight-12, color, 2)
	rectOutline(b, contentX+14, contentY+14, contentWidth-28, contentHeight-28, color, 1)
}

// BattleNarration draws the placeholder combat text shown on the
// battle page in place of equipment and bag content.
func BattleNarration(b *strings.Builder, s *adventurer.Snapshot, color string) {
	lines := [4]string{
		"A BEAST BLOCKS THE PATH",
		"BEAST HEALTH " + num(uint64(s.BeastHealth)),
		"STEEL YOURSELF",
		"FIGHT OR FLEE",
	}
	if s.Health == 0 {
		lines = [4]string{
			"THE ADVENTURE ENDS HERE",
			"SLAIN IN THE DEPTHS",
			"BEAST HEALTH " + num(uint64(s.BeastHealth)),
			"REST NOW ADVENTURER",
		}
	}
	y := contentY + 320.0
	for _, line := range lines {
		text(b, contentX+contentWidth/2, y, 20, color, "middle", line)
		y += 48
	}
}
