package renderer

import (
	"strconv"
	"strings"

	"github.com/emberforge/adventurer-api/internal/entities/adventurer"
)

// animationCycleSeconds is the full multi-page rotation period; each
// page gets an equal slice of it.
const animationCycleSeconds = 10

// svgOpen is the shared document header.
const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="xMidYMid meet" viewBox="0 0 862 1270">`

// ComposeImage renders the full multi-page image for a snapshot. A live
// fight forces a single static battle page; otherwise the normal page
// cycle is emitted inside an animated container that crossfades each
// page in turn.
func ComposeImage(s *adventurer.Snapshot) string {
	b := &strings.Builder{}
	mode := PageModeOf(s)

	writeHeader(b)
	if mode.BattleOnly {
		writePageGroup(b, s, PageBattle)
	} else {
		b.WriteString(`<g>`)
		for i := uint8(0); i < mode.Count; i++ {
			writeAnimatedPageGroup(b, s, Page(i), int(i), int(mode.Count))
		}
		b.WriteString(`</g>`)
	}
	writeFooter(b)
	return b.String()
}

// ComposePage renders a single static page, the variant behind the
// paginated query path. Out-of-range indices render page 0.
func ComposePage(s *adventurer.Snapshot, page Page) string {
	b := &strings.Builder{}
	writeHeader(b)
	writePageGroup(b, s, normalizePage(page))
	writeFooter(b)
	return b.String()
}

func writeHeader(b *strings.Builder) {
	b.WriteString(svgOpen)
	rect(b, 0, 0, canvasWidth, canvasHeight, colorBackdrop)
}

// writePageGroup emits one page: backdrop, content, and themed border,
// clipped to the content region.
func writePageGroup(b *strings.Builder, s *adventurer.Snapshot, page Page) {
	page = normalizePage(page)
	b.WriteString(`<g clip-path="url(#content)">`)
	rect(b, contentX, contentY, contentWidth, contentHeight, colorBackdrop)
	RenderPageContent(b, s, page)
	Border(b, ThemeColor(page))
	b.WriteString(`</g>`)
}

// writeAnimatedPageGroup wraps a page group with the opacity keyframes
// that show it for its slice of the rotation cycle.
func writeAnimatedPageGroup(b *strings.Builder, s *adventurer.Snapshot, page Page, index, count int) {
	page = normalizePage(page)
	b.WriteString(`<g clip-path="url(#content)">`)
	pageOpacityAnimate(b, index, count)
	rect(b, contentX, contentY, contentWidth, contentHeight, colorBackdrop)
	RenderPageContent(b, s, page)
	Border(b, ThemeColor(page))
	b.WriteString(`</g>`)
}

// pageOpacityAnimate emits the <animate> element holding page index
// visible during [index/count, (index+1)/count) of the cycle.
func pageOpacityAnimate(b *strings.Builder, index, count int) {
	start := keyTime(index, count)
	end := keyTime(index+1, count)

	var keyTimes, values string
	switch {
	case count <= 1:
		return
	case index == 0:
		keyTimes = "0;" + end + ";" + end + ";1"
		values = "1;1;0;0"
	case index == count-1:
		keyTimes = "0;" + start + ";" + start + ";1"
		values = "0;0;1;1"
	default:
		keyTimes = "0;" + start + ";" + start + ";" + end + ";" + end + ";1"
		values = "0;0;1;1;0;0"
	}

	b.WriteString(`<animate attributeName="opacity" dur="`)
	b.WriteString(strconv.Itoa(animationCycleSeconds))
	b.WriteString(`s" repeatCount="indefinite" keyTimes="`)
	b.WriteString(keyTimes)
	b.WriteString(`" values="`)
	b.WriteString(values)
	b.WriteString(`" calcMode="discrete"/>`)
}

// keyTime formats i/count as an SVG keyTimes fraction.
func keyTime(i, count int) string {
	return strconv.FormatFloat(float64(i)/float64(count), 'f', 4, 64)
}

// writeFooter appends the shared definitions: content clip path,
// drop-shadow filter, and font style, then closes the document.
func writeFooter(b *strings.Builder) {
	b.WriteString(`<defs><clipPath id="content"><rect x="`)
	b.WriteString(coord(contentX))
	b.WriteString(`" y="`)
	b.WriteString(coord(contentY))
	b.WriteString(`" width="`)
	b.WriteString(coord(contentWidth))
	b.WriteString(`" height="`)
	b.WriteString(coord(contentHeight))
	b.WriteString(`"/></clipPath>`)
	b.WriteString(`<filter id="shadow"><feDropShadow dx="0" dy="2" stdDeviation="2" flood-opacity="0.5"/></filter>`)
	b.WriteString(`<style>text{font-family:'Courier New',monospace;font-weight:bold;}</style>`)
	b.WriteString(`</defs></svg>`)
}
