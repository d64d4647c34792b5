package render

import (
	"strings"

	"circuitgen/internal/circuit"
)

var glyphs = map[circuit.JointKind][]rune{
	circuit.Terminal: {'╵', '╶', '╷', '╴'},
	circuit.Curve:    {'└', '┌', '┐', '┘'},
	circuit.Line:     {'│', '─'},
	circuit.Tee:      {'├', '┬', '┤', '┴'},
	circuit.Cross:    {'┼', '╋'},
}

const (
	glyphEmpty   = ' '
	glyphNone    = '·'
	glyphPending = '░'
	glyphInvalid = '?'
)

// Glyph returns the box-drawing rune for a decoded display cell.
func Glyph(d circuit.DisplayCell) rune {
	switch {
	case !d.Placed:
		return glyphEmpty
	case d.Pending:
		return glyphPending
	}
	switch d.Kind {
	case circuit.None:
		return glyphNone
	case circuit.Cross:
		return glyphs[circuit.Cross][d.Variant&1]
	}
	set, ok := glyphs[d.Kind]
	if !ok {
		return glyphInvalid
	}
	return set[d.Rotation%len(set)]
}

// TextRows renders a display buffer of w*h EncodeJoint bytes as one string
// per row.
func TextRows(cells []uint8, w, h int) []string {
	rows := make([]string, 0, h)
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.Reset()
		for x := 0; x < w; x++ {
			idx := y*w + x
			if idx >= len(cells) {
				b.WriteRune(glyphEmpty)
				continue
			}
			b.WriteRune(Glyph(circuit.DecodeJoint(cells[idx])))
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Text renders a display buffer as newline-separated rows.
func Text(cells []uint8, w, h int) string {
	return strings.Join(TextRows(cells, w, h), "\n")
}
