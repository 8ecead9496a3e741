package engine

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// TextFont wraps an Ebitengine text/v2 face.
type TextFont struct {
	face text.Face
	lh   float64
}

// NewTextFont wraps face. The line height is taken from the face metrics.
func NewTextFont(face text.Face) *TextFont {
	m := face.Metrics()
	return &TextFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TextFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("engine: failed to parse TTF data: %w", err)
	}
	return NewTextFont(&text.GoTextFace{Source: source, Size: size}), nil
}

var defaultFont *TextFont

// DefaultFont returns the built-in 7x13 bitmap font.
func DefaultFont() *TextFont {
	if defaultFont == nil {
		defaultFont = NewTextFont(text.NewGoXFace(basicfont.Face7x13))
	}
	return defaultFont
}

// MeasureString returns the width and height of the rendered text.
func (f *TextFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TextFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying face for direct text/v2 rendering.
func (f *TextFont) Face() text.Face {
	return f.face
}

// Label displays text inside its control rectangle.
type Label struct {
	Control

	text              string
	align             TextAlign
	autowrap          bool
	font              Font
	visibleCharacters int
	color             Color
}

// NewLabel creates an empty left-aligned label using DefaultFont.
func NewLabel(name string) *Label {
	l := &Label{}
	l.initControl(l, ClassLabel, name)
	l.visibleCharacters = -1
	l.color = ColorWhite
	return l
}

// AsLabel returns l.
func (l *Label) AsLabel() *Label { return l }

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText sets the label text.
func (l *Label) SetText(s string) {
	l.text = s
}

// HorizontalAlignment returns the line alignment within the control width.
func (l *Label) HorizontalAlignment() TextAlign {
	return l.align
}

// SetHorizontalAlignment sets the line alignment within the control width.
func (l *Label) SetHorizontalAlignment(a TextAlign) {
	l.align = a
}

// Autowrap reports whether lines wrap at the control width.
func (l *Label) Autowrap() bool {
	return l.autowrap
}

// SetAutowrap sets whether lines wrap at the control width.
func (l *Label) SetAutowrap(wrap bool) {
	l.autowrap = wrap
}

// Font returns the font in use. A label without an explicit font uses
// DefaultFont.
func (l *Label) Font() Font {
	if l.font == nil {
		return DefaultFont()
	}
	return l.font
}

// SetFont sets the font. nil restores DefaultFont.
func (l *Label) SetFont(f Font) {
	l.font = f
}

// FontColor returns the text color.
func (l *Label) FontColor() Color {
	return l.color
}

// SetFontColor sets the text color.
func (l *Label) SetFontColor(c Color) {
	l.color = c
}

// VisibleCharacters returns the number of runes drawn, or -1 for all.
func (l *Label) VisibleCharacters() int {
	return l.visibleCharacters
}

// SetVisibleCharacters limits the number of runes drawn. -1 draws all.
func (l *Label) SetVisibleCharacters(n int) {
	if n < -1 {
		n = -1
	}
	l.visibleCharacters = n
}

// GetLineCount returns the number of lines after wrapping.
func (l *Label) GetLineCount() int {
	return len(l.lines())
}

// TextSize returns the size of the laid-out text.
func (l *Label) TextSize() Vec2 {
	return measureLines(l.Font(), l.lines())
}

func (l *Label) lines() []string {
	width := 0.0
	if l.autowrap {
		width = l.size.X
	}
	return layoutLines(l.Font(), l.text, width)
}

func (l *Label) draw(target *ebiten.Image, view Transform2D) {
	lines := l.lines()
	if l.visibleCharacters >= 0 {
		lines = truncateLines(lines, l.visibleCharacters)
	}
	drawLines(target, l.Font(), lines, l.align, l.size.X, 0,
		view.Mul(l.GetGlobalTransform()), l.color.Mul(l.globalModulate()))
}

// layoutLines splits s on newlines and, when width > 0, greedily wraps words
// so each line fits width.
func layoutLines(f Font, s string, width float64) []string {
	if s == "" {
		return nil
	}
	paragraphs := strings.Split(s, "\n")
	if width <= 0 {
		return paragraphs
	}
	var out []string
	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if cw, _ := f.MeasureString(candidate); cw > width {
				out = append(out, line)
				line = w
				continue
			}
			line = candidate
		}
		out = append(out, line)
	}
	return out
}

// measureLines returns the widest line width and the total height.
func measureLines(f Font, lines []string) Vec2 {
	var w float64
	for _, line := range lines {
		lw, _ := f.MeasureString(line)
		w = max(w, lw)
	}
	return Vec2{w, float64(len(lines)) * f.LineHeight()}
}

// truncateLines keeps the first n runes across lines.
func truncateLines(lines []string, n int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if n <= 0 {
			break
		}
		if c := utf8.RuneCountInString(line); c > n {
			line = string([]rune(line)[:n])
		}
		n -= utf8.RuneCountInString(line)
		out = append(out, line)
	}
	return out
}

// drawLines renders lines with a TextFont. Other Font implementations only
// take part in layout.
func drawLines(target *ebiten.Image, f Font, lines []string, align TextAlign, width, top float64, world Transform2D, col Color) {
	tf, ok := f.(*TextFont)
	if !ok || len(lines) == 0 {
		return
	}
	worldGeoM := world.GeoM()
	op := &text.DrawOptions{}
	op.Blend = BlendNormal.EbitenBlend()
	for i, line := range lines {
		lw, _ := tf.MeasureString(line)
		x := 0.0
		switch align {
		case TextAlignCenter:
			x = (width - lw) / 2
		case TextAlignRight:
			x = width - lw
		}
		op.GeoM.Reset()
		op.GeoM.Translate(x, top+float64(i)*tf.lh)
		op.GeoM.Concat(worldGeoM)
		applyColor(&op.ColorScale, col)
		text.Draw(target, line, tf.face, op)
	}
}
