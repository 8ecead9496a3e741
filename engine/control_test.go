package engine

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// monoFont is a fixed-pitch Font: every rune is 10 wide, lines are 12 high.
type monoFont struct{}

func (monoFont) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * 10, 12
}

func (monoFont) LineHeight() float64 { return 12 }

func TestControlSize(t *testing.T) {
	c := NewControl("c")
	c.SetSize(Vec2{50, 20})
	c.SetCustomMinimumSize(Vec2{60, 10})
	assert.Equal(t, Vec2{60, 20}, c.Size(), "size after min")
	c.SetSize(Vec2{0, 0})
	assert.Equal(t, Vec2{60, 10}, c.Size(), "size clamped")
	assert.PanicsWithValue(t, "engine: Control minimum size must be non-negative",
		func() { c.SetCustomMinimumSize(Vec2{-1, 0}) })
}

func TestControlRects(t *testing.T) {
	parent := NewNode2D("p")
	parent.SetPosition(Vec2{100, 0})
	c := NewControl("c")
	c.SetPosition(Vec2{10, 20})
	c.SetSize(Vec2{30, 40})
	parent.AddChild(c)

	assert.Equal(t, Rect{X: 10, Y: 20, Width: 30, Height: 40}, c.GetRect())
	assert.Equal(t, Rect{X: 110, Y: 20, Width: 30, Height: 40}, c.GetGlobalRect())

	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{0, 0}, true},
		{Vec2{15, 39}, true},
		{Vec2{30, 40}, true},
		{Vec2{-1, 5}, false},
		{Vec2{5, 41}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.HasPoint(tt.p), "HasPoint(%v)", tt.p)
	}
}

func TestControlFocus(t *testing.T) {
	tree := NewSceneTree()
	a := NewControl("a")
	b := NewControl("b")
	tree.Root().AddChild(a)
	tree.Root().AddChild(b)

	var log []string
	for _, c := range []*Control{a, b} {
		name := c.Name()
		c.Connect(SignalFocusEntered, func(...any) { log = append(log, "in:"+name) })
		c.Connect(SignalFocusExited, func(...any) { log = append(log, "out:"+name) })
	}

	a.GrabFocus()
	a.GrabFocus()
	b.GrabFocus()
	assert.Same(t, b, tree.FocusOwner(), "b should own focus")
	assert.False(t, a.HasFocus())
	tree.Root().RemoveChild(b)
	assert.Nil(t, tree.FocusOwner(), "removing the focus owner should release focus")

	assert.Equal(t, []string{"in:a", "out:a", "in:b", "out:b"}, log)

	detached := NewControl("d")
	detached.GrabFocus()
	assert.False(t, detached.HasFocus(), "a control outside a tree cannot take focus")
}

func TestLabelLayout(t *testing.T) {
	l := NewLabel("l")
	l.SetFont(monoFont{})
	l.SetText("one two three\nfour")

	assert.Equal(t, 2, l.GetLineCount(), "lines without wrap")
	assert.Equal(t, Vec2{130, 24}, l.TextSize())

	l.SetAutowrap(true)
	l.SetSize(Vec2{75, 0})
	assert.Equal(t, []string{"one two", "three", "four"}, l.lines())
	assert.Equal(t, Vec2{70, 36}, l.TextSize(), "wrapped")

	l.SetText("")
	assert.Equal(t, 0, l.GetLineCount(), "empty label should have no lines")
}

func TestLayoutLinesKeepsEmptyParagraphs(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, layoutLines(monoFont{}, "a\n\nb", 100))
}

func TestLabelDefaults(t *testing.T) {
	l := NewLabel("l")
	assert.Equal(t, -1, l.VisibleCharacters())
	assert.Equal(t, ColorWhite, l.FontColor())
	assert.Equal(t, Font(DefaultFont()), l.Font(), "label without a font should use DefaultFont")
	l.SetVisibleCharacters(-5)
	assert.Equal(t, -1, l.VisibleCharacters())
}

func TestDefaultFontMetrics(t *testing.T) {
	f := DefaultFont()
	assert.Equal(t, 13.0, f.LineHeight())
	w, _ := f.MeasureString("abc")
	assert.Equal(t, 21.0, w, "width of abc")
}

func TestTruncateLines(t *testing.T) {
	lines := []string{"héllo", "world"}
	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{}},
		{3, []string{"hél"}},
		{5, []string{"héllo"}},
		{7, []string{"héllo", "wo"}},
		{99, []string{"héllo", "world"}},
	}
	for _, tt := range tests {
		assert.ElementsMatch(t, tt.want, truncateLines(lines, tt.n), "truncateLines(%d)", tt.n)
	}
}

func TestButtonPress(t *testing.T) {
	b := NewButton("b")
	assert.Equal(t, TextAlignCenter, b.Alignment())
	presses := 0
	b.Connect(SignalPressed, func(...any) { presses++ })

	b.Press()
	assert.Equal(t, 1, presses)
	assert.False(t, b.ButtonPressed())

	b.SetDisabled(true)
	b.Press()
	assert.Equal(t, 1, presses, "disabled button should ignore presses")
}

func TestButtonToggle(t *testing.T) {
	b := NewButton("b")
	b.SetToggleMode(true)
	var log []string
	b.Connect(SignalToggled, func(args ...any) {
		if args[0].(bool) {
			log = append(log, "toggled:on")
		} else {
			log = append(log, "toggled:off")
		}
	})
	b.Connect(SignalPressed, func(...any) { log = append(log, "pressed") })

	b.Press()
	b.Press()
	b.SetButtonPressed(false)
	assert.Equal(t, []string{"toggled:on", "pressed", "toggled:off", "pressed"}, log)

	b.SetButtonPressed(true)
	b.SetToggleMode(false)
	assert.False(t, b.ButtonPressed(), "leaving toggle mode should clear the pressed state")
	b.SetButtonPressed(true)
	assert.False(t, b.ButtonPressed(), "SetButtonPressed outside toggle mode should be ignored")
}
