package term

import (
	"strings"
	"testing"
)

func TestCanvasSetStringWideRunes(t *testing.T) {
	c := newCanvas(10, 1)
	c.setString(0, 0, "日本ab", attr{})

	if c.runes[0][0] != '日' || c.runes[0][2] != '本' {
		t.Errorf("wide runes misplaced: %q %q", c.runes[0][0], c.runes[0][2])
	}
	if c.runes[0][1] != 0 || c.runes[0][3] != 0 {
		t.Error("wide runes must leave a continuation cell")
	}
	if c.runes[0][4] != 'a' || c.runes[0][5] != 'b' {
		t.Errorf("narrow runes misplaced: %q %q", c.runes[0][4], c.runes[0][5])
	}
}

func TestCanvasSetClipsOutOfBounds(t *testing.T) {
	c := newCanvas(3, 2)
	c.set(-1, 0, 'x', attr{})
	c.set(3, 0, 'x', attr{})
	c.set(0, 2, 'x', attr{})
	c.setString(2, 0, "long", attr{})

	if c.runes[0][2] != 'l' {
		t.Errorf("in-bounds rune lost: %q", c.runes[0][2])
	}
	for y := range c.runes {
		for x, r := range c.runes[y] {
			if r != ' ' && !(y == 0 && x == 2) {
				t.Errorf("unexpected rune %q at (%d,%d)", r, x, y)
			}
		}
	}
}

func TestCanvasBox(t *testing.T) {
	c := newCanvas(10, 4)
	c.box(rect{x: 0, y: 0, w: 10, h: 4}, "hi", attr{})

	if c.runes[0][0] != '┌' || c.runes[0][9] != '┐' {
		t.Error("missing top corners")
	}
	if c.runes[3][0] != '└' || c.runes[3][9] != '┘' {
		t.Error("missing bottom corners")
	}
	if c.runes[1][0] != '│' || c.runes[1][9] != '│' {
		t.Error("missing vertical edges")
	}
	// Title is embedded in the top edge with padding.
	if got := string(c.runes[0][1:5]); got != " hi " {
		t.Errorf("title = %q, want %q", got, " hi ")
	}
}

func TestCanvasFlushPlainRun(t *testing.T) {
	c := newCanvas(8, 2)
	c.setString(0, 0, "hello", attr{})
	out := c.flush()

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("flush produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Errorf("first line %q does not contain the text", lines[0])
	}
}

func TestCanvasFlushSkipsContinuationCells(t *testing.T) {
	c := newCanvas(6, 1)
	c.setString(0, 0, "日", attr{})
	out := c.flush()

	if !strings.Contains(out, "日") {
		t.Errorf("flush lost the wide rune: %q", out)
	}
	if strings.ContainsRune(out, 0) {
		t.Error("flush leaked a continuation cell")
	}
}
