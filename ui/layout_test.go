package ui

import (
	"testing"

	"github.com/jask/jasktv/widgets"
)

func TestMenuSitsLeftOfContent(t *testing.T) {
	menu := menuItemRect(0)
	tile := tileRect(0, 0)
	if menu.Right > tile.Left {
		t.Fatalf("menu right %v overlaps content left %v", menu.Right, tile.Left)
	}
}

func TestMenuItemsStackWithoutOverlap(t *testing.T) {
	a, b := menuItemRect(0), menuItemRect(1)
	if a.Bottom > b.Top {
		t.Fatalf("menu items overlap: %v then %v", a, b)
	}
	if a.Left != b.Left || a.Right != b.Right {
		t.Fatal("menu items should share a column")
	}
}

func TestTileRectMatchesWidgetSize(t *testing.T) {
	r := tileRect(0, 0)
	if r.Width() != widgets.TileWidth {
		t.Fatalf("tile rect width = %v, want %v", r.Width(), widgets.TileWidth)
	}
	if r.Height() != widgets.TileHeight {
		t.Fatalf("tile rect height = %v, want %v", r.Height(), widgets.TileHeight)
	}
}

func TestShelfTilesAlignAcrossRows(t *testing.T) {
	// same column in different rows must share horizontal extent, otherwise
	// vertical spatial moves drift sideways.
	top := tileRect(0, 2)
	bottom := tileRect(1, 2)
	if top.Left != bottom.Left || top.Right != bottom.Right {
		t.Fatalf("column 2 misaligned: row0 %v row1 %v", top, bottom)
	}
	if top.Bottom > bottom.Top {
		t.Fatalf("rows overlap: %v then %v", top, bottom)
	}
}

func TestGridRectsAreRowMajor(t *testing.T) {
	first := gridTileRect(0)
	sameRow := gridTileRect(gridColumns - 1)
	nextRow := gridTileRect(gridColumns)
	if sameRow.Top != first.Top {
		t.Fatal("indices within a row must share Top")
	}
	if nextRow.Left != first.Left {
		t.Fatal("first index of next row must return to column 0")
	}
	if nextRow.Top <= first.Top {
		t.Fatal("next row must sit below the first")
	}
}

func TestModalButtonsOrderedLeftToRight(t *testing.T) {
	for i := 0; i < 2; i++ {
		a, b := modalButtonRect(i), modalButtonRect(i+1)
		if a.Right > b.Left {
			t.Fatalf("buttons %d and %d overlap", i, i+1)
		}
		if a.Top != b.Top {
			t.Fatal("buttons must share a row")
		}
	}
}

func TestPlayerControlsOrderedLeftToRight(t *testing.T) {
	for i := 0; i < 3; i++ {
		a, b := playerControlRect(i), playerControlRect(i+1)
		if a.Right > b.Left {
			t.Fatalf("controls %d and %d overlap", i, i+1)
		}
	}
}
