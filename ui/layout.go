package ui

import (
	"github.com/jask/jasktv/core/nav"
	"github.com/jask/jasktv/widgets"
)

// Screen layout constants. Geometry is measured in terminal cells; the
// resolver only compares rectangles against each other, so the numbers need
// to be mutually consistent, not pixel-accurate.
const (
	menuWidth      = 18
	menuItemHeight = 3
	menuTop        = 2

	contentLeft = menuWidth + 2
	shelfTop    = 2
	shelfPitch  = widgets.ShelfHeight + 2
	tilePitch   = widgets.TileWidth + 2

	gridColumns = 4

	modalLeft         = 40
	modalTop          = 10
	modalButtonWidth  = 14
	modalButtonPitch  = modalButtonWidth + 2
	modalButtonHeight = 3

	playerControlTop   = 20
	playerControlLeft  = contentLeft
	playerControlWidth = 16
	playerControlPitch = playerControlWidth + 2
)

func menuItemRect(index int) nav.Rect {
	top := float64(menuTop + index*menuItemHeight)
	return nav.Rect{
		Top:    top,
		Left:   0,
		Right:  menuWidth,
		Bottom: top + menuItemHeight,
	}
}

// tileRect positions tile col of shelf row in the home content area.
func tileRect(row, col int) nav.Rect {
	top := float64(shelfTop + row*shelfPitch)
	left := float64(contentLeft + col*tilePitch)
	return nav.Rect{
		Top:    top,
		Left:   left,
		Right:  left + widgets.TileWidth,
		Bottom: top + widgets.TileHeight,
	}
}

// gridTileRect positions tile index in the row-major My List grid.
func gridTileRect(index int) nav.Rect {
	return tileRect(index/gridColumns, index%gridColumns)
}

func modalButtonRect(index int) nav.Rect {
	left := float64(modalLeft + index*modalButtonPitch)
	return nav.Rect{
		Top:    modalTop,
		Left:   left,
		Right:  left + modalButtonWidth,
		Bottom: modalTop + modalButtonHeight,
	}
}

func playerControlRect(index int) nav.Rect {
	left := float64(playerControlLeft + index*playerControlPitch)
	return nav.Rect{
		Top:    playerControlTop,
		Left:   left,
		Right:  left + playerControlWidth,
		Bottom: playerControlTop + modalButtonHeight,
	}
}

func rectFor(r nav.Rect) nav.GeometryFunc {
	return func() nav.Rect { return r }
}
