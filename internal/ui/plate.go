package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/pizza/internal/pizza"
)

// Plate draws the plate, the bread disc and the topping placements on a
// character grid. One column covers unitsPerCell layout units and one row
// covers CellAspect times that, since terminal cells are about twice as
// tall as they are wide.
type Plate struct {
	unitsPerCell float64
	snap         pizza.Snapshot
}

// NewPlate creates a plate with the given scale. Non-positive values use
// DefaultUnitsPerCell.
func NewPlate(unitsPerCell float64) *Plate {
	if unitsPerCell <= 0 {
		unitsPerCell = DefaultUnitsPerCell
	}
	return &Plate{unitsPerCell: unitsPerCell}
}

// SetSnapshot sets what the plate draws
func (p *Plate) SetSnapshot(snap pizza.Snapshot) {
	p.snap = snap
}

// UnitsPerCell returns the horizontal scale
func (p *Plate) UnitsPerCell() float64 {
	return p.unitsPerCell
}

func (p *Plate) unitsPerRow() float64 {
	return p.unitsPerCell * CellAspect
}

// Dimensions returns the grid size in columns and rows
func (p *Plate) Dimensions() (cols, rows int) {
	w := float64(p.plateWidth())
	return int(math.Ceil(w / p.unitsPerCell)), int(math.Ceil(w / p.unitsPerRow()))
}

func (p *Plate) plateWidth() int {
	if p.snap.PlateWidth > 0 {
		return p.snap.PlateWidth
	}
	return pizza.PlateWidth
}

// Cell projects an offset from the plate center onto the grid
func (p *Plate) Cell(off pizza.Offset) (col, row int) {
	half := float64(p.plateWidth()) / 2
	col = int(math.Floor((float64(off.X) + half) / p.unitsPerCell))
	row = int(math.Floor((float64(off.Y) + half) / p.unitsPerRow()))
	return col, row
}

type plateCell struct {
	glyph string
	style lipgloss.Style
}

// View renders the grid
func (p *Plate) View() string {
	cols, rows := p.Dimensions()
	half := float64(p.plateWidth()) / 2
	breadRadius := float64(p.snap.BreadWidth) / 2
	bread := BreadStyle(p.snap.Variant.ID)
	blank := plateCell{glyph: " ", style: lipgloss.NewStyle()}

	grid := make([][]plateCell, rows)
	for r := range grid {
		grid[r] = make([]plateCell, cols)
		y := (float64(r)+0.5)*p.unitsPerRow() - half
		for c := range grid[r] {
			x := (float64(c)+0.5)*p.unitsPerCell - half
			switch d := math.Hypot(x, y); {
			case d <= breadRadius:
				grid[r][c] = plateCell{glyph: IconBread, style: bread}
			case d <= half:
				grid[r][c] = plateCell{glyph: IconPlate, style: PlateStyle}
			default:
				grid[r][c] = blank
			}
		}
	}

	for _, pl := range p.snap.Placements {
		c, r := p.Cell(pl.Offset)
		if r < 0 || r >= rows || c < 0 || c >= cols {
			continue
		}
		grid[r][c] = plateCell{glyph: ToppingGlyph(pl.Category), style: ToppingStyle(pl.Category)}
	}

	lines := make([]string, rows)
	for r, row := range grid {
		var b strings.Builder
		for _, cell := range row {
			b.WriteString(cell.style.Render(cell.glyph))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}
