package arena

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rileyL6122428/rileyL6122428.github.io/internal/entities"
)

type Tile int

const (
	TileFloor Tile = iota
	TileWall
	TileMedkit
	TileSpawn
)

type cell struct{ col, row int }

// Arena is a tile grid stretched over the logical screen. Cells need not
// be square.
type Arena struct {
	Cols, Rows    int
	Width, Height float64
	CellW, CellH  float64
	Tiles         [][]Tile

	spawns  []cell
	medkits []cell
	start   cell
}

func NewDefaultArena(width, height int) *Arena {
	a, err := Parse(defaultLayout, width, height)
	if err != nil {
		panic(err)
	}
	return a
}

// Parse builds an arena from an ASCII layout. Every row must have the same
// length and exactly one 'P' must be present.
func Parse(lines []string, width, height int) (*Arena, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, errors.New("arena: empty layout")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("arena: invalid size %dx%d", width, height)
	}
	rows, cols := len(lines), len(lines[0])
	a := &Arena{
		Cols:   cols,
		Rows:   rows,
		Width:  float64(width),
		Height: float64(height),
		CellW:  float64(width) / float64(cols),
		CellH:  float64(height) / float64(rows),
		Tiles:  make([][]Tile, rows),
	}
	starts := 0
	for y, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("arena: row %d has %d columns, want %d", y, len(line), cols)
		}
		a.Tiles[y] = make([]Tile, cols)
		for x := 0; x < cols; x++ {
			switch line[x] {
			case '#':
				a.Tiles[y][x] = TileWall
			case 'h':
				a.Tiles[y][x] = TileMedkit
				a.medkits = append(a.medkits, cell{x, y})
			case 'S':
				a.Tiles[y][x] = TileSpawn
				a.spawns = append(a.spawns, cell{x, y})
			case 'P':
				a.start = cell{x, y}
				starts++
			default:
				a.Tiles[y][x] = TileFloor
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("arena: want exactly one player start, found %d", starts)
	}
	if len(a.spawns) == 0 {
		return nil, errors.New("arena: no spawn points")
	}
	return a, nil
}

// IsWall treats everything outside the grid as wall.
func (a *Arena) IsWall(col, row int) bool {
	if row < 0 || row >= a.Rows || col < 0 || col >= a.Cols {
		return true
	}
	return a.Tiles[row][col] == TileWall
}

// CellAt returns the grid cell containing a pixel position. Positions off
// the grid map to out-of-range cells.
func (a *Arena) CellAt(p entities.Vec) (int, int) {
	return int(math.Floor(p.X / a.CellW)), int(math.Floor(p.Y / a.CellH))
}

func (a *Arena) CellCenter(col, row int) entities.Vec {
	return entities.Vec{
		X: (float64(col) + 0.5) * a.CellW,
		Y: (float64(row) + 0.5) * a.CellH,
	}
}

// Blocked reports whether a body of the given radius centred at p would
// overlap a wall or leave the arena. The body is treated as its bounding
// square, which is exact enough while radius is under half a cell.
func (a *Arena) Blocked(p entities.Vec, radius float64) bool {
	if p.X-radius < 0 || p.Y-radius < 0 || p.X+radius > a.Width || p.Y+radius > a.Height {
		return true
	}
	for _, c := range [4]entities.Vec{
		{X: p.X - radius, Y: p.Y - radius},
		{X: p.X + radius, Y: p.Y - radius},
		{X: p.X - radius, Y: p.Y + radius},
		{X: p.X + radius, Y: p.Y + radius},
	} {
		if a.IsWall(a.CellAt(c)) {
			return true
		}
	}
	return false
}

// TakeMedkitAt removes the medkit under p, if any, and reports whether one
// was taken.
func (a *Arena) TakeMedkitAt(p entities.Vec) bool {
	col, row := a.CellAt(p)
	if row < 0 || row >= a.Rows || col < 0 || col >= a.Cols {
		return false
	}
	if a.Tiles[row][col] != TileMedkit {
		return false
	}
	a.Tiles[row][col] = TileFloor
	return true
}

// RestockMedkits puts every medkit of the layout back.
func (a *Arena) RestockMedkits() {
	for _, m := range a.medkits {
		a.Tiles[m.row][m.col] = TileMedkit
	}
}

// MedkitsLeft counts medkits currently on the floor.
func (a *Arena) MedkitsLeft() int {
	n := 0
	for _, m := range a.medkits {
		if a.Tiles[m.row][m.col] == TileMedkit {
			n++
		}
	}
	return n
}

// SpawnPoints returns the centres of the spawn tiles in layout order.
func (a *Arena) SpawnPoints() []entities.Vec {
	out := make([]entities.Vec, 0, len(a.spawns))
	for _, s := range a.spawns {
		out = append(out, a.CellCenter(s.col, s.row))
	}
	return out
}

func (a *Arena) PlayerStart() entities.Vec {
	return a.CellCenter(a.start.col, a.start.row)
}

var (
	wallColor   = color.RGBA{R: 58, G: 52, B: 48, A: 255}
	floorColor  = color.RGBA{R: 34, G: 40, B: 30, A: 255}
	spawnColor  = color.RGBA{R: 70, G: 20, B: 20, A: 255}
	medkitColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	crossColor  = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

func (a *Arena) Draw(dst *ebiten.Image) {
	dst.Fill(floorColor)
	cw, ch := float32(a.CellW), float32(a.CellH)
	for y := 0; y < a.Rows; y++ {
		for x := 0; x < a.Cols; x++ {
			px := float32(float64(x) * a.CellW)
			py := float32(float64(y) * a.CellH)
			switch a.Tiles[y][x] {
			case TileWall:
				vector.DrawFilledRect(dst, px, py, cw+1, ch+1, wallColor, false)
			case TileSpawn:
				vector.DrawFilledRect(dst, px+4, py+4, cw-8, ch-8, spawnColor, false)
			case TileMedkit:
				cx, cy := px+cw/2, py+ch/2
				vector.DrawFilledRect(dst, cx-8, cy-8, 16, 16, medkitColor, false)
				vector.DrawFilledRect(dst, cx-6, cy-2, 12, 4, crossColor, false)
				vector.DrawFilledRect(dst, cx-2, cy-6, 4, 12, crossColor, false)
			}
		}
	}
}
