package runner

import (
	"math"
	"sort"

	"github.com/vovakirdan/chromadash/internal/core"
)

// Coin is a collectible owned by a floor tile.
type Coin struct {
	Pos       core.Vec2
	TileID    int
	Collected bool
}

// FloorTile is one slot of the tile pool. Tiles are created once and
// relocated afterwards; ID is the stable slot index.
type FloorTile struct {
	core.Box
	ID     int
	Color  Color
	Active bool
	Seq    int   // Spawn order, increases on every placement
	Coin   *Coin // nil when the tile has no coin
}

// TilePool is a fixed set of tiles with an index sorted by center x.
type TilePool struct {
	tiles  []*FloorTile
	sorted []*FloorTile
}

// NewTilePool creates n inactive tiles of the given size.
func NewTilePool(n int, w, h float64) *TilePool {
	p := &TilePool{
		tiles:  make([]*FloorTile, n),
		sorted: make([]*FloorTile, n),
	}
	for i := range p.tiles {
		t := &FloorTile{ID: i, Box: core.Box{W: w, H: h}}
		p.tiles[i] = t
		p.sorted[i] = t
	}
	return p
}

// Len returns the pool size.
func (p *TilePool) Len() int {
	return len(p.tiles)
}

// Get returns the tile in slot id, or nil.
func (p *TilePool) Get(id int) *FloorTile {
	if id < 0 || id >= len(p.tiles) {
		return nil
	}
	return p.tiles[id]
}

// Tiles returns the tiles in slot order. The slice must not be modified.
func (p *TilePool) Tiles() []*FloorTile {
	return p.tiles
}

// Sorted returns the tiles ordered by center x. The slice must not be
// modified and is invalidated by Move.
func (p *TilePool) Sorted() []*FloorTile {
	return p.sorted
}

// Move relocates a tile and keeps the index sorted.
func (p *TilePool) Move(id int, center core.Vec2) {
	t := p.tiles[id]
	t.Center = center
	t.Active = true

	i := p.indexOf(t)
	// Bubble the tile to its new place; only one element is out of order.
	for i > 0 && p.sorted[i-1].Center.X > t.Center.X {
		p.sorted[i], p.sorted[i-1] = p.sorted[i-1], p.sorted[i]
		i--
	}
	for i < len(p.sorted)-1 && p.sorted[i+1].Center.X < t.Center.X {
		p.sorted[i], p.sorted[i+1] = p.sorted[i+1], p.sorted[i]
		i++
	}
}

func (p *TilePool) indexOf(t *FloorTile) int {
	for i, s := range p.sorted {
		if s == t {
			return i
		}
	}
	return -1
}

// Neighbors returns the active tiles closest to x on each side,
// ignoring the tile with id exclude. Either result may be nil.
func (p *TilePool) Neighbors(x float64, exclude int) (prev, next *FloorTile) {
	i := sort.Search(len(p.sorted), func(i int) bool {
		return p.sorted[i].Center.X >= x
	})
	for j := i - 1; j >= 0; j-- {
		if t := p.sorted[j]; t.Active && t.ID != exclude {
			prev = t
			break
		}
	}
	for j := i; j < len(p.sorted); j++ {
		if t := p.sorted[j]; t.Active && t.ID != exclude {
			next = t
			break
		}
	}
	return prev, next
}

// Clear reports whether a tile centered at x keeps at least minDist
// from every other active tile.
func (p *TilePool) Clear(x, minDist float64, exclude int) bool {
	prev, next := p.Neighbors(x, exclude)
	if prev != nil && x-prev.Center.X < minDist {
		return false
	}
	if next != nil && next.Center.X-x < minDist {
		return false
	}
	return true
}

// Frontier returns the largest center x among active tiles.
func (p *TilePool) Frontier() float64 {
	for i := len(p.sorted) - 1; i >= 0; i-- {
		if p.sorted[i].Active {
			return p.sorted[i].Center.X
		}
	}
	return math.Inf(-1)
}

// MinSpacing returns the smallest center distance between adjacent
// active tiles, or +Inf with fewer than two.
func (p *TilePool) MinSpacing() float64 {
	min := math.Inf(1)
	var last *FloorTile
	for _, t := range p.sorted {
		if !t.Active {
			continue
		}
		if last != nil {
			min = math.Min(min, t.Center.X-last.Center.X)
		}
		last = t
	}
	return min
}
