package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(pairs ...[2]int) []Coordinate {
	out := make([]Coordinate, len(pairs))
	for i, p := range pairs {
		out[i] = Coordinate{X: p[0], Y: p[1]}
	}
	return out
}

func TestZLeftCells(t *testing.T) {
	p := Piece{Kind: KindZ, Rotation: RotLeft, Position: Offset{X: 5, Y: 6}}

	cells, ok := p.Cells()
	require.True(t, ok)
	assert.ElementsMatch(t, coords([2]int{5, 6}, [2]int{5, 7}, [2]int{6, 7}, [2]int{6, 8}), cells[:])
}

func TestRotatedShapes(t *testing.T) {
	tests := []struct {
		kind Kind
		rot  Rotation
		want []Coordinate
	}{
		{KindT, RotRight, coords([2]int{1, 2}, [2]int{1, 1}, [2]int{1, 0}, [2]int{2, 1})},
		{KindT, RotFlip, coords([2]int{2, 1}, [2]int{1, 1}, [2]int{0, 1}, [2]int{1, 0})},
		{KindT, RotLeft, coords([2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2}, [2]int{0, 1})},
		{KindI, RotRight, coords([2]int{2, 3}, [2]int{2, 2}, [2]int{2, 1}, [2]int{2, 0})},
		{KindI, RotFlip, coords([2]int{3, 1}, [2]int{2, 1}, [2]int{1, 1}, [2]int{0, 1})},
		{KindS, RotSpawn, coords([2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 2})},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.kind, tt.rot), func(t *testing.T) {
			p := Piece{Kind: tt.kind, Rotation: tt.rot}
			cells, ok := p.Cells()
			require.True(t, ok)
			assert.ElementsMatch(t, tt.want, cells[:])
		})
	}
}

func TestAllOrientationsStayInGrid(t *testing.T) {
	for _, k := range AllKinds {
		for r := RotSpawn; r <= RotLeft; r++ {
			p := Piece{Kind: k, Rotation: r, Position: Offset{X: 3, Y: 8}}
			cells, ok := p.Cells()
			if !ok {
				t.Errorf("%s/%s at (3,8) should be on the matrix", k, r)
				continue
			}

			seen := make(map[Coordinate]bool, CellCount)
			for _, c := range cells {
				seen[c] = true
				if c.X < 3 || c.X >= 3+k.GridSize() || c.Y < 8 || c.Y >= 8+k.GridSize() {
					t.Errorf("%s/%s cell (%d,%d) left its local grid", k, r, c.X, c.Y)
				}
			}
			if len(seen) != CellCount {
				t.Errorf("%s/%s has %d distinct cells, want %d", k, r, len(seen), CellCount)
			}
		}
	}
}

func TestOPieceIgnoresRotation(t *testing.T) {
	base := Piece{Kind: KindO, Position: Offset{X: 2, Y: 2}}
	want := base.Offsets()
	for r := RotSpawn; r <= RotLeft; r++ {
		p := base
		p.Rotation = r
		assert.Equal(t, want, p.Offsets(), "rotation %s", r)
	}
}

func TestFourTurnsRestoreShape(t *testing.T) {
	for _, k := range AllKinds {
		p := Piece{Kind: k, Position: Offset{X: 4, Y: 4}}
		q := p
		for i := 0; i < 4; i++ {
			q = q.Rotated(Clockwise)
		}
		assert.Equal(t, p, q, "kind %s", k)
		assert.Equal(t, p, p.Rotated(Clockwise).Rotated(CounterClockwise), "kind %s", k)
	}
}

func TestCellsRejectsOffBoard(t *testing.T) {
	tests := []struct {
		name string
		p    Piece
	}{
		{"left wall", Piece{Kind: KindI, Position: Offset{X: -1, Y: 5}}},
		{"right wall", Piece{Kind: KindI, Position: Offset{X: Width - 3, Y: 5}}},
		{"floor", Piece{Kind: KindT, Position: Offset{X: 3, Y: -2}}},
		{"ceiling", Piece{Kind: KindI, Position: Offset{X: 3, Y: Height - 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, ok := tt.p.Cells()
			assert.False(t, ok)
			assert.Equal(t, [CellCount]Coordinate{}, cells)
		})
	}
}

func TestSpawnPieceInTopRows(t *testing.T) {
	for _, k := range AllKinds {
		cells, ok := SpawnPiece(k).Cells()
		require.True(t, ok, "kind %s", k)
		for _, c := range cells {
			assert.GreaterOrEqual(t, c.Y, Height-2, "kind %s", k)
			assert.True(t, c.X >= 3 && c.X <= 6, "kind %s column %d", k, c.X)
		}
	}
}

func TestKindMetadata(t *testing.T) {
	colors := make(map[string]bool)
	for _, k := range AllKinds {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, k.Color())
		colors[k.Color()] = true
	}
	assert.Len(t, colors, len(AllKinds))
	assert.Equal(t, "Z", KindZ.String())
	assert.Equal(t, RotLeft, RotSpawn.Turn(CounterClockwise))
}
