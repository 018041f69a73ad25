package game

import "fmt"

// CellCount is the number of cells in every piece.
const CellCount = 4

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindO Kind = iota
	KindI
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// AllKinds lists every kind in canonical order.
var AllKinds = [7]Kind{KindO, KindI, KindT, KindL, KindJ, KindS, KindZ}

var kindNames = [...]string{"O", "I", "T", "L", "J", "S", "Z"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// shapes holds the spawn-orientation cells of each kind on its local grid.
var shapes = [7][CellCount]Offset{
	KindO: {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	KindI: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
	KindT: {{0, 1}, {1, 1}, {2, 1}, {1, 2}},
	KindL: {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
	KindJ: {{0, 2}, {0, 1}, {1, 1}, {2, 1}},
	KindS: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
	KindZ: {{0, 2}, {1, 2}, {1, 1}, {2, 1}},
}

// colors are the display colors of each kind, as hex strings.
var colors = [7]string{
	KindO: "#f0f000",
	KindI: "#00f0f0",
	KindT: "#a000f0",
	KindL: "#f0a000",
	KindJ: "#0050f0",
	KindS: "#00f000",
	KindZ: "#f00000",
}

// Cells returns the canonical local-grid offsets of the kind.
func (k Kind) Cells() [CellCount]Offset {
	return shapes[k]
}

// Color returns the display color of the kind as a "#rrggbb" string.
func (k Kind) Color() string {
	return colors[k]
}

// GridSize is the side of the square local grid the shape rotates in.
func (k Kind) GridSize() int {
	switch k {
	case KindI, KindO:
		return 4
	default:
		return 3
	}
}

// Rotation is one of the four orientations of a piece.
type Rotation int

const (
	RotSpawn Rotation = iota
	RotRight
	RotFlip
	RotLeft
)

var rotationNames = [...]string{"spawn", "right", "flip", "left"}

func (r Rotation) String() string {
	return rotationNames[r&3]
}

// Turn returns the orientation reached by spinning once in the given direction.
func (r Rotation) Turn(s Spin) Rotation {
	if s == Clockwise {
		return (r + 1) & 3
	}
	return (r + 3) & 3
}

// transform applies the linear part of the rotation to a local offset.
func (r Rotation) transform(o Offset) Offset {
	switch r {
	case RotRight:
		return Offset{X: o.Y, Y: -o.X}
	case RotFlip:
		return Offset{X: -o.X, Y: -o.Y}
	case RotLeft:
		return Offset{X: -o.Y, Y: o.X}
	default:
		return o
	}
}

// intrinsic re-anchors a rotated shape inside its local grid. Each entry is
// the orientation's unit offset scaled by (grid size - 1). O never rotates.
var intrinsic = [7][4]Offset{
	KindO: {},
	KindI: {RotSpawn: {0, 0}, RotRight: {0, 3}, RotFlip: {3, 3}, RotLeft: {3, 0}},
	KindT: {RotSpawn: {0, 0}, RotRight: {0, 2}, RotFlip: {2, 2}, RotLeft: {2, 0}},
	KindL: {RotSpawn: {0, 0}, RotRight: {0, 2}, RotFlip: {2, 2}, RotLeft: {2, 0}},
	KindJ: {RotSpawn: {0, 0}, RotRight: {0, 2}, RotFlip: {2, 2}, RotLeft: {2, 0}},
	KindS: {RotSpawn: {0, 0}, RotRight: {0, 2}, RotFlip: {2, 2}, RotLeft: {2, 0}},
	KindZ: {RotSpawn: {0, 0}, RotRight: {0, 2}, RotFlip: {2, 2}, RotLeft: {2, 0}},
}

// Piece is a placed instance of a kind: shape, orientation and the absolute
// position of its local grid's origin.
type Piece struct {
	Kind     Kind     `json:"kind"`
	Rotation Rotation `json:"rotation"`
	Position Offset   `json:"position"`
}

// SpawnPiece returns a piece of kind k in spawn orientation, centred
// horizontally with its cells in the top two rows.
func SpawnPiece(k Kind) Piece {
	return Piece{
		Kind:     k,
		Rotation: RotSpawn,
		Position: Offset{X: (Width - k.GridSize()) / 2, Y: Height - 3},
	}
}

// Offsets returns the absolute, unchecked positions of the piece's cells.
func (p Piece) Offsets() [CellCount]Offset {
	cells := p.Kind.Cells()
	if p.Kind != KindO && p.Rotation != RotSpawn {
		shift := intrinsic[p.Kind][p.Rotation]
		for i, c := range cells {
			cells[i] = p.Rotation.transform(c).Add(shift)
		}
	}
	for i, c := range cells {
		cells[i] = c.Add(p.Position)
	}
	return cells
}

// Cells returns the matrix coordinates the piece occupies. The second result
// is false if any cell lies outside the matrix; no partial result is given.
func (p Piece) Cells() ([CellCount]Coordinate, bool) {
	var out [CellCount]Coordinate
	for i, o := range p.Offsets() {
		c := Coordinate{X: o.X, Y: o.Y}
		if !c.InBounds() {
			return [CellCount]Coordinate{}, false
		}
		out[i] = c
	}
	return out, true
}

// Shifted returns a copy of the piece moved by d.
func (p Piece) Shifted(d Offset) Piece {
	p.Position = p.Position.Add(d)
	return p
}

// Rotated returns a copy of the piece turned once in direction s.
func (p Piece) Rotated(s Spin) Piece {
	p.Rotation = p.Rotation.Turn(s)
	return p
}
