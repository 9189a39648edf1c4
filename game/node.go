package game

import (
	"errors"
	"fmt"
)

// Orientation records which way a played tile faces. Normal means the tile's
// A end faces the root of the tree; Inverted means the B end does.
type Orientation int

const (
	Normal Orientation = iota
	Inverted
)

func (o Orientation) String() string {
	if o == Inverted {
		return "inverted"
	}
	return "normal"
}

var (
	// ErrNodeFull is returned by AddChild when the node already has its
	// maximum number of children.
	ErrNodeFull = errors.New("node is full")
	// ErrTileMismatch is returned by AddChild when neither end of the tile
	// matches the node's open end.
	ErrTileMismatch = errors.New("tile does not match open end")
	// ErrNoAttachPosition is returned by FindAttachPosition when no leaf
	// can take the tile.
	ErrNoAttachPosition = errors.New("no attach position for tile")
)

// Node is one tile on the playing field. It owns the tile, its orientation,
// and the child nodes attached below it. The tree is append-only: nodes are
// created by AddChild and never removed for the life of a round.
type Node struct {
	Tile        *Tile
	Orientation Orientation
	MaxChildren int
	Children    []*Node
}

// NewRoot wraps the starting double in a node with the root conventions:
// branching factor 4 and Normal orientation, whatever the tile.
func NewRoot(tile *Tile) *Node {
	return &Node{Tile: tile, MaxChildren: 4, Orientation: Normal}
}

// Bottom is the pip count on the side away from the root, i.e. the open end
// other tiles can attach to.
func (n *Node) Bottom() int {
	if n.Orientation == Normal {
		return n.Tile.B
	}
	return n.Tile.A
}

// AddChild creates a node for the tile and attaches it under n. The child's
// capacity is 1 for a regular tile and 3 for a double; its orientation is
// Normal if n's bottom matches the tile's A end, Inverted otherwise.
func (n *Node) AddChild(tile *Tile) (*Node, error) {
	if len(n.Children) == n.MaxChildren {
		return nil, ErrNodeFull
	}
	if !tile.HasEnd(n.Bottom()) {
		return nil, fmt.Errorf("%w: %s against %d", ErrTileMismatch, tile, n.Bottom())
	}
	child := &Node{Tile: tile, MaxChildren: 1}
	if tile.IsDouble() {
		child.MaxChildren = 3
	}
	if n.Bottom() == tile.A {
		child.Orientation = Normal
	} else {
		child.Orientation = Inverted
	}
	n.Children = append(n.Children, child)
	return child, nil
}

// Leaves returns every childless node under n in depth-first, left-to-right
// order. A tree of just the root yields the root itself.
func (n *Node) Leaves() []*Node {
	if len(n.Children) == 0 {
		return []*Node{n}
	}
	var leaves []*Node
	for _, child := range n.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// FindAttachPosition returns the first leaf, in depth-first order, whose
// open end matches either end of the tile. Callers must not rely on any
// ordering beyond first-discovered.
func (n *Node) FindAttachPosition(tile *Tile) (*Node, error) {
	for _, leaf := range n.Leaves() {
		if tile.HasEnd(leaf.Bottom()) {
			return leaf, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoAttachPosition, tile)
}
