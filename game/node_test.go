package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestNodeBottom(t *testing.T) {
	is := is.New(t)

	root := NewRoot(NewTile(1, 2))
	is.Equal(2, root.Bottom())

	root.Orientation = Inverted
	is.Equal(1, root.Bottom())
}

func TestAddChildOrientation(t *testing.T) {
	is := is.New(t)

	root := NewRoot(NewTile(9, 9))

	// bottom 9 matches the child's A end: normal
	child, err := root.AddChild(NewTile(9, 3))
	is.NoErr(err)
	is.Equal(Normal, child.Orientation)
	is.Equal(3, child.Bottom())

	// bottom 9 matches the child's B end: inverted
	child, err = root.AddChild(NewTile(4, 9))
	is.NoErr(err)
	is.Equal(Inverted, child.Orientation)
	is.Equal(4, child.Bottom())
}

func TestAddChildCapacity(t *testing.T) {
	is := is.New(t)

	root := NewRoot(NewTile(9, 9))
	for i := 1; i <= 4; i++ {
		_, err := root.AddChild(NewTile(9, i))
		is.NoErr(err)
	}
	is.Equal(4, len(root.Children))

	_, err := root.AddChild(NewTile(9, 5))
	is.True(errors.Is(err, ErrNodeFull))
	is.Equal(4, len(root.Children))
}

func TestAddChildMismatch(t *testing.T) {
	is := is.New(t)

	root := NewRoot(NewTile(9, 9))
	_, err := root.AddChild(NewTile(1, 2))
	is.True(errors.Is(err, ErrTileMismatch))
	is.Equal(0, len(root.Children))
}

func TestAddChildDoubleCapacity(t *testing.T) {
	is := is.New(t)

	root := NewRoot(NewTile(9, 9))
	arm, err := root.AddChild(NewTile(9, 4))
	is.NoErr(err)
	is.Equal(1, arm.MaxChildren)

	chickie, err := arm.AddChild(NewTile(4, 4))
	is.NoErr(err)
	is.Equal(3, chickie.MaxChildren)
}

func TestLeaves(t *testing.T) {
	is := is.New(t)

	root := NewRoot(NewTile(9, 9))
	is.Equal([]*Node{root}, root.Leaves())

	first, err := root.AddChild(NewTile(9, 1))
	is.NoErr(err)
	second, err := root.AddChild(NewTile(9, 2))
	is.NoErr(err)

	grandFirst, err := first.AddChild(NewTile(1, 0))
	is.NoErr(err)
	grandSecond, err := second.AddChild(NewTile(2, 3))
	is.NoErr(err)

	// discovery order is depth-first, left to right
	is.Equal([]*Node{grandFirst, grandSecond}, root.Leaves())
}

func TestFindAttachPosition(t *testing.T) {
	is := is.New(t)

	root := NewRoot(NewTile(9, 9))
	first, err := root.AddChild(NewTile(9, 1))
	is.NoErr(err)
	second, err := root.AddChild(NewTile(9, 2))
	is.NoErr(err)

	// both leaves match an end of (1,2); the first in DFS order wins
	node, err := root.FindAttachPosition(NewTile(1, 2))
	is.NoErr(err)
	is.Equal(first, node)

	node, err = root.FindAttachPosition(NewTile(2, 5))
	is.NoErr(err)
	is.Equal(second, node)

	_, err = root.FindAttachPosition(NewTile(7, 8))
	is.True(errors.Is(err, ErrNoAttachPosition))
}

func TestRootConventions(t *testing.T) {
	is := is.New(t)

	// the root takes four children and is normal even for a non-double
	root := NewRoot(NewTile(1, 2))
	is.Equal(4, root.MaxChildren)
	is.Equal(Normal, root.Orientation)
}
