package typedesc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrapkit/wrapkit/wrap"
)

func TestCast_DirectBase(t *testing.T) {
	b1 := New("B1")
	b2 := New("B2")
	c := New("C", Base{Type: b1}, Base{Type: b2, Offset: 16})

	require.Equal(t, wrap.Addr(0x5000), c.Cast(0x5000, b1))
	require.Equal(t, wrap.Addr(0x5010), c.Cast(0x5000, b2))
	require.Equal(t, wrap.Addr(0x5000), c.Cast(0x5000, c))
}

func TestCast_TransitiveOffsetsAccumulate(t *testing.T) {
	x := New("X")
	y := New("Y")
	m := New("M", Base{Type: x}, Base{Type: y, Offset: 8})
	d := New("D", Base{Type: New("B")}, Base{Type: m, Offset: 16})

	// D -> M is +16, M -> Y is +8.
	require.Equal(t, wrap.Addr(0x5010), d.Cast(0x5000, m))
	require.Equal(t, wrap.Addr(0x5018), d.Cast(0x5000, y))
	require.Equal(t, wrap.Addr(0x5010), d.Cast(0x5000, x))
}

func TestCast_DiamondUsesFirstPath(t *testing.T) {
	root := New("Root")
	left := New("Left", Base{Type: root})
	right := New("Right", Base{Type: root}) // its Root sub-object is displaced in D
	d := New("D", Base{Type: left}, Base{Type: right, Offset: 32})

	// Both paths reach Root; the declaration-order path through Left wins.
	require.Equal(t, wrap.Addr(0x5000), d.Cast(0x5000, root))
}

func TestCast_UnrelatedTargetIsIdentity(t *testing.T) {
	a := New("A")
	b := New("B")
	require.Equal(t, wrap.Addr(0x5000), a.Cast(0x5000, b))
}

func TestNew_RejectsDisplacedFirstBase(t *testing.T) {
	b := New("B")
	require.PanicsWithValue(t, "typedesc: first base of C must be at offset 0", func() {
		New("C", Base{Type: b, Offset: 8})
	})
}

func TestDerivesFrom(t *testing.T) {
	root := New("Root")
	mid := New("Mid", Base{Type: root})
	leaf := New("Leaf", Base{Type: mid})
	other := New("Other")

	require.True(t, leaf.DerivesFrom(leaf))
	require.True(t, leaf.DerivesFrom(mid))
	require.True(t, leaf.DerivesFrom(root))
	require.False(t, leaf.DerivesFrom(other))
	require.False(t, root.DerivesFrom(leaf))
}

func TestSupers_DeclarationOrder(t *testing.T) {
	b1 := New("B1")
	b2 := New("B2")
	c := New("C", Base{Type: b1}, Base{Type: b2, Offset: 16})

	supers := c.Supers()
	require.Len(t, supers, 2)
	require.Same(t, b1, supers[0])
	require.Same(t, b2, supers[1])
}

func TestRegistry_DefineAndLookup(t *testing.T) {
	r := NewRegistry()
	widget := New("Widget")

	require.NoError(t, r.Define(widget))
	require.Same(t, widget, r.Lookup("Widget"))
	require.Nil(t, r.Lookup("Gadget"))
	require.Equal(t, 1, r.Len())

	err := r.Define(New("Widget"))
	require.ErrorIs(t, err, ErrDuplicateType)
}

func TestRegistry_LookupNative(t *testing.T) {
	r := NewRegistry()
	// Latin-1 0xC9 is 'É'; the trailing NUL and garbage are cut off.
	widget := New("Épée")
	require.NoError(t, r.Define(widget))

	raw := []byte{0xC9, 'p', 0xE9, 'e', 0x00, 'x', 'x'}
	got, err := r.LookupNative(raw)
	require.NoError(t, err)
	require.Same(t, widget, got)

	_, err = r.LookupNative([]byte("Missing\x00"))
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodeName_Latin1(t *testing.T) {
	name, err := DecodeName([]byte{'Q', 0xDC, 'b', 0x00})
	require.NoError(t, err)
	require.Equal(t, "QÜb", name)

	// No terminator: the whole slice is the name.
	name, err = DecodeName([]byte("Plain"))
	require.NoError(t, err)
	require.Equal(t, "Plain", name)
}
