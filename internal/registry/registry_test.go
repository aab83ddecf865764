package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/pokedex/internal/catalog"
	"github.com/jask/pokedex/internal/pokedex"
)

func fill(t *testing.T, names ...string) (*Registry, []*Owner) {
	t.Helper()
	r := New()
	owners := make([]*Owner, 0, len(names))
	for _, name := range names {
		o := NewOwner(name)
		require.NoError(t, r.Append(o))
		owners = append(owners, o)
	}
	require.NoError(t, r.Validate())
	return r, owners
}

func TestAppendBuildsRing(t *testing.T) {
	t.Parallel()

	r := New()
	require.True(t, r.Empty())
	require.Nil(t, r.Head())

	ash := NewOwner("Ash")
	require.NoError(t, r.Append(ash))
	require.Same(t, ash, r.Head())
	require.Same(t, ash, r.Next(ash))
	require.Same(t, ash, r.Prev(ash))

	brock := NewOwner("Brock")
	require.NoError(t, r.Append(brock))
	misty := NewOwner("Misty")
	require.NoError(t, r.Append(misty))

	require.Equal(t, []string{"Ash", "Brock", "Misty"}, r.Names())
	require.Same(t, misty, r.Prev(ash))
	require.Same(t, ash, r.Next(misty))
	require.Equal(t, 3, r.Len())
	require.NoError(t, r.Validate())
	require.NotEqual(t, ash.ID, brock.ID)
}

func TestAppendRejects(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash")
	require.ErrorIs(t, r.Append(NewOwner("Ash")), ErrDuplicateName)
	require.ErrorIs(t, r.Append(NewOwner("  ")), ErrEmptyName)
	require.Error(t, r.Append(owners[0]))
	require.NoError(t, r.Append(NewOwner("ash")), "names are case-sensitive")
	require.Equal(t, 2, r.Len())
}

func TestRemoveOnlyOwner(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash")
	_, err := r.Remove(owners[0])
	require.NoError(t, err)
	require.True(t, r.Empty())
	require.Nil(t, r.Head())
	require.Zero(t, r.Len())
	require.False(t, owners[0].Linked())
	require.NoError(t, r.Validate())
}

func TestRemoveHead(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash", "Brock", "Misty", "Gary")
	_, err := r.Remove(owners[0])
	require.NoError(t, err)
	require.Same(t, owners[1], r.Head())
	require.Equal(t, []string{"Brock", "Misty", "Gary"}, r.Names())
	require.Same(t, owners[3], r.Prev(owners[1]))
	require.NoError(t, r.Validate())
}

func TestRemoveMiddleAndReuseSlot(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash", "Brock", "Misty")
	_, err := r.Remove(owners[1])
	require.NoError(t, err)
	require.Equal(t, []string{"Ash", "Misty"}, r.Names())

	_, err = r.Remove(owners[1])
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Append(NewOwner("Erika")))
	require.Equal(t, []string{"Ash", "Misty", "Erika"}, r.Names())
	require.Len(t, r.slots, 3)
	require.NoError(t, r.Validate())
}

func TestRemoveReleasesCollection(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash")
	cat := catalog.Default()
	for _, id := range []int{1, 4, 7} {
		e, err := cat.Lookup(id)
		require.NoError(t, err)
		require.NoError(t, owners[0].Dex.Insert(pokedex.Borrow(e)))
	}
	stats, err := r.Remove(owners[0])
	require.NoError(t, err)
	require.Equal(t, 3, stats.Nodes)
	require.True(t, owners[0].Dex.Empty())
	require.Empty(t, owners[0].Name)
}

func TestFindByName(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash", "Brock", "Misty")
	require.Same(t, owners[2], r.FindByName("Misty"))
	require.Nil(t, r.FindByName("misty"))
	require.Nil(t, New().FindByName("Ash"))
}

func TestAt(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash", "Brock", "Misty")
	for i, want := range owners {
		got, err := r.At(i + 1)
		require.NoError(t, err)
		require.Same(t, want, got)
	}
	_, err := r.At(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.At(4)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestWalkWraps(t *testing.T) {
	t.Parallel()

	r, _ := fill(t, "Ash", "Brock", "Misty")
	names := func(os []*Owner) []string {
		out := make([]string, len(os))
		for i, o := range os {
			out[i] = o.Name
		}
		return out
	}
	require.Equal(t, []string{"Ash", "Brock", "Misty", "Ash", "Brock"}, names(r.Walk(Forward, 5)))
	require.Equal(t, []string{"Ash", "Misty", "Brock", "Ash"}, names(r.Walk(Backward, 4)))
	require.Empty(t, r.Walk(Forward, 0))
	require.Empty(t, New().Walk(Forward, 3))
}

func TestSortByName(t *testing.T) {
	t.Parallel()

	r, _ := fill(t, "Ash", "Brock", "Misty")
	r.SortByName()
	require.Equal(t, []string{"Ash", "Brock", "Misty"}, r.Names())

	r, owners := fill(t, "Misty", "ash", "Gary", "Brock", "Ash")
	misty := owners[0]
	e, err := catalog.Default().Lookup(120)
	require.NoError(t, err)
	require.NoError(t, misty.Dex.Insert(pokedex.Borrow(e)))

	r.SortByName()
	require.Equal(t, []string{"Ash", "Brock", "Gary", "Misty", "ash"}, r.Names())
	require.NoError(t, r.Validate())

	found := r.FindByName("Misty")
	require.Same(t, misty, found)
	require.True(t, found.Dex.Contains(120))
}

func TestSortDegenerate(t *testing.T) {
	t.Parallel()

	r := New()
	r.SortByName()
	require.True(t, r.Empty())

	r, _ = fill(t, "Solo")
	r.SortByName()
	require.Equal(t, []string{"Solo"}, r.Names())
}

func TestClear(t *testing.T) {
	t.Parallel()

	r, owners := fill(t, "Ash", "Brock")
	e, err := catalog.Default().Lookup(1)
	require.NoError(t, err)
	require.NoError(t, owners[1].Dex.Insert(pokedex.Borrow(e)))

	stats := r.Clear()
	require.Equal(t, 1, stats.Nodes)
	require.True(t, r.Empty())
	require.NoError(t, r.Validate())
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"F", "f", " f "} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		require.Equal(t, Forward, d)
	}
	for _, s := range []string{"B", "b"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		require.Equal(t, Backward, d)
	}
	_, err := ParseDirection("x")
	require.Error(t, err)
}
