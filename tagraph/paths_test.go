package tagraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tanta-nta/tanta/tagraph"
)

func joined(paths [][]string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		s := ""
		for i, loc := range p {
			if i > 0 {
				s += ">"
			}
			s += loc
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func TestAllSimplePaths_Linear(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"A", "B", "C"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("A", "B", 1))
	require.NoError(t, g.AddTransition("B", "C", 2))

	paths, err := g.AllSimplePaths("A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A>B>C"}, joined(paths))
}

func TestAllSimplePaths_SourceEqualsTargetTrivial(t *testing.T) {
	g := tagraph.NewGraph()
	_, err := g.AddLocation("A")
	require.NoError(t, err)

	paths, err := g.AllSimplePaths("A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, joined(paths))
}

func TestAllSimplePaths_SelfLoopDoesNotAddCyclicPath(t *testing.T) {
	g := tagraph.NewGraph()
	_, err := g.AddLocation("A")
	require.NoError(t, err)
	require.NoError(t, g.AddTransition("A", "A", 1))

	paths, err := g.AllSimplePaths("A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, joined(paths), "a walk that returns to its start repeats a vertex")
}

func TestAllSimplePaths_CycleThroughIntermediateNotReturned(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"A", "B"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("A", "B", 1))
	require.NoError(t, g.AddTransition("B", "A", 2))

	paths, err := g.AllSimplePaths("A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, joined(paths))
}

func TestAllSimplePaths_ParallelTransitionsDeduped(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"A", "B"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("A", "B", 1))
	require.NoError(t, g.AddTransition("A", "B", 2))

	paths, err := g.AllSimplePaths("A", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"A>B"}, joined(paths))
}

func TestAllSimplePaths_NoPath(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"A", "B"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}

	paths, err := g.AllSimplePaths("A", "B")
	require.NoError(t, err)
	require.Empty(t, paths)

	reachable, err := g.IsReachable("A", "B")
	require.NoError(t, err)
	require.False(t, reachable)
}

func TestAllSimplePaths_MemoizationInvalidatedOnMutation(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"A", "B"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}

	paths, err := g.AllSimplePaths("A", "B")
	require.NoError(t, err)
	require.Empty(t, paths)

	require.NoError(t, g.AddTransition("A", "B", 1))

	paths, err = g.AllSimplePaths("A", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"A>B"}, joined(paths))
}

func TestAllSimplePaths_UnknownLocation(t *testing.T) {
	g := tagraph.NewGraph()
	_, err := g.AddLocation("A")
	require.NoError(t, err)

	_, err = g.AllSimplePaths("A", "Ghost")
	require.ErrorIs(t, err, tagraph.ErrLocationNotFound)
}

func TestAllSimplePaths_ReturnedSliceIsACopy(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"A", "B"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("A", "B", 1))

	first, err := g.AllSimplePaths("A", "B")
	require.NoError(t, err)
	first[0][0] = "MUTATED"

	second, err := g.AllSimplePaths("A", "B")
	require.NoError(t, err)
	require.Equal(t, "A", second[0][0])
}
