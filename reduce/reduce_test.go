package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tanta-nta/tanta/reduce"
	"github.com/tanta-nta/tanta/tagraph"
	"github.com/tanta-nta/tanta/tclock"
)

// linearGraph builds LocationZero -> A -> B -> C, each edge id 0,1,2.
func linearGraph(t *testing.T) (*tagraph.Graph, map[string]tagraph.Transition) {
	t.Helper()
	g := tagraph.NewGraph()
	for _, l := range []string{"LocationZero", "A", "B", "C"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("LocationZero", "A", 0))
	require.NoError(t, g.AddTransition("A", "B", 1))
	require.NoError(t, g.AddTransition("B", "C", 2))

	byLoc := make(map[string]tagraph.Transition)
	for _, tr := range g.Transitions() {
		byLoc[tr.From+">"+tr.To] = tr
	}
	return g, byLoc
}

func newAllocator(start int) func() string {
	n := start
	return func() string {
		name := "x_" + itoa(n)
		n++
		return name
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

func TestReachableWithoutReset_TrivialAndBlocked(t *testing.T) {
	g, tr := linearGraph(t)
	c := tclock.New("x_0", false)
	c.AddReset(tr["A>B"])

	ok, err := reduce.ReachableWithoutReset(g, c, "A", "A")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = reduce.ReachableWithoutReset(g, c, "A", "C")
	require.NoError(t, err)
	require.False(t, ok, "crossing the A->B reset should block reachability")

	ok, err = reduce.ReachableWithoutReset(g, c, "B", "C")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDependent_SharedResetTargetConflicts(t *testing.T) {
	g, tr := linearGraph(t)

	a := tclock.New("x_0", false)
	a.AddReset(tr["LocationZero>A"])
	a.AddGuard(tr["B>C"], " > 3")

	b := tclock.New("x_1", false)
	b.AddReset(tr["A>B"])
	b.AddGuard(tr["A>B"], " < 5")

	dep, err := reduce.Dependent(g, a, b)
	require.NoError(t, err)
	require.True(t, dep, "a's scope from A to B>C's source B reaches B, which is the target of b's A>B reset")
}

func TestDependent_DisjointScopesDoNotConflict(t *testing.T) {
	g, tr := linearGraph(t)

	a := tclock.New("x_0", false)
	a.AddReset(tr["A>B"])
	a.AddGuard(tr["B>C"], " > 3")

	b := tclock.New("x_1", false)
	b.AddReset(tr["LocationZero>A"])
	b.AddGuard(tr["LocationZero>A"], " < 5")

	dep, err := reduce.Dependent(g, a, b)
	require.NoError(t, err)
	require.False(t, dep)
}

func TestReduce_PrunesUnreachableReset(t *testing.T) {
	g, tr := linearGraph(t)

	c := tclock.New("x_0", false)
	c.AddReset(tr["LocationZero>A"])
	c.AddReset(tr["A>B"]) // never needed: the only guard is reachable from LocationZero>A's target directly
	c.AddGuard(tr["A>B"], " > 1")

	final, mapping, err := reduce.Reduce(g, []*tclock.Clock{c}, newAllocator(1))
	require.NoError(t, err)
	require.Len(t, final, 1)
	require.Equal(t, []string{"x_0"}, mapping["x_0"])
	require.Equal(t, []tagraph.Transition{tr["LocationZero>A"]}, final[0].Resets(), "the A>B reset lands on B, from which the guard's source A is unreachable")
}

// A clock with two invariants fed by the same reset splits into two
// shards that share that one reset, so they are never dependent on each
// other and would fold straight back together on their own. Splitting
// only pays off once some other clock conflicts with just one of the
// shards: here d's reset lands on "Right", which sits on the Right
// shard's scope but not the Left shard's, so after colour-merge the
// Right shard rejoins the Left shard's slot while d is forced apart.
func TestReduce_SplitThenMergeSeparatesConflictingShard(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"LocationZero", "Join", "Left", "Right", "D0"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("LocationZero", "Join", 0))
	require.NoError(t, g.AddTransition("Join", "Left", 1))
	require.NoError(t, g.AddTransition("Left", "Right", 2))
	require.NoError(t, g.AddTransition("LocationZero", "D0", 3))
	require.NoError(t, g.AddTransition("D0", "Right", 4))
	tr := make(map[string]tagraph.Transition)
	for _, t2 := range g.Transitions() {
		tr[t2.From+">"+t2.To] = t2
	}

	c := tclock.New("x_0", false)
	c.AddReset(tr["LocationZero>Join"])
	c.AddInvariant("Left", " <= 3")
	c.AddInvariant("Right", " <= 5")

	d := tclock.New("x_5", false)
	d.AddReset(tr["D0>Right"])

	final, mapping, err := reduce.Reduce(g, []*tclock.Clock{c, d}, newAllocator(2))
	require.NoError(t, err)
	require.Len(t, final, 2)
	require.Equal(t, []string{"x_2"}, mapping["x_0"], "the Left and Right shards re-merge into the first shard name")
	require.Equal(t, []string{"x_5"}, mapping["x_5"], "d has nothing to split and nothing forces it to merge with the other survivor")

	var mergedClock, dClock *tclock.Clock
	for _, fc := range final {
		switch fc.Name {
		case "x_2":
			mergedClock = fc
		case "x_5":
			dClock = fc
		}
	}
	require.NotNil(t, mergedClock)
	require.NotNil(t, dClock)
	require.Len(t, mergedClock.Invariants(), 2, "the merged clock keeps both the Left and Right invariants")
	require.Len(t, dClock.Resets(), 1)
}

func TestReduce_SpecClockBypassesReduction(t *testing.T) {
	g, tr := linearGraph(t)

	normal := tclock.New("x_0", false)
	normal.AddReset(tr["A>B"])

	spec := tclock.New("x_1", true)
	spec.AddReset(tr["LocationZero>A"])
	spec.AddReset(tr["A>B"]) // would be pruned if treated as a normal clock
	spec.AddInvariant("A", " <= 4")

	final, mapping, err := reduce.Reduce(g, []*tclock.Clock{normal, spec}, newAllocator(2))
	require.NoError(t, err)
	require.Equal(t, []string{"x_1"}, mapping["x_1"])

	var specSurvivor *tclock.Clock
	for _, c := range final {
		if c.Name == "x_1" {
			specSurvivor = c
		}
	}
	require.NotNil(t, specSurvivor)
	require.Len(t, specSurvivor.Resets(), 2, "spec clocks must not be pruned")
}

func TestReduce_MappingIsTotalAndSurjective(t *testing.T) {
	g, tr := linearGraph(t)
	c := tclock.New("x_0", false)
	c.AddReset(tr["LocationZero>A"])
	c.AddGuard(tr["A>B"], " > 1")

	final, mapping, err := reduce.Reduce(g, []*tclock.Clock{c}, newAllocator(1))
	require.NoError(t, err)

	survivorNames := make(map[string]bool)
	for _, sc := range final {
		survivorNames[sc.Name] = true
	}
	require.NotEmpty(t, mapping["x_0"], "every original clock maps somewhere")
	hit := make(map[string]bool)
	for _, targets := range mapping {
		for _, name := range targets {
			require.True(t, survivorNames[name])
			hit[name] = true
		}
	}
	for name := range survivorNames {
		require.True(t, hit[name], "every survivor is the target of some mapping")
	}
}

// One clock, one shared reset, two guards on the two transitions leaving
// Hub; each branch returns to Hub only by re-crossing the reset. The clock
// splits into two shards; the shards don't conflict, so
// colouring folds them straight back into one clock under the first
// shard's name.
func TestReduce_SplitThenMergeCollapsesToOneClock(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"LocationZero", "Hub", "Left", "Right"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("LocationZero", "Hub", 0))
	require.NoError(t, g.AddTransition("Hub", "Left", 1))
	require.NoError(t, g.AddTransition("Hub", "Right", 2))
	require.NoError(t, g.AddTransition("Left", "LocationZero", 3))
	require.NoError(t, g.AddTransition("Right", "LocationZero", 4))
	tr := make(map[string]tagraph.Transition)
	for _, t2 := range g.Transitions() {
		tr[t2.From+">"+t2.To] = t2
	}

	c := tclock.New("x_0", false)
	c.AddReset(tr["LocationZero>Hub"])
	c.AddGuard(tr["Hub>Left"], " > 3")
	c.AddGuard(tr["Hub>Right"], " <= 7")

	final, mapping, err := reduce.Reduce(g, []*tclock.Clock{c}, newAllocator(1))
	require.NoError(t, err)
	require.Len(t, final, 1)
	require.Equal(t, []string{"x_1"}, mapping["x_0"])
	require.Equal(t, "x_1", final[0].Name)
	require.Len(t, final[0].Guards(), 2, "the re-merged clock carries both original guards")
	require.Len(t, final[0].Resets(), 1)
}

// A constraint whose location the clock's single reset cannot reach
// without re-crossing a reset is dead; splitting drops it rather than
// minting a shard for it.
func TestReduce_SplitDropsUnreachableConstraint(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"LocationZero", "A", "B", "D", "E"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("LocationZero", "A", 0))
	require.NoError(t, g.AddTransition("A", "B", 1))
	require.NoError(t, g.AddTransition("D", "E", 2))
	tr := make(map[string]tagraph.Transition)
	for _, t2 := range g.Transitions() {
		tr[t2.From+">"+t2.To] = t2
	}

	c := tclock.New("x_0", false)
	c.AddReset(tr["LocationZero>A"])
	c.AddGuard(tr["A>B"], " > 1")
	c.AddGuard(tr["D>E"], " > 2") // D is unreachable from A

	final, mapping, err := reduce.Reduce(g, []*tclock.Clock{c}, newAllocator(1))
	require.NoError(t, err)
	require.Len(t, final, 1)
	require.Equal(t, []string{"x_1"}, mapping["x_0"])
	guards := final[0].Guards()
	require.Len(t, guards, 1)
	require.Equal(t, tr["A>B"], guards[0].Transition)
}

// A clock with exactly one reset and exactly one
// guard survives as itself.
func TestReduce_SingleResetSingleGuardIsIdentity(t *testing.T) {
	g, tr := linearGraph(t)
	c := tclock.New("x_0", false)
	c.AddReset(tr["LocationZero>A"])
	c.AddGuard(tr["A>B"], " > 1")

	final, mapping, err := reduce.Reduce(g, []*tclock.Clock{c}, newAllocator(1))
	require.NoError(t, err)
	require.Len(t, final, 1)
	require.Equal(t, "x_0", final[0].Name)
	require.Equal(t, []string{"x_0"}, mapping["x_0"])
}

// Reduction is a fixed point: running it again
// on its own output yields the same clock set. Names are compared
// structurally: a 1-reset/2-guard survivor re-splits and re-merges into a
// single clock again, under whatever name the allocator hands out.
func TestReduce_IsIdempotent(t *testing.T) {
	g := tagraph.NewGraph()
	for _, l := range []string{"LocationZero", "Hub", "Left", "Right"} {
		_, err := g.AddLocation(l)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddTransition("LocationZero", "Hub", 0))
	require.NoError(t, g.AddTransition("Hub", "Left", 1))
	require.NoError(t, g.AddTransition("Hub", "Right", 2))
	tr := make(map[string]tagraph.Transition)
	for _, t2 := range g.Transitions() {
		tr[t2.From+">"+t2.To] = t2
	}

	c := tclock.New("x_0", false)
	c.AddReset(tr["LocationZero>Hub"])
	c.AddGuard(tr["Hub>Left"], " > 3")
	c.AddGuard(tr["Hub>Right"], " <= 7")

	first, _, err := reduce.Reduce(g, []*tclock.Clock{c}, newAllocator(1))
	require.NoError(t, err)

	second, mapping, err := reduce.Reduce(g, first, newAllocator(10))
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		require.ElementsMatch(t, first[i].Guards(), second[i].Guards())
		require.ElementsMatch(t, first[i].Invariants(), second[i].Invariants())
		require.ElementsMatch(t, first[i].Resets(), second[i].Resets())
		require.Len(t, mapping[first[i].Name], 1)
		require.Equal(t, second[i].Name, mapping[first[i].Name][0])
	}
}
