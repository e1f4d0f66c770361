package reduce

import (
	"strconv"
	"strings"

	"github.com/tanta-nta/tanta/tclock"
)

// parseClockIndex extracts k from a clock name shaped "x_k". Names that do
// not fit the pattern sort before every well-formed one, by returning -1; a
// correctly operating builder never allocates such a name, but a stray
// spec-clock name (reduce leaves those alone) should not panic if it ever
// reaches here.
func parseClockIndex(name string) int {
	const prefix = "x_"
	if !strings.HasPrefix(name, prefix) {
		return -1
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil {
		return -1
	}
	return n
}

// clockLess orders two clock names by their numeric index, so "x_2" sorts
// before "x_10". A byte-wise string compare would misorder any index
// past single digits, so k is compared numerically.
func clockLess(a, b string) bool {
	ai, bi := parseClockIndex(a), parseClockIndex(b)
	if ai != bi {
		return ai < bi
	}
	return a < b
}

// sortClocksByName sorts clocks in place by clockLess.
func sortClocksByName(clocks []*tclock.Clock) {
	for i := 1; i < len(clocks); i++ {
		for j := i; j > 0 && clockLess(clocks[j].Name, clocks[j-1].Name); j-- {
			clocks[j], clocks[j-1] = clocks[j-1], clocks[j]
		}
	}
}

// sortNamesByClockOrder sorts a slice of clock names by clockLess.
func sortNamesByClockOrder(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && clockLess(names[j], names[j-1]); j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
