package crucible_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

// classicGrid is the 13×13 heat-loss map used throughout the tests.
const classicGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

// detourGrid forces a long straight run along the cheap top lane.
const detourGrid = `111111111111
999999999991
999999999991
999999999991
999999999991`

// mustGrid parses s or fails the test.
func mustGrid(tb testing.TB, s string) *gridgraph.GridGraph {
	tb.Helper()
	g, err := gridgraph.ParseString(s)
	require.NoError(tb, err)

	return g
}
