package crucible_test

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	g := mustGrid(t, "12\n34")
	cases := []struct {
		name string
		g    *gridgraph.GridGraph
		opts []crucible.Option
		err  error
	}{
		{"NilGrid", nil, nil, crucible.ErrNilGrid},
		{"NegativeMaxCost", g, []crucible.Option{crucible.WithMaxCost(-1)}, crucible.ErrOptionViolation},
		{"OptionBeforeNilGrid", nil, []crucible.Option{crucible.WithWallThreshold(0)}, crucible.ErrOptionViolation},
		{"MinAboveMax", g, []crucible.Option{crucible.WithRunBounds(5, 3)}, crucible.ErrBadRunBounds},
		{"NegativeMin", g, []crucible.Option{crucible.WithRunBounds(-1, 3)}, crucible.ErrBadRunBounds},
		{"ZeroMax", g, []crucible.Option{crucible.WithBounds(crucible.RunBounds{})}, crucible.ErrBadRunBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := crucible.Search(tc.g, tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Fixtures: the classic map and the forced-detour lane.
// ------------------------------------------------------------------------

type fixtureSuite struct {
	suite.Suite
	classic *gridgraph.GridGraph
	detour  *gridgraph.GridGraph
}

func (s *fixtureSuite) SetupSuite() {
	s.classic = mustGrid(s.T(), classicGrid)
	s.detour = mustGrid(s.T(), detourGrid)
}

func (s *fixtureSuite) TestClassicUnconstrained() {
	cost, err := crucible.MinimalCost(s.classic, crucible.Unconstrained)
	s.Require().NoError(err)
	s.Equal(int64(102), cost)
}

func (s *fixtureSuite) TestClassicMandatoryRun() {
	cost, err := crucible.MinimalCost(s.classic, crucible.MandatoryRun)
	s.Require().NoError(err)
	s.Equal(int64(94), cost)
}

func (s *fixtureSuite) TestDetourMandatoryRun() {
	cost, err := crucible.MinimalCost(s.detour, crucible.MandatoryRun)
	s.Require().NoError(err)
	s.Equal(int64(71), cost)
}

// TestPathsAreLegal replays the returned walk through Transitions and checks
// that the cell costs add up to the reported total.
func (s *fixtureSuite) TestPathsAreLegal() {
	for _, tc := range []struct {
		g *gridgraph.GridGraph
		b crucible.RunBounds
	}{
		{s.classic, crucible.Unconstrained},
		{s.classic, crucible.MandatoryRun},
		{s.detour, crucible.MandatoryRun},
	} {
		res, err := crucible.Search(tc.g, crucible.WithBounds(tc.b), crucible.WithReturnPath())
		s.Require().NoError(err)

		path := res.Path()
		s.Require().NotEmpty(path)
		s.Equal(crucible.Position{}, path[0].Pos)
		s.Equal(0, path[0].Run)
		tx, ty := tc.g.Target()
		s.Equal(crucible.Position{X: tx, Y: ty}, path[len(path)-1].Pos)
		s.GreaterOrEqual(path[len(path)-1].Run, tc.b.Min)

		var total int64
		for i := 1; i < len(path); i++ {
			found := false
			for _, tr := range crucible.Transitions(tc.g, path[i-1], tc.b) {
				if tr.Next == path[i] {
					found = true
					total += tr.Cost
				}
			}
			s.True(found, "step %d: %s → %s is not a legal transition", i, path[i-1], path[i])
		}
		s.Equal(res.Cost, total)
	}
}

func TestFixtures(t *testing.T) {
	suite.Run(t, new(fixtureSuite))
}

// ------------------------------------------------------------------------
// 3. Edge cases: zero-length walks, exhausted frontiers, caps and walls.
// ------------------------------------------------------------------------

func TestSearch_SingleCell(t *testing.T) {
	g := mustGrid(t, "7")

	res, err := crucible.Search(g, crucible.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
	assert.Equal(t, crucible.Position{}, res.Goal.Pos)
	assert.Len(t, res.Path(), 1)

	_, err = crucible.MinimalCost(g, crucible.MandatoryRun)
	assert.ErrorIs(t, err, crucible.ErrNoPath)
}

func TestSearch_SingleRow(t *testing.T) {
	cases := []struct {
		name   string
		grid   string
		bounds crucible.RunBounds
		cost   int64
		err    error
	}{
		{"FitsMaxRun", "1234", crucible.Unconstrained, 9, nil},
		{"ExceedsMaxRun", "11111", crucible.Unconstrained, 0, crucible.ErrNoPath},
		{"MeetsMinRun", "11111", crucible.MandatoryRun, 4, nil},
		{"ShortOfMinRun", "1111", crucible.MandatoryRun, 0, crucible.ErrNoPath},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cost, err := crucible.MinimalCost(mustGrid(t, tc.grid), tc.bounds)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cost, cost)
		})
	}
}

// TestSearch_NoPathIsExhaustive checks that ErrNoPath is only reported after
// every state that ever received a cost has been popped.
func TestSearch_NoPathIsExhaustive(t *testing.T) {
	g := mustGrid(t, "12\n34")
	relaxed := map[crucible.State]bool{}
	popped := map[crucible.State]bool{}

	_, err := crucible.Search(g,
		crucible.WithBounds(crucible.MandatoryRun),
		crucible.WithOnRelax(func(s crucible.State, _, _ int64) { relaxed[s] = true }),
		crucible.WithOnPop(func(s crucible.State, _ int64) { popped[s] = true }),
	)
	require.ErrorIs(t, err, crucible.ErrNoPath)
	require.NotEmpty(t, relaxed)
	for s := range relaxed {
		assert.True(t, popped[s], "%s was relaxed but never popped", s)
	}
	for _, s := range crucible.StartStates(crucible.Position{}) {
		assert.True(t, popped[s], "start %s never popped", s)
	}
}

func TestSearch_MaxCost(t *testing.T) {
	g := mustGrid(t, "151\n444")

	res, err := crucible.Search(g, crucible.WithMaxCost(10))
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Cost)

	_, err = crucible.Search(g, crucible.WithMaxCost(9))
	assert.ErrorIs(t, err, crucible.ErrNoPath)
}

func TestSearch_WallThreshold(t *testing.T) {
	g := mustGrid(t, "151\n444")

	res, err := crucible.Search(g, crucible.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Cost)
	assert.Contains(t, res.Positions(), crucible.Position{X: 1, Y: 0})

	res, err = crucible.Search(g, crucible.WithWallThreshold(5), crucible.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Cost)
	assert.NotContains(t, res.Positions(), crucible.Position{X: 1, Y: 0})

	_, err = crucible.Search(mustGrid(t, "19\n91"), crucible.WithWallThreshold(9))
	assert.ErrorIs(t, err, crucible.ErrNoPath)
}

func TestSearch_PathNilWithoutReturnPath(t *testing.T) {
	res, err := crucible.Search(mustGrid(t, "12\n34"))
	require.NoError(t, err)
	assert.Nil(t, res.Prev)
	assert.Nil(t, res.Path())
	assert.Nil(t, res.Positions())
	assert.Nil(t, res.Best)
}

// ------------------------------------------------------------------------
// 4. Properties: monotone BestCost, determinism, idempotence.
// ------------------------------------------------------------------------

func TestSearch_BestCostMonotone(t *testing.T) {
	g := mustGrid(t, classicGrid)
	for _, b := range []crucible.RunBounds{crucible.Unconstrained, crucible.MandatoryRun} {
		last := map[crucible.State]int64{}
		_, err := crucible.Search(g,
			crucible.WithBounds(b),
			crucible.WithOnRelax(func(s crucible.State, old, cost int64) {
				assert.GreaterOrEqual(t, cost, int64(0))
				assert.Less(t, cost, old)
				if prev, ok := last[s]; ok {
					assert.Equal(t, prev, old, "old cost must be the last recorded one")
				} else {
					assert.Equal(t, int64(math.MaxInt64), old)
				}
				last[s] = cost
			}),
		)
		require.NoError(t, err)
	}
}

func TestSearch_PopOrderNonDecreasing(t *testing.T) {
	var last int64
	_, err := crucible.Search(mustGrid(t, classicGrid),
		crucible.WithBounds(crucible.MandatoryRun),
		crucible.WithOnPop(func(_ crucible.State, cost int64) {
			assert.GreaterOrEqual(t, cost, last)
			last = cost
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(94), last)
}

func TestSearch_DeterministicAndIdempotent(t *testing.T) {
	g := mustGrid(t, classicGrid)
	run := func() (*crucible.Result, []crucible.State) {
		var order []crucible.State
		res, err := crucible.Search(g,
			crucible.WithBestCosts(),
			crucible.WithReturnPath(),
			crucible.WithOnPop(func(s crucible.State, _ int64) { order = append(order, s) }),
		)
		require.NoError(t, err)
		return res, order
	}

	first, order1 := run()
	second, order2 := run()

	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Goal, second.Goal)
	assert.Equal(t, first.Path(), second.Path())
	assert.Equal(t, first.Best, second.Best)
	assert.Equal(t, order1, order2)
	assert.Equal(t, first.Popped, len(order1))
	assert.GreaterOrEqual(t, first.Pushed, first.Popped)
	assert.Equal(t, mustGrid(t, classicGrid).Cells(), g.Cells(), "search must not mutate the grid")

	for s, c := range first.Best {
		assert.GreaterOrEqual(t, c, int64(0), "%s", s)
	}
}

// ------------------------------------------------------------------------
// 5. Logging.
// ------------------------------------------------------------------------

func TestSearch_LogsSummary(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := crucible.Search(mustGrid(t, classicGrid), crucible.WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "crucible: search finished", entry.Message)
	assert.Equal(t, int64(102), entry.Data["cost"])
	assert.Equal(t, "0..3", entry.Data["bounds"])

	hook.Reset()
	_, err = crucible.Search(mustGrid(t, "12\n34"), crucible.WithLogger(logger), crucible.WithBounds(crucible.MandatoryRun))
	require.ErrorIs(t, err, crucible.ErrNoPath)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "crucible: frontier exhausted", hook.LastEntry().Message)
}
