package y2024

import (
	"advent/internal/aoctest"
	"advent/internal/input"
	"advent/internal/solution"
	"advent/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExamples(t *testing.T) {
	aoctest.Run(t, 2024,
		aoctest.Override(14, func() solution.Solver { return &day14{width: 11, height: 7} }),
		aoctest.Override(18, func() solution.Solver { return &day18{size: 7, fallen: 12} }),
		aoctest.Override(20, func() solution.Solver { return &day20{minSaving: 50} }))
}

func TestDay18_RunLimits(t *testing.T) {
	def, err := solution.Default().Find(2024, 18)
	require.NoError(t, err)
	require.Zero(t, def.Part1Runs)
	require.Equal(t, 1, def.Part2Runs)
}

func TestDay07_InvalidTarget(t *testing.T) {
	err := (&day07{}).ReadInput(input.FromString("190: 10 19\nx: 1 2\n"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
