package validate_test

import (
	"advent/internal/validate"
	"advent/pkg/logger"
	"advent/pkg/serrors"
	"context"
	"math/big"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"2022/day_01.properties": {Data: []byte("part1=24000\npart2 = 45000\npart1_example=7\n")},
	}
	ctx := context.Background()

	v, err := validate.Load(ctx, fsys, 2022, 1)
	require.NoError(t, err)
	require.NoError(t, v.Part1(ctx, 24000))
	require.NoError(t, v.Part2(ctx, int64(45000)))
	require.NoError(t, v.WithCase("example").Part1(ctx, 7))
	require.ErrorIs(t, v.WithCase("example").Part2(ctx, 7), serrors.ErrNoAnswer)
	require.ErrorIs(t, v.Part1(ctx, 1), serrors.ErrMismatch)
}

func TestLoad_MissingFile(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	v, err := validate.Load(ctx, fstest.MapFS{}, 2022, 2)
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("no recorded answers").FilterField(zap.String("path", "2022/day_02.properties")).Len())
	require.False(t, v.Has("part1"))
	require.ErrorIs(t, v.Part1(context.Background(), 1), serrors.ErrNoAnswer)
}

func TestEqual(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	tests := []struct {
		name     string
		expected string
		answer   any
		want     bool
	}{
		{"int", "42", 42, true},
		{"int mismatch", "42", 43, false},
		{"int not a number", "abc", 43, false},
		{"int64", "-9000000000", int64(-9000000000), true},
		{"uint64", "18446744073709551615", uint64(18446744073709551615), true},
		{"big", "123456789012345678901234567890", huge, true},
		{"big mismatch", "1", huge, false},
		{"string case", "CMZ", "cmz", true},
		{"string", "MCD", "CMZ", false},
		{"fallback", "true", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, validate.Equal(tt.expected, tt.answer))
		})
	}
}

func TestFormat(t *testing.T) {
	require.Empty(t, validate.Format(nil))
	require.Equal(t, "12", validate.Format(big.NewInt(12)))
	require.Equal(t, "7", validate.Format(7))
	require.Equal(t, "abc", validate.Format("abc"))
}
