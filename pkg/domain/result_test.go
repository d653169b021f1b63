package domain_test

import (
	"advent/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPrettyMicros(t *testing.T) {
	cases := []struct {
		micros int64
		want   string
	}{
		{0, "-"},
		{1, "1μs"},
		{1200, "1200μs"},
		{1201, "1ms"},
		{45_678, "45ms"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, domain.PrettyMicros(tc.micros), "micros=%d", tc.micros)
	}
}

func TestMeasurementAverage(t *testing.T) {
	require.Equal(t, int64(0), domain.Measurement{}.Average())
	require.Equal(t, int64(0), domain.Measurement{Total: 500, Runs: 0}.Average())
	require.Equal(t, int64(250), domain.Measurement{Total: 1000, Runs: 4}.Average())
	require.Equal(t, "2ms", domain.Measurement{Total: 10_000, Runs: 4}.Pretty())
}

func TestRunIDString(t *testing.T) {
	id := uuid.New()
	require.Equal(t, id.String(), domain.RunID(id).String())
}
