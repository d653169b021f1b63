package y2025_test

import (
	"advent/internal/aoctest"
	"testing"

	_ "advent/internal/years/y2025"
)

func TestExamples(t *testing.T) {
	aoctest.Run(t, 2025)
}
