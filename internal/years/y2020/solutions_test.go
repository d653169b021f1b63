package y2020_test

import (
	"advent/internal/aoctest"
	"testing"

	_ "advent/internal/years/y2020"
)

func TestExamples(t *testing.T) {
	aoctest.Run(t, 2020)
}
