package y2021_test

import (
	"advent/internal/aoctest"
	"testing"

	_ "advent/internal/years/y2021"
)

func TestExamples(t *testing.T) {
	aoctest.Run(t, 2021)
}
