package y2022_test

import (
	"advent/internal/aoctest"
	"testing"

	_ "advent/internal/years/y2022"
)

func TestExamples(t *testing.T) {
	aoctest.Run(t, 2022)
}
