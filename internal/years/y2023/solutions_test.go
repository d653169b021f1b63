package y2023_test

import (
	"advent/internal/aoctest"
	"testing"

	_ "advent/internal/years/y2023"
)

func TestExamples(t *testing.T) {
	aoctest.Run(t, 2023)
}
