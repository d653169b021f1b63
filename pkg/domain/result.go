package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Measurement aggregates the time spent in one phase of a day over several runs.
type Measurement struct {
	// Total is the accumulated time in microseconds.
	Total int64
	// Runs is the number of runs that contributed to Total.
	Runs int
}

// Average returns the mean run time in microseconds, or 0 when nothing ran.
func (m Measurement) Average() int64 {
	if m.Runs <= 0 {
		return 0
	}

	return m.Total / int64(m.Runs)
}

// Pretty renders the average for humans.
func (m Measurement) Pretty() string {
	return PrettyMicros(m.Average())
}

// PrettyMicros renders a microsecond duration: "-" for zero, milliseconds
// above 1200µs and microseconds otherwise.
func PrettyMicros(micros int64) string {
	switch {
	case micros == 0:
		return "-"
	case micros > 1200:
		return fmt.Sprintf("%dms", micros/1000)
	default:
		return fmt.Sprintf("%dμs", micros)
	}
}

// Status is the validation outcome of a day.
type Status string

const (
	// StatusValid means every recorded answer matched.
	StatusValid Status = "valid"
	// StatusInvalid means at least one answer differed from the recorded one.
	StatusInvalid Status = "invalid"
	// StatusUnknown means no answers were recorded for the day.
	StatusUnknown Status = "unknown"
	// StatusFailed means the solver returned an error or panicked.
	StatusFailed Status = "failed"
)

// DayResult is the outcome of running (and possibly benchmarking) one day.
type DayResult struct {
	Year           int
	Day            int
	Name           string
	InstructionURI string
	SourceURI      string

	Part1       Measurement
	Part2       Measurement
	Preparation Measurement

	Part1Answer string
	Part2Answer string
	Status      Status
	// Error holds the failure message when Status is StatusFailed.
	Error string
}

// Report groups the results of one year.
type Report struct {
	Year int
	// Runs is the number of benchmark runs each day was measured with.
	Runs int
	Days []DayResult
}

// RunID uniquely identifies a stored benchmark run.
type RunID uuid.UUID

// String returns the canonical uuid form.
func (id RunID) String() string { return uuid.UUID(id).String() }

// BenchmarkRun is a persisted report together with the settings it ran with.
type BenchmarkRun struct {
	ID        RunID
	Year      int
	Runs      int
	CreatedAt time.Time
	Results   []DayResult
}

// Report returns the run as a year report.
func (r BenchmarkRun) Report() Report {
	return Report{Year: r.Year, Runs: r.Runs, Days: r.Results}
}
