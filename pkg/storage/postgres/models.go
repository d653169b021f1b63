package postgres

import (
	"advent/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PgRun struct {
	ID        uuid.UUID `db:"id"`
	Year      int       `db:"year"`
	Runs      int       `db:"runs"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

type PgDayResult struct {
	RunID          uuid.UUID `db:"run_id"`
	Day            int       `db:"day"`
	Name           string    `db:"name"`
	InstructionURI string    `db:"instruction_uri"`
	SourceURI      string    `db:"source_uri"`

	PreparationTotal int64 `db:"preparation_total"`
	PreparationRuns  int   `db:"preparation_runs"`
	Part1Total       int64 `db:"part1_total"`
	Part1Runs        int   `db:"part1_runs"`
	Part2Total       int64 `db:"part2_total"`
	Part2Runs        int   `db:"part2_runs"`

	Part1Answer string         `db:"part1_answer"`
	Part2Answer string         `db:"part2_answer"`
	Status      string         `db:"status"`
	Error       sql.NullString `db:"error"`
}

func (p *PgRun) ToDomain(results []domain.DayResult) *domain.BenchmarkRun {
	return &domain.BenchmarkRun{
		ID:        domain.RunID(p.ID),
		Year:      p.Year,
		Runs:      p.Runs,
		CreatedAt: p.CreatedAt,
		Results:   results,
	}
}

func (p *PgDayResult) ToDomain(year int) domain.DayResult {
	return domain.DayResult{
		Year:           year,
		Day:            p.Day,
		Name:           p.Name,
		InstructionURI: p.InstructionURI,
		SourceURI:      p.SourceURI,
		Preparation:    domain.Measurement{Total: p.PreparationTotal, Runs: p.PreparationRuns},
		Part1:          domain.Measurement{Total: p.Part1Total, Runs: p.Part1Runs},
		Part2:          domain.Measurement{Total: p.Part2Total, Runs: p.Part2Runs},
		Part1Answer:    p.Part1Answer,
		Part2Answer:    p.Part2Answer,
		Status:         domain.Status(p.Status),
		Error:          p.Error.String,
	}
}

func (p *PgDayResult) FromDomain(runID uuid.UUID, r domain.DayResult) {
	*p = PgDayResult{
		RunID:            runID,
		Day:              r.Day,
		Name:             r.Name,
		InstructionURI:   r.InstructionURI,
		SourceURI:        r.SourceURI,
		PreparationTotal: r.Preparation.Total,
		PreparationRuns:  r.Preparation.Runs,
		Part1Total:       r.Part1.Total,
		Part1Runs:        r.Part1.Runs,
		Part2Total:       r.Part2.Total,
		Part2Runs:        r.Part2.Runs,
		Part1Answer:      r.Part1Answer,
		Part2Answer:      r.Part2Answer,
		Status:           string(r.Status),
		Error: sql.NullString{
			String: r.Error,
			Valid:  r.Error != "",
		},
	}
}
