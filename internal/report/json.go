package report

import (
	"advent/pkg/domain"
	"advent/pkg/logger"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// JSONWriter writes <Dir>/<year>-report.json, creating Dir when missing.
type JSONWriter struct {
	Dir string
}

// Path returns the file the report of year is written to.
func (w *JSONWriter) Path(year int) string {
	return filepath.Join(w.Dir, fmt.Sprintf("%d-report.json", year))
}

func (w *JSONWriter) Write(ctx context.Context, report domain.Report) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return errors.Wrap(err, "create report directory")
	}

	path := w.Path(report.Year)
	if err := os.WriteFile(path, EncodeJSON(report), 0o644); err != nil { //nolint: gosec
		return errors.Wrapf(err, "write %s", path)
	}
	logger.Info(ctx, "wrote report", zap.String("path", path), zap.Int("days", len(report.Days)))

	return nil
}

// EncodeJSON renders a report document.
func EncodeJSON(report domain.Report) []byte {
	e := jx.Encoder{}
	e.SetIdent(2)

	e.Obj(func(e *jx.Encoder) {
		e.Field("year", func(e *jx.Encoder) { e.Int(report.Year) })
		e.Field("runs", func(e *jx.Encoder) { e.Int(report.Runs) })
		e.Field("days", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, d := range report.Days {
					EncodeDay(e, d)
				}
			})
		})
	})

	return e.Bytes()
}

// EncodeDay writes one day result object.
func EncodeDay(e *jx.Encoder, d domain.DayResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("day", func(e *jx.Encoder) { e.Int(d.Day) })
		e.Field("name", func(e *jx.Encoder) { e.Str(d.Name) })
		e.Field("instructionUri", func(e *jx.Encoder) { e.Str(d.InstructionURI) })
		e.Field("sourceUri", func(e *jx.Encoder) { e.Str(d.SourceURI) })
		e.Field("part1", func(e *jx.Encoder) { encodeMeasurement(e, d.Part1) })
		e.Field("part2", func(e *jx.Encoder) { encodeMeasurement(e, d.Part2) })
		e.Field("preparation", func(e *jx.Encoder) { encodeMeasurement(e, d.Preparation) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(d.Status)) })
		if d.Part1Answer != "" {
			e.Field("part1Answer", func(e *jx.Encoder) { e.Str(d.Part1Answer) })
		}
		if d.Part2Answer != "" {
			e.Field("part2Answer", func(e *jx.Encoder) { e.Str(d.Part2Answer) })
		}
		if d.Error != "" {
			e.Field("error", func(e *jx.Encoder) { e.Str(d.Error) })
		}
	})
}

func encodeMeasurement(e *jx.Encoder, m domain.Measurement) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("total", func(e *jx.Encoder) { e.Int64(m.Total) })
		e.Field("runs", func(e *jx.Encoder) { e.Int(m.Runs) })
	})
}

// ReadJSON reads a report document written by JSONWriter.
func ReadJSON(path string) (domain.Report, error) {
	data, err := os.ReadFile(path) //nolint: gosec
	if err != nil {
		return domain.Report{}, errors.Wrapf(err, "read %s", path)
	}

	report, err := DecodeJSON(data)
	if err != nil {
		return domain.Report{}, errors.Wrapf(err, "decode %s", path)
	}

	return report, nil
}

// DecodeJSON parses a report document. Unknown fields are ignored.
func DecodeJSON(data []byte) (domain.Report, error) {
	var report domain.Report

	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "year":
			report.Year, err = d.Int()
		case "runs":
			report.Runs, err = d.Int()
		case "days":
			err = d.Arr(func(d *jx.Decoder) error {
				day, err := decodeDay(d)
				if err != nil {
					return err
				}
				report.Days = append(report.Days, day)

				return nil
			})
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})
	if err != nil {
		return domain.Report{}, err
	}

	// year may follow days in hand edited files
	for i := range report.Days {
		report.Days[i].Year = report.Year
	}

	return report, nil
}

func decodeDay(d *jx.Decoder) (domain.DayResult, error) {
	var day domain.DayResult

	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "day":
			day.Day, err = d.Int()
		case "name":
			day.Name, err = d.Str()
		case "instructionUri":
			day.InstructionURI, err = d.Str()
		case "sourceUri":
			day.SourceURI, err = d.Str()
		case "part1":
			day.Part1, err = decodeMeasurement(d)
		case "part2":
			day.Part2, err = decodeMeasurement(d)
		case "preparation":
			day.Preparation, err = decodeMeasurement(d)
		case "status":
			var s string
			s, err = d.Str()
			day.Status = domain.Status(s)
		case "part1Answer":
			day.Part1Answer, err = d.Str()
		case "part2Answer":
			day.Part2Answer, err = d.Str()
		case "error":
			day.Error, err = d.Str()
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return day, err
}

func decodeMeasurement(d *jx.Decoder) (domain.Measurement, error) {
	var m domain.Measurement

	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "total":
			m.Total, err = d.Int64()
		case "runs":
			m.Runs, err = d.Int()
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return m, err
}
