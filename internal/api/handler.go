package api

import (
	"advent/internal/benchmark"
	"advent/internal/report"
	"advent/internal/solution"
	"advent/pkg/controller"
	"advent/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
)

type registryHandler struct {
	registry *solution.Registry
	bench    benchmark.Deps
}

// years lists every registered year with its days.
func (h *registryHandler) years(w http.ResponseWriter, r *http.Request) {
	type year struct {
		year int
		days []solution.Definition
	}

	var years []year
	for _, y := range h.registry.Years() {
		days, err := h.registry.ForYear(y)
		if err != nil {
			controller.WriteError(r.Context(), w, err)

			return
		}
		years = append(years, year{year: y, days: days})
	}

	controller.WriteJSON(r.Context(), w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("years", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, y := range years {
						e.Obj(func(e *jx.Encoder) {
							e.Field("year", func(e *jx.Encoder) { e.Int(y.year) })
							e.Field("days", func(e *jx.Encoder) {
								e.Arr(func(e *jx.Encoder) {
									for _, d := range y.days {
										encodeDefinition(e, d)
									}
								})
							})
						})
					}
				})
			})
		})
	})
}

func encodeDefinition(e *jx.Encoder, d solution.Definition) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("day", func(e *jx.Encoder) { e.Int(d.Day) })
		e.Field("name", func(e *jx.Encoder) { e.Str(d.Name) })
		e.Field("instructionUri", func(e *jx.Encoder) { e.Str(d.InstructionURI()) })
		e.Field("sourceUri", func(e *jx.Encoder) { e.Str(d.SourcePath()) })
	})
}

// run solves a single day once and returns its answers and timings.
func (h *registryHandler) run(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := intParam(r, "year")
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}
	day, err := intParam(r, "day")
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	def, err := h.registry.Find(year, day)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	suite := benchmark.Suite{Year: year, Runs: 1, Definitions: []solution.Definition{def}}
	rep, err := suite.Execute(ctx, h.bench)
	if err != nil {
		controller.WriteError(ctx, w, serrors.Wrap(serrors.ErrUnavailable, err, "run of %d day %d aborted", year, day))

		return
	}

	controller.WriteJSON(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		report.EncodeDay(e, rep.Days[0])
	})
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, serrors.With(serrors.ErrBadRequest, "missing %s parameter", name)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter", name)
	}

	return v, nil
}
