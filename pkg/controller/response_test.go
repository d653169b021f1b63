package controller_test

import (
	"advent/pkg/controller"
	"advent/pkg/serrors"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	require.Equal(t, http.StatusNotFound, controller.StatusOf(serrors.With(serrors.ErrNotFound, "x")))
	require.Equal(t, http.StatusBadRequest, controller.StatusOf(serrors.KindOnly(serrors.ErrBadRequest)))
	require.Equal(t, http.StatusServiceUnavailable, controller.StatusOf(serrors.KindOnly(serrors.ErrUnavailable)))
	require.Equal(t, http.StatusInternalServerError, controller.StatusOf(errors.New("boom")))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WriteJSON(context.Background(), rec, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("years", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) { e.Int(2022) })
			})
		})
	})

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"years":[2022]}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WriteError(context.Background(), rec, serrors.With(serrors.ErrBadRequest, "invalid year %q", "abc"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid year \"abc\""}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ctx := context.WithValue(context.Background(), controller.RequestIDKey, "req-1")
	controller.WriteError(ctx, rec, errors.New("secret failure"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL","message":"Internal Server Error","requestId":"req-1"}`, rec.Body.String())
}
