package controller

import (
	"advent/pkg/logger"
	"advent/pkg/serrors"
	"context"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// WriteJSON writes the document produced by encode with the given status.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}

// StatusOf maps the semantic kind of err to an HTTP status code.
func StatusOf(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes {"code": <kind>, "message": <text>}. Internal errors are
// logged and their message is not exposed.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusOf(err)
	kind := serrors.KindOf(err)

	message := err.Error()
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		message = http.StatusText(status)
	}

	WriteJSON(ctx, w, status, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("code", func(e *jx.Encoder) { e.Str(kind.Error()) })
			e.Field("message", func(e *jx.Encoder) { e.Str(message) })
			if id := RequestID(ctx); id != "" {
				e.Field("requestId", func(e *jx.Encoder) { e.Str(id) })
			}
		})
	})
}
