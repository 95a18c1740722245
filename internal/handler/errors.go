package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/repo"
	"github.com/BuzzLyutic/task-store-api/pkg/respond"
)

var (
	errEmptyBody = errors.New("empty request body")
	errInvalidID = errors.New("invalid id")
	errTrailing  = errors.New("invalid json: unexpected data after object")
)

// parseID читает {id} из пути, id - uint32
func parseID(r *http.Request) (uint32, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, errInvalidID
	}
	return uint32(id), nil
}

func decodeBody(r *http.Request, dst any) error {
	if r.ContentLength == 0 {
		return errEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("invalid json: %w", err)
	}
	// после объекта допускаются только пробелы
	var rest json.RawMessage
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return errTrailing
	}
	return nil
}

func handleErrors(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, errEmptyBody), errors.Is(err, errInvalidID):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	default:
		logger.Error("internal error", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
