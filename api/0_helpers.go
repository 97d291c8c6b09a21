package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/inceptionstore/database"
	"github.com/fulldump/inceptionstore/persistence"
	"github.com/fulldump/inceptionstore/service"
)

var (
	ErrUnavailable  = errors.New("temporary unavailable")
	ErrInvalidParam = errors.New("invalid parameter")
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func writePrettyError(w http.ResponseWriter, status int, err error, description string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": PrettyError{
			Message:     err.Error(),
			Description: description,
		},
	})
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening || status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: %s", ErrUnavailable, status))
				return
			}
			next(ctx)
		}
	}
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)
		r := box.GetRequest(ctx)

		var syntaxError *json.SyntaxError

		switch {
		case errors.Is(err, service.ErrorDocumentNotFound):
			writePrettyError(w, http.StatusNotFound, err, fmt.Sprintf("document '%s' not found", box.GetUrlParameter(ctx, "documentId")))
		case errors.Is(err, persistence.ErrInvalidPatch):
			writePrettyError(w, http.StatusBadRequest, err, "Patch does not fit the document")
		case errors.Is(err, ErrInvalidParam):
			writePrettyError(w, http.StatusBadRequest, err, "Invalid parameter")
		case errors.As(err, &syntaxError):
			writePrettyError(w, http.StatusBadRequest, err, "Malformed JSON")
		case errors.Is(err, ErrUnavailable):
			writePrettyError(w, http.StatusServiceUnavailable, err, "Database is not operating")
		case errors.Is(err, persistence.ErrStorage):
			writePrettyError(w, http.StatusInternalServerError, err, "Storage error")
		case err == box.ErrResourceNotFound:
			writePrettyError(w, http.StatusNotFound, err, fmt.Sprintf("resource '%s' not found", r.URL.String()))
		case err == box.ErrMethodNotAllowed:
			writePrettyError(w, http.StatusMethodNotAllowed, err, fmt.Sprintf("method '%s' not allowed", r.Method))
		default:
			writePrettyError(w, http.StatusInternalServerError, err, "Unexpected error")
		}
	}
}
