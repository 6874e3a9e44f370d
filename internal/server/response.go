package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/chumchon-net/chumchon/internal/address"
	"github.com/chumchon-net/chumchon/internal/errs"
)

var log = logrus.WithField("layer", "server").WithField("package", "server")

var errInvalidRequest = errors.New("invalid request")

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

// writeServiceError maps a typed failure reason to http status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := errs.As(err)
	if !ok {
		log.WithField("path", r.URL.Path).WithError(err).Error("internal error")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusInternalServerError
	switch e.Category {
	case errs.Validation:
		status = http.StatusBadRequest
	case errs.Authorization:
		status = http.StatusForbidden
	case errs.Precondition:
		status = http.StatusConflict
		if e == errs.ErrNotFound {
			status = http.StatusNotFound
		}
	case errs.External:
		status = http.StatusUnprocessableEntity
	}

	writeOK(w, status, Error{
		Error:    e.Message,
		Code:     e.Code,
		Category: e.Category.String(),
	})
}

func decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err)
	}
	return nil
}

func pathAddress(r *http.Request, key string) (address.Address, error) {
	a, err := address.Parse(chi.URLParam(r, key))
	if err != nil {
		return address.Address{}, fmt.Errorf("%w: invalid %s", errInvalidRequest, key)
	}
	return a, nil
}
