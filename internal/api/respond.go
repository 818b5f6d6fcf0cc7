// internal/api/respond.go
package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"internship-matcher/internal/common/errors"
	"internship-matcher/internal/common/validation"
	"internship-matcher/internal/repository"
)

const statusSuccess = "success"

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError responds with the StandardError body and the status its code
// maps to.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := errors.Normalize(err)
	status := errors.HTTPStatus(stdErr.Code)

	fields := map[string]interface{}{
		"path":      r.URL.Path,
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
		"status":    status,
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields)
	} else {
		s.logger.Warn("request rejected", fields)
	}

	writeJSON(w, status, stdErr)
}

// readBody reads a JSON request body, treating an empty body as an empty
// object.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.NewParseError(err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return []byte("{}"), nil
	}
	return raw, nil
}

// decodeValidated checks raw against schema and decodes it into dst.
// Malformed JSON is a parse error; schema violations become onInvalid.
func decodeValidated(raw []byte, schema *validation.Schema, dst interface{}, onInvalid func(string) *errors.StandardError) error {
	result, err := schema.Validate(raw)
	if err != nil {
		return errors.NewParseError(err)
	}
	if !result.Valid {
		return onInvalid(strings.Join(result.GetErrorMessages(), "; "))
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.NewParseError(err)
	}
	return nil
}

// storageError maps repository failures onto API errors. notFound is used
// when the record does not exist.
func storageError(err error, entity string, notFound func() *errors.StandardError) error {
	if stderrors.Is(err, repository.ErrNotFound) {
		return notFound()
	}
	if _, ok := errors.AsStandardError(err); ok {
		return err
	}
	return errors.NewStorageReadFailedError(entity, err)
}
