// Package payload reads the pieces of an API request (path id, filter
// parameters, JSON body) and answers the client directly when one is unusable.
// Each helper returns ok=false after it has written the response.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/inputval"
	"github.com/dalemusser/octofit/internal/app/system/limits"
	"github.com/dalemusser/octofit/internal/app/system/normalize"
	"github.com/dalemusser/octofit/internal/app/system/respond"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PathID parses the {id} URL parameter. Malformed ids answer 404 like
// unknown ones.
func PathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.NotFound(w)
		return primitive.NilObjectID, false
	}
	return oid, true
}

// RequiredParam returns the trimmed query parameter name, answering 400
// {"error": "<name> parameter is required"} when it is missing or blank.
func RequiredParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := normalize.QueryParam(query.Get(r, name))
	if v == "" {
		respond.MissingParam(w, name)
		return "", false
	}
	return v, true
}

// Decode reads the JSON body into dst. Fields already set in dst survive
// unless the body overwrites them, which is how PATCH merges. An empty or
// malformed body answers 400.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		respond.Detail(w, http.StatusBadRequest, parseError(err))
		return false
	}
	if dec.More() {
		respond.Detail(w, http.StatusBadRequest, "JSON parse error - unexpected data after the JSON object")
		return false
	}
	return true
}

func parseError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "JSON parse error - request body is empty"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("JSON parse error - %v (offset %d)", syntaxErr, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("JSON parse error - field %q must be %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &sizeErr):
		return fmt.Sprintf("JSON parse error - request body exceeds %d bytes", sizeErr.Limit)
	}
	return "JSON parse error - " + err.Error()
}

// Valid runs inputval.Validate on v and answers 400 with the field map on
// failure.
func Valid(w http.ResponseWriter, v any) bool {
	res := inputval.Validate(v)
	if !res.HasErrors() {
		return true
	}
	respond.Validation(w, res.Fields())
	return false
}
