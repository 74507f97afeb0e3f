// Package jsondoc reads opaque JSON documents from request bodies.
//
// Bodies are parsed as MongoDB relaxed Extended JSON, so integers stay
// integers, nested objects stay documents, and values such as
// {"$date": "..."} arrive as their BSON types.
//
// Size limits are applied by routing with waffle's middleware.LimitBodySize;
// Decode reports the resulting *http.MaxBytesError as ErrTooLarge.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrEmpty     = errors.New("request body is empty")
	ErrNotObject = errors.New("request body must be a JSON object")
	ErrTooLarge  = errors.New("request body is too large")
	ErrMalformed = errors.New("request body is not valid JSON")
)

// Decode reads r.Body and unmarshals its single top-level JSON object into
// dst, which must be a pointer to a map or struct. Anything other than
// whitespace after the object is rejected.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmpty
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrTooLarge
		}
		return fmt.Errorf("read body: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrEmpty
	}
	if data[0] != '{' {
		return ErrNotObject
	}
	if !json.Valid(data) {
		return ErrMalformed
	}

	if err := bson.UnmarshalExtJSON(data, false, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// IsClientError reports whether err came from a bad body rather than a
// failure reading it.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmpty) ||
		errors.Is(err, ErrNotObject) ||
		errors.Is(err, ErrTooLarge) ||
		errors.Is(err, ErrMalformed)
}
