package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the maximum accepted JSON body size.
const DefaultMaxJSONSize = 1 << 20

// JSON decodes an application/json body into v. Unknown fields are rejected
// and trailing data after the object is an error. DataStar requests are left
// to Signals, and requests with another or no content type are not applicable.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) || isDataStar(r) {
			return ErrBinderNotApplicable
		}
		if mediaType(r) != "application/json" {
			return ErrBinderNotApplicable
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, DefaultMaxJSONSize)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		sanitizeStruct(v)
		return nil
	}
}
