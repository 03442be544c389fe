package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes the DataStar signal store into v using its `json` tags.
// GET requests carry signals in the "datastar" query parameter, other methods
// in the body, which is capped at DefaultMaxJSONSize. Requests not issued by
// DataStar are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDataStar(r) {
			return ErrBinderNotApplicable
		}
		if r.Method != http.MethodGet && r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, DefaultMaxJSONSize)
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		sanitizeStruct(v)
		return nil
	}
}
