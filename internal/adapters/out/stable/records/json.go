// Package records defines the stored byte form of each entity: a JSON document per
// record with the field names below. Decoding is strict; unknown fields, trailing data
// and undefined enum values are errors, which the store reports as corruption.
// Encoding refuses text that is not valid UTF-8, since JSON could not carry it unchanged.
package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

type textField struct {
	name  string
	value string
}

func checkText(fields ...textField) error {
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			return errs.NewValueIsInvalidErrorWithCause(f.name, ErrInvalidUTF8)
		}
	}
	return nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after %T", v)
	}
	return nil
}

func optionalTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := kernel.NormalizeTime(*t)
	return &n
}
