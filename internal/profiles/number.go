package profiles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a numeric form value kept as text. The empty string means unset,
// which the server reads as "use the default".
//
// The backend is not consistent about how it returns these values: some
// records carry JSON numbers, others strings, others null. Number accepts all
// three and always encodes as a JSON string, matching what the form submits.
type Number string

// IsSet reports whether the value is non-empty.
func (n Number) IsSet() bool {
	return strings.TrimSpace(string(n)) != ""
}

// IsZero reports whether the value is set and parses to zero.
func (n Number) IsZero() bool {
	if !n.IsSet() {
		return false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	return err == nil && f == 0
}

func (n Number) String() string {
	return string(n)
}

// UnmarshalJSON accepts a JSON string, number, or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decoding number: %w", err)
	}

	switch val := v.(type) {
	case nil:
		*n = ""
	case string:
		*n = Number(val)
	case json.Number:
		*n = Number(val.String())
	default:
		return fmt.Errorf("decoding number: unexpected %s", bytes.TrimSpace(data))
	}
	return nil
}
