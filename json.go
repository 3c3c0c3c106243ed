package pgmoney

import (
	"encoding/json"
	"strconv"
)

// MarshalJSON implements json.Marshaler. The amount serializes as the bare
// minor-unit integer, the one numeric field any structured-data adapter
// maps to and from.
func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(m), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting the minor-unit
// integer produced by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var units int64
	if err := json.Unmarshal(data, &units); err != nil {
		return err
	}
	*m = Money(units)
	return nil
}
