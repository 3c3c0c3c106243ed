package pgmoney

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer. The amount is bound as its canonical text
// form, which Postgres accepts as money input; the driver itself never sees
// anything but a string.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner. Text from the driver ([]byte or string) is
// parsed with the full money grammar; an int64 is taken as minor units
// verbatim, covering columns read back through an ::int8 cast.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*m = parsed
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*m = parsed
	case int64:
		*m = Money(v)
	case nil:
		return fmt.Errorf("cannot scan NULL into Money")
	default:
		return fmt.Errorf("cannot scan %T into Money", src)
	}
	return nil
}
