package tensor

import "fmt"

// Order is the memory traversal convention of an array.
//
// The values are the character codes stored in the trailing slot of a
// shape descriptor, so an Order can be written to and read from the
// descriptor without translation.
type Order byte

// Supported traversal orders.
const (
	RowMajor    Order = 'c' // last dimension varies fastest
	ColumnMajor Order = 'f' // first dimension varies fastest
)

// Valid reports whether o is one of the supported orders.
func (o Order) Valid() bool {
	return o == RowMajor || o == ColumnMajor
}

// String returns the conventional one-letter name of the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "c"
	case ColumnMajor:
		return "f"
	default:
		return fmt.Sprintf("Order(%d)", byte(o))
	}
}

// ParseOrder accepts "c"/"row-major" and "f"/"column-major".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "c", "C", "row-major", "rowmajor":
		return RowMajor, nil
	case "f", "F", "column-major", "colmajor":
		return ColumnMajor, nil
	default:
		return 0, fmt.Errorf("unknown order %q (want c or f)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid order %d", byte(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(text []byte) error {
	parsed, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
