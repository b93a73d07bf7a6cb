package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"rovera-leads/internal/pkg/form"
)

// NumericValue accepts a JSON number or a string of digits, possibly masked
// ("R$ 1.234,56" -> 123456). null and "" read as zero. Fractional numbers
// round half away from zero.
type NumericValue int64

func (n *NumericValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, _ := form.ParseCurrency(s)
		*n = NumericValue(v)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("numeric value expected: %w", err)
	}
	if i, err := num.Int64(); err == nil {
		*n = NumericValue(i)
		return nil
	}
	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return fmt.Errorf("numeric value expected: %w", err)
	}
	*n = NumericValue(math.Round(f))
	return nil
}

func (n NumericValue) Int64() int64 { return int64(n) }

func (n NumericValue) Int() int { return int(n) }

// ptr converts an optional value, keeping nil as nil.
func ptr(v *NumericValue) *int64 {
	if v == nil {
		return nil
	}
	i := int64(*v)
	return &i
}
