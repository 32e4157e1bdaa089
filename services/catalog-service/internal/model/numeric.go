package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Numeric is a float64 that also accepts a quoted decimal on the wire. Mobile
// clients and older owner dashboards send unit prices as strings.
type Numeric float64

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid numeric %s", s)
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			*n = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric %s", string(data))
	}
	*n = Numeric(v)
	return nil
}

// Float returns nil for a nil receiver, so optional wire fields map directly
// onto the *float64 fields the pricing rules consume.
func (n *Numeric) Float() *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}
