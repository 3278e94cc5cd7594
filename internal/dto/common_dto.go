package dto

import (
	"fmt"
	"strconv"
	"time"
)

// Date accepts both RFC 3339 timestamps and bare "2006-01-02" dates so
// the client can post either shape; the value is normalized at binding
// time.
type Date struct {
	time.Time
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func (d *Date) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if raw == "null" {
		return nil
	}

	s, err := strconv.Unquote(raw)
	if err != nil {
		return fmt.Errorf("invalid date %s", raw)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(time.RFC3339))), nil
}
