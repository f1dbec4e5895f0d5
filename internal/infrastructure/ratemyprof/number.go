package ratemyprof

import (
	"bytes"
	"strconv"
	"strings"
)

// flexNumber decodes a numeric field that the site sends as a number, a
// numeric string or null. Absent, null and non-numeric values all leave value
// nil, so one bad field never fails the whole response.
type flexNumber struct {
	value *float64
}

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	n.value = nil

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	s := string(b)

	if b[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return nil //nolint:nilerr
		}

		s = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil //nolint:nilerr
	}

	n.value = &v

	return nil
}
