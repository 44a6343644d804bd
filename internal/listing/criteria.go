package listing

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Criteria is a set of optional search predicates. A nil field is not
// supplied; a non-nil zero is a real constraint.
type Criteria struct {
	Location  *string
	MinGuests *int
	MaxPrice  *int
	MinPrice  *int
	Type      *string
	Amenities []string
}

const (
	paramLocation  = "location"
	paramGuests    = "guests"
	paramPriceMin  = "priceMin"
	paramPriceMax  = "priceMax"
	paramType      = "type"
	paramAmenities = "amenities"
)

// ParseCriteria reads criteria from query parameters. Empty values count as
// absent; text values are matched as given, surrounding spaces included.
// Numeric fields that are not integers yield ErrInvalidCriteria.
func ParseCriteria(q url.Values) (Criteria, error) {
	var (
		c   Criteria
		err error
	)

	if v := q.Get(paramLocation); v != "" {
		c.Location = &v
	}
	if v := q.Get(paramType); v != "" {
		c.Type = &v
	}

	if c.MinGuests, err = intParam(q, paramGuests); err != nil {
		return Criteria{}, err
	}
	if c.MinPrice, err = intParam(q, paramPriceMin); err != nil {
		return Criteria{}, err
	}
	if c.MaxPrice, err = intParam(q, paramPriceMax); err != nil {
		return Criteria{}, err
	}

	for _, raw := range q[paramAmenities] {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				c.Amenities = append(c.Amenities, a)
			}
		}
	}

	return c, nil
}

// Encode is the inverse of ParseCriteria.
func (c Criteria) Encode() url.Values {
	q := url.Values{}
	if c.Location != nil {
		q.Set(paramLocation, *c.Location)
	}
	if c.MinGuests != nil {
		q.Set(paramGuests, strconv.Itoa(*c.MinGuests))
	}
	if c.MinPrice != nil {
		q.Set(paramPriceMin, strconv.Itoa(*c.MinPrice))
	}
	if c.MaxPrice != nil {
		q.Set(paramPriceMax, strconv.Itoa(*c.MaxPrice))
	}
	if c.Type != nil {
		q.Set(paramType, *c.Type)
	}
	for _, a := range c.Amenities {
		q.Add(paramAmenities, a)
	}
	return q
}

func intParam(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidCriteria, key, raw)
	}
	return &n, nil
}

// Ptr is a helper for building Criteria literals.
func Ptr[T any](v T) *T { return &v }

// ParseID coerces a lookup id the way a numeric string is read: decimal or
// exponent notation, or an unsigned 0x/0o/0b integer. Digit separators are
// not accepted. Anything that is not an integral number is reported as
// ok=false and treated by callers as no match.
func ParseID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsRune(raw, '_') {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	if len(raw) > 2 && raw[0] == '0' {
		switch raw[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseInt(raw, 0, 64)
			if err != nil || n > math.MaxInt32 {
				return 0, false
			}
			return int(n), true
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
