package listing

import "strings"

type predicate func(Listing) bool

// Search returns the listings matching every supplied criterion, in catalog
// order. It never returns nil.
func Search(c *Catalog, crit Criteria) []Listing {
	preds := crit.predicates()

	out := make([]Listing, 0, len(c.listings))
	for _, l := range c.listings {
		if matchAll(l, preds) {
			out = append(out, l.Clone())
		}
	}
	return out
}

func matchAll(l Listing, preds []predicate) bool {
	for _, p := range preds {
		if !p(l) {
			return false
		}
	}
	return true
}

func (crit Criteria) predicates() []predicate {
	var preds []predicate

	if crit.Location != nil {
		term := strings.ToLower(*crit.Location)
		preds = append(preds, func(l Listing) bool {
			return strings.Contains(strings.ToLower(l.Location), term)
		})
	}
	if crit.MinGuests != nil {
		n := *crit.MinGuests
		preds = append(preds, func(l Listing) bool { return l.Guests >= n })
	}
	if crit.MaxPrice != nil {
		n := *crit.MaxPrice
		preds = append(preds, func(l Listing) bool { return l.Price <= n })
	}
	if crit.MinPrice != nil {
		n := *crit.MinPrice
		preds = append(preds, func(l Listing) bool { return l.Price >= n })
	}
	if crit.Type != nil && *crit.Type != TypeAny {
		typ := *crit.Type
		preds = append(preds, func(l Listing) bool { return l.Type == typ })
	}
	if len(crit.Amenities) > 0 {
		required := crit.Amenities
		preds = append(preds, func(l Listing) bool {
			for _, a := range required {
				if !l.HasAmenity(a) {
					return false
				}
			}
			return true
		})
	}

	return preds
}
