package listing

// Catalog is the read-only set of listings for one process lifetime. All
// methods are safe for concurrent use without locking because nothing
// mutates a Catalog after NewCatalog returns.
type Catalog struct {
	listings []Listing
	byID     map[int]int
}

func NewCatalog(listings []Listing) *Catalog {
	c := &Catalog{
		listings: make([]Listing, 0, len(listings)),
		byID:     make(map[int]int, len(listings)),
	}
	for _, l := range listings {
		c.byID[l.ID] = len(c.listings)
		c.listings = append(c.listings, l.Clone())
	}
	return c
}

func (c *Catalog) Len() int { return len(c.listings) }

// Listings returns a copy of every listing in catalog order.
func (c *Catalog) Listings() []Listing {
	out := make([]Listing, 0, len(c.listings))
	for _, l := range c.listings {
		out = append(out, l.Clone())
	}
	return out
}

func (c *Catalog) Get(id int) (Listing, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Listing{}, false
	}
	return c.listings[i].Clone(), true
}
