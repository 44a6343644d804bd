package listing

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
)

const (
	minPrice, priceSpan       = 50, 500
	minRating, ratingSpan     = 3.5, 1.5
	minReviews, reviewsSpan   = 10, 300
	minGuests, guestsSpan     = 2, 8
	minBedrooms, bedroomsSpan = 1, 4
	minBeds, bedsSpan         = 1, 6
	minBaths, bathsSpan       = 1, 3
	minDraws, drawsSpan       = 3, 5

	anchorLat = 40.4168
	anchorLng = -3.7038
	jitter    = 0.1
)

// NewRand returns a PCG source seeded with seed, or with fresh entropy when
// seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}

// Generate builds count listings with ids 1..count. Each listing draws only
// from r and never touches the shared vocabularies in place.
func Generate(r *rand.Rand, count int) []Listing {
	if count <= 0 {
		return []Listing{}
	}

	out := make([]Listing, 0, count)
	for id := 1; id <= count; id++ {
		out = append(out, generateOne(r, id))
	}
	return out
}

func generateOne(r *rand.Rand, id int) Listing {
	typ := pick(r, Types)
	location := pick(r, Locations)

	return Listing{
		ID:          id,
		Title:       title(r, typ),
		Location:    location,
		Type:        typ,
		Price:       minPrice + r.IntN(priceSpan),
		Rating:      math.Round((minRating+r.Float64()*ratingSpan)*100) / 100,
		Reviews:     minReviews + r.IntN(reviewsSpan),
		Image:       pick(r, Images),
		Images:      gallery(r),
		Guests:      minGuests + r.IntN(guestsSpan),
		Bedrooms:    minBedrooms + r.IntN(bedroomsSpan),
		Beds:        minBeds + r.IntN(bedsSpan),
		Baths:       minBaths + r.IntN(bathsSpan),
		Host:        pick(r, Hosts),
		Description: description(typ, location),
		Amenities:   amenities(r),
		Coordinates: Coordinates{
			Lat: anchorLat + (r.Float64()-0.5)*jitter,
			Lng: anchorLng + (r.Float64()-0.5)*jitter,
		},
	}
}

func pick(r *rand.Rand, vocab []string) string {
	return vocab[r.IntN(len(vocab))]
}

func title(r *rand.Rand, typ string) string {
	if r.IntN(2) == 0 {
		return typ + " with Panoramic Views"
	}
	return typ + " with Great Amenities"
}

func description(typ, location string) string {
	city, _, _ := strings.Cut(location, ",")
	return fmt.Sprintf(
		"Enjoy a stylish experience at this centrally-located %s. Perfect for families or groups looking to explore %s.",
		strings.ToLower(typ), city,
	)
}

func gallery(r *rand.Rand) []string {
	imgs := slices.Clone(Images)
	r.Shuffle(len(imgs), func(i, j int) { imgs[i], imgs[j] = imgs[j], imgs[i] })
	return imgs[:GallerySize:GallerySize]
}

// amenities draws with replacement and keeps the first occurrence of each.
func amenities(r *rand.Rand) []string {
	n := minDraws + r.IntN(drawsSpan)
	out := make([]string, 0, n)
	for range n {
		a := pick(r, Amenities)
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out
}
