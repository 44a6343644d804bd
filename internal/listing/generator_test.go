package listing_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StayMock/internal/listing"
)

func TestGenerate_IDsAreOneToN(t *testing.T) {
	const n = 250
	ls := listing.Generate(listing.NewRand(42), n)
	require.Len(t, ls, n)

	for i, l := range ls {
		assert.Equal(t, i+1, l.ID)
	}
}

func TestGenerate_Invariants(t *testing.T) {
	ls := listing.Generate(listing.NewRand(7), 500)

	for _, l := range ls {
		assert.Len(t, l.Images, listing.GallerySize, "listing %d gallery", l.ID)
		assert.GreaterOrEqual(t, l.Rating, 3.5, "listing %d rating", l.ID)
		assert.LessOrEqual(t, l.Rating, 5.0, "listing %d rating", l.ID)

		seen := map[string]bool{}
		for _, a := range l.Amenities {
			assert.False(t, seen[a], "listing %d duplicate amenity %q", l.ID, a)
			seen[a] = true
			assert.Contains(t, listing.Amenities, a)
		}
		assert.NotEmpty(t, l.Amenities)
		assert.LessOrEqual(t, len(l.Amenities), 7)
	}
}

func TestGenerate_RangesAndVocabularies(t *testing.T) {
	ls := listing.Generate(listing.NewRand(99), 500)

	for _, l := range ls {
		assert.Contains(t, listing.Types, l.Type)
		assert.Contains(t, listing.Locations, l.Location)
		assert.Contains(t, listing.Hosts, l.Host)
		assert.Contains(t, listing.Images, l.Image)
		for _, img := range l.Images {
			assert.Contains(t, listing.Images, img)
		}

		assert.True(t, l.Price >= 50 && l.Price <= 549, "price %d", l.Price)
		assert.True(t, l.Reviews >= 10 && l.Reviews <= 309, "reviews %d", l.Reviews)
		assert.True(t, l.Guests >= 2 && l.Guests <= 9, "guests %d", l.Guests)
		assert.True(t, l.Bedrooms >= 1 && l.Bedrooms <= 4, "bedrooms %d", l.Bedrooms)
		assert.True(t, l.Beds >= 1 && l.Beds <= 6, "beds %d", l.Beds)
		assert.True(t, l.Baths >= 1 && l.Baths <= 3, "baths %d", l.Baths)

		assert.InDelta(t, 40.4168, l.Coordinates.Lat, 0.05)
		assert.InDelta(t, -3.7038, l.Coordinates.Lng, 0.05)

		assert.True(t, strings.HasPrefix(l.Title, l.Type+" with "), "title %q", l.Title)
		city, _, _ := strings.Cut(l.Location, ",")
		assert.Contains(t, l.Description, strings.ToLower(l.Type))
		assert.True(t, strings.HasSuffix(l.Description, "explore "+city+"."), "description %q", l.Description)
	}
}

func TestGenerate_SameSeedSameCatalog(t *testing.T) {
	a := listing.Generate(listing.NewRand(1234), 60)
	b := listing.Generate(listing.NewRand(1234), 60)
	assert.Equal(t, a, b)

	c := listing.Generate(listing.NewRand(4321), 60)
	assert.NotEqual(t, a, c)
}

func TestGenerate_GalleriesDoNotShareStorage(t *testing.T) {
	vocab := slices.Clone(listing.Images)

	ls := listing.Generate(listing.NewRand(5), 20)
	assert.Equal(t, vocab, listing.Images, "generation must not reorder the shared image list")

	other := slices.Clone(ls[1].Images)
	ls[0].Images[0] = "mutated"
	assert.Equal(t, other, ls[1].Images)
	assert.Equal(t, vocab, listing.Images)
}

func TestGenerate_GalleryImagesDistinct(t *testing.T) {
	for _, l := range listing.Generate(listing.NewRand(11), 100) {
		assert.Len(t, slices.Compact(slices.Sorted(slices.Values(l.Images))), listing.GallerySize)
	}
}

func TestGenerate_NonPositiveCount(t *testing.T) {
	assert.Empty(t, listing.Generate(listing.NewRand(1), 0))
	assert.Empty(t, listing.Generate(listing.NewRand(1), -3))
}

func TestNewRand_ZeroSeedUsesEntropy(t *testing.T) {
	a := listing.Generate(listing.NewRand(0), 30)
	b := listing.Generate(listing.NewRand(0), 30)
	assert.NotEqual(t, a, b)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := listing.NewCatalog(listing.Generate(listing.NewRand(3), 10))
	require.Equal(t, 10, c.Len())

	l, ok := c.Get(4)
	require.True(t, ok)
	l.Amenities[0] = "Helipad"
	l.Images[0] = "mutated"

	again, _ := c.Get(4)
	assert.NotEqual(t, "Helipad", again.Amenities[0])
	assert.NotEqual(t, "mutated", again.Images[0])

	all := c.Listings()
	all[0].Title = "changed"
	assert.NotEqual(t, "changed", c.Listings()[0].Title)

	_, ok = c.Get(11)
	assert.False(t, ok)
}
