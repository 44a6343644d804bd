package listing

import "slices"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Listing struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	Type        string      `json:"type"`
	Price       int         `json:"price"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	Image       string      `json:"image"`
	Images      []string    `json:"images"`
	Guests      int         `json:"guests"`
	Bedrooms    int         `json:"bedrooms"`
	Beds        int         `json:"beds"`
	Baths       int         `json:"baths"`
	Host        string      `json:"host"`
	Description string      `json:"description"`
	Amenities   []string    `json:"amenities"`
	Coordinates Coordinates `json:"coordinates"`
}

// Clone returns a copy that shares no slices with l.
func (l Listing) Clone() Listing {
	l.Images = slices.Clone(l.Images)
	l.Amenities = slices.Clone(l.Amenities)
	return l
}

// HasAmenity reports whether a is in the listing's amenity set.
func (l Listing) HasAmenity(a string) bool {
	return slices.Contains(l.Amenities, a)
}

type Review struct {
	ID   int    `json:"id"`
	User string `json:"user"`
	Date string `json:"date"`
	Text string `json:"text"`
}

const (
	TypeApartment = "Apartment"
	TypeVilla     = "Villa"
	TypeLoft      = "Loft"
	TypeHouse     = "House"
	TypeCottage   = "Cottage"

	// TypeAny leaves the property type unconstrained in a search.
	TypeAny = "Any"
)

// GallerySize is the number of images in every listing's gallery.
const GallerySize = 5

var (
	Locations = []string{
		"Madrid, Spain",
		"Barcelona, Spain",
		"Seville, Spain",
		"Valencia, Spain",
		"Malaga, Spain",
		"Paris, France",
		"Rome, Italy",
		"Lisbon, Portugal",
	}

	Types = []string{TypeApartment, TypeVilla, TypeLoft, TypeHouse, TypeCottage}

	Amenities = []string{
		"Wifi", "Kitchen", "Pool", "Air conditioning", "Heating",
		"Washer", "Dryer", "Parking", "Gym", "Hot tub",
	}

	Hosts = []string{"Maria", "John", "David", "Sarah", "Elena"}

	Images = []string{
		"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=800&q=80",
		"https://images.unsplash.com/photo-1493809842364-78817add7ffb?auto=format&fit=crop&w=800&q=80",
		"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&w=800&q=80",
		"https://images.unsplash.com/photo-1501183638710-841dd1904471?auto=format&fit=crop&w=800&q=80",
		"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=800&q=80",
		"https://images.unsplash.com/photo-1484154218962-a1c002085d2f?auto=format&fit=crop&w=800&q=80",
		"https://images.unsplash.com/photo-1513694203232-719a280e022f?auto=format&fit=crop&w=800&q=80",
		"https://images.unsplash.com/photo-1449844908441-8829872d2607?auto=format&fit=crop&w=800&q=80",
	}
)
