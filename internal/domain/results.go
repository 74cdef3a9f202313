package domain

import "time"

// Result items are owned by the fetch layer for the lifetime of one search
// and replaced wholesale on the next fetch. Filtering never mutates them.

type Flight struct {
	ID              string    `json:"id"`
	Airline         string    `json:"airline"`
	FlightNumber    string    `json:"flightNumber"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	DepartureTime   time.Time `json:"departureTime"`
	ArrivalTime     time.Time `json:"arrivalTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Stops           int       `json:"stops"`
	CabinClass      string    `json:"cabinClass"`
	Fare            float64   `json:"fare"`
	SeatsLeft       int       `json:"seatsLeft"`
}

func (f Flight) MinPrice() float64    { return f.Fare }
func (f Flight) Departure() time.Time { return f.DepartureTime }

// RoomOption is a price-bearing sub-object of a hotel; the hotel's derived
// price is the minimum across its rooms.
type RoomOption struct {
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity"`
}

type Hotel struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	City      string       `json:"city"`
	Stars     int          `json:"stars"`
	Rating    float64      `json:"rating"`
	Amenities []string     `json:"amenities"`
	Rooms     []RoomOption `json:"rooms"`
}

func (h Hotel) MinPrice() float64 {
	min := 0.0
	for i, r := range h.Rooms {
		if i == 0 || r.PricePerNight < min {
			min = r.PricePerNight
		}
	}
	return min
}

type Bus struct {
	ID            string    `json:"id"`
	Operator      string    `json:"operator"`
	BusType       string    `json:"busType"` // seater | sleeper | ac-seater | ac-sleeper
	From          string    `json:"from"`
	To            string    `json:"to"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Fare          float64   `json:"fare"`
	SeatsLeft     int       `json:"seatsLeft"`
}

func (b Bus) MinPrice() float64    { return b.Fare }
func (b Bus) Departure() time.Time { return b.DepartureTime }

// TrainClass is a price-bearing sub-object of a train; the train's derived
// price is the minimum across its bookable classes.
type TrainClass struct {
	Code      string  `json:"code"` // SL, 3A, 2A, 1A, CC, EC
	Fare      float64 `json:"fare"`
	SeatsLeft int     `json:"seatsLeft"`
}

type Train struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Number        string       `json:"number"`
	Operator      string       `json:"operator"`
	From          string       `json:"from"`
	To            string       `json:"to"`
	DepartureTime time.Time    `json:"departureTime"`
	ArrivalTime   time.Time    `json:"arrivalTime"`
	Classes       []TrainClass `json:"classes"`
}

func (t Train) MinPrice() float64 {
	min := 0.0
	for i, c := range t.Classes {
		if i == 0 || c.Fare < min {
			min = c.Fare
		}
	}
	return min
}

func (t Train) Departure() time.Time { return t.DepartureTime }

type Homestay struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	PropertyType  string   `json:"propertyType"` // villa | apartment | cottage | farmhouse
	PricePerNight float64  `json:"pricePerNight"`
	MaxGuests     int      `json:"maxGuests"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
}

func (h Homestay) MinPrice() float64 { return h.PricePerNight }

type CabOption struct {
	ID       string  `json:"id"`
	Category string  `json:"category"` // hatchback | sedan | suv | luxury
	Model    string  `json:"model"`
	Capacity int     `json:"capacity"`
	Fare     float64 `json:"fare"`
	ETA      int     `json:"etaMinutes"`
}

func (c CabOption) MinPrice() float64 { return c.Fare }

type InsurancePlan struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	PlanType       string  `json:"planType"` // individual | family | senior
	Premium        float64 `json:"premium"`
	CoverageAmount float64 `json:"coverageAmount"`
	Provider       string  `json:"provider"`
}

func (p InsurancePlan) MinPrice() float64 { return p.Premium }

type HolidayPackage struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Destination  string   `json:"destination"`
	DurationDays int      `json:"durationDays"`
	Price        float64  `json:"price"`
	Highlights   []string `json:"highlights"`
	Category     string   `json:"category"` // budget | standard | premium
}

func (p HolidayPackage) MinPrice() float64 { return p.Price }

// Facets are the filter options available for the current result set,
// derived from whatever the fetched data actually contains.
type Facets struct {
	Categories []string `json:"categories,omitempty"`
	Operators  []string `json:"operators,omitempty"`
	PriceMin   float64  `json:"priceMin"`
	PriceMax   float64  `json:"priceMax"`
}

// SearchView is the rendered outcome of one search: the fetch status, the
// filtered (visible) items in original order, and the facet options derived
// from the unfiltered set.
type SearchView struct {
	Vertical Vertical    `json:"vertical"`
	Status   FetchStatus `json:"status"`
	Message  string      `json:"message,omitempty"`
	Total    int         `json:"total"`
	Items    any         `json:"data"`
	Facets   Facets      `json:"facets"`
}
