// Package model holds the stored entities and the inputs that create or
// replace them.
package model

// Country is a row of the countries table. Name is unique.
type Country struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// City is a row of the cities table. (CountryID, Name) is unique.
type City struct {
	ID        int64   `json:"id"`
	CountryID int64   `json:"country_id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// Temperature is a reading as returned by reads. Timestamp is the
// store-assigned calendar day rendered as YYYY-MM-DD.
type Temperature struct {
	ID        int64   `json:"id"`
	Value     float64 `json:"value"`
	Timestamp string  `json:"timestamp"`
}

// CountryInput is the full replacement state of a country.
type CountryInput struct {
	Name string
	Lat  float64
	Lon  float64
}

// CityInput is the full replacement state of a city.
type CityInput struct {
	CountryID int64
	Name      string
	Lat       float64
	Lon       float64
}

// TemperatureInput is the client-supplied state of a reading.
type TemperatureInput struct {
	CityID int64
	Value  float64
}

// CreatedResponse is returned by every create.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
