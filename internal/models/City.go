package models

// CitySearchResult is a geocoding match used to disambiguate a city name.
type CitySearchResult struct {
	Name    string  `json:"name" example:"Paris"`
	Country string  `json:"country" example:"FR"`
	State   *string `json:"state,omitempty" example:"Ile-de-France"`
	Lat     float64 `json:"lat" example:"48.8566"`
	Lon     float64 `json:"lon" example:"2.3522"`
}
