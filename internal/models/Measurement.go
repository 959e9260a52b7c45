package models

// Measurement is a row of the measurement table. Date is kept as the
// stored YYYY-MM-DD text so comparisons stay lexicographic.
type Measurement struct {
	Station       string   `json:"station"`
	Date          string   `json:"date"`
	Precipitation *float64 `json:"prcp"`
	Temperature   float64  `json:"tobs"`
}

type TemperatureObservation struct {
	Date        string  `json:"Date" example:"2016-08-23"`
	Temperature float64 `json:"Tobs" example:"77"`
}

// TemperatureStats holds min/avg/max over a date filter. All fields are nil
// when the filter matched no rows.
type TemperatureStats struct {
	Minimum *float64 `json:"Minimum Temperature" example:"53"`
	Average *float64 `json:"Average Temperature" example:"73.1"`
	Maximum *float64 `json:"Maximum Temperature" example:"87"`
}

// Precipitation maps a date to its precipitation amount, nil for no reading.
type Precipitation map[string]*float64
