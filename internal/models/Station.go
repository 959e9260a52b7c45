package models

// Station is a row of the station table.
type Station struct {
	Code      string  `json:"Station" example:"USC00519281"`
	Name      string  `json:"Name" example:"WAIHEE 837.5, HI US"`
	Latitude  float64 `json:"Lat" example:"21.45167"`
	Longitude float64 `json:"Lon" example:"-157.84889"`
	Elevation float64 `json:"Elevation" example:"32.9"`
}
