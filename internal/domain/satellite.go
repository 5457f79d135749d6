package domain

// SatellitePosition is an instantaneous satellite fix as reported by N2YO
type SatellitePosition struct {
	ID            int     `json:"satid"`
	Name          string  `json:"satname"`
	IntDesignator string  `json:"intDesignator"`
	LaunchDate    string  `json:"launchDate"`
	Latitude      float64 `json:"satlat"`
	Longitude     float64 `json:"satlng"`
	AltitudeKm    float64 `json:"satalt"`
}

// AboveInfo is the metadata block of an "above" response
type AboveInfo struct {
	Category          string `json:"category"`
	TransactionsCount int    `json:"transactionscount"`
	SatCount          int    `json:"satcount"`
}

// AboveResponse lists satellites currently over an observer
type AboveResponse struct {
	Info  AboveInfo           `json:"info"`
	Above []SatellitePosition `json:"above"`
}

// TLE is a two-line element set
type TLE struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}
