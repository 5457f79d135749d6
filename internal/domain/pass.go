package domain

// PassRecord is a single predicted visual pass
type PassRecord struct {
	StartAz         float64 `json:"startAz"`
	StartAzCompass  string  `json:"startAzCompass"`
	StartEl         float64 `json:"startEl"`
	StartUTC        int64   `json:"startUTC"`
	MaxAz           float64 `json:"maxAz"`
	MaxAzCompass    string  `json:"maxAzCompass"`
	MaxEl           float64 `json:"maxEl"`
	MaxUTC          int64   `json:"maxUTC"`
	EndAz           float64 `json:"endAz"`
	EndAzCompass    string  `json:"endAzCompass"`
	EndEl           float64 `json:"endEl"`
	EndUTC          int64   `json:"endUTC"`
	Mag             float64 `json:"mag"`
	Duration        int     `json:"duration"`
	StartVisibility *int64  `json:"startVisibility,omitempty"`
	SatName         string  `json:"satname,omitempty"`
}

// PassesInfo is the metadata block of a visual passes response
type PassesInfo struct {
	SatID             int    `json:"satid"`
	SatName           string `json:"satname"`
	TransactionsCount int    `json:"transactionscount"`
	PassesCount       int    `json:"passescount"`
}

// PassesResponse is the pass proxy payload. Passes keep upstream order.
type PassesResponse struct {
	Info          PassesInfo    `json:"info"`
	Passes        []PassRecord  `json:"passes"`
	SatelliteInfo SatelliteInfo `json:"satelliteInfo"`
	SelectedSatID int           `json:"selectedSatId"`
}
