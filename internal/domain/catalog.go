package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Category groups catalog satellites by mission type
type Category string

const (
	CategorySpaceStation     Category = "Space Station"
	CategoryObservatory      Category = "Observatory"
	CategoryEarthObservation Category = "Earth Observation"
	CategoryWeather          Category = "Weather"
	CategoryCommunications   Category = "Communications"
)

// DefaultSatelliteID is the NORAD id of the International Space Station
const DefaultSatelliteID = 25544

// SatelliteInfo is the display metadata attached to proxy responses
type SatelliteInfo struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// CatalogEntry is a selectable satellite
type CatalogEntry struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// catalog is read-only after package init.
var catalog = map[int]SatelliteInfo{
	25544: {Name: "International Space Station (ISS)", Category: CategorySpaceStation},
	20580: {Name: "Hubble Space Telescope", Category: CategoryObservatory},
	27424: {Name: "Sentinel-1A", Category: CategoryEarthObservation},
	40934: {Name: "NOAA-20", Category: CategoryWeather},
	43013: {Name: "Starlink-1007", Category: CategoryCommunications},
	25994: {Name: "Terra", Category: CategoryEarthObservation},
	27386: {Name: "Aqua", Category: CategoryEarthObservation},
	37849: {Name: "Suomi NPP", Category: CategoryWeather},
	41866: {Name: "GOES-16", Category: CategoryWeather},
	43070: {Name: "GOES-17", Category: CategoryWeather},
}

// LookupSatellite returns catalog metadata for a NORAD id
func LookupSatellite(id int) (SatelliteInfo, bool) {
	info, ok := catalog[id]
	return info, ok
}

// IsCatalogued reports whether id is a selectable satellite
func IsCatalogued(id int) bool {
	_, ok := catalog[id]
	return ok
}

// Catalog returns every entry ordered by NORAD id. The slice is a fresh copy.
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(catalog))
	for id, info := range catalog {
		entries = append(entries, CatalogEntry{ID: id, Name: info.Name, Category: info.Category})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// CatalogSize returns the number of selectable satellites
func CatalogSize() int {
	return len(catalog)
}

// ResolveSatelliteID applies the pass lookup policy: anything that is not a
// catalogued id resolves to DefaultSatelliteID.
func ResolveSatelliteID(raw string) int {
	id, ok := ParseCatalogID(raw)
	if !ok {
		return DefaultSatelliteID
	}
	return id
}

// ParseCatalogID parses raw as a NORAD id and reports whether it is catalogued.
func ParseCatalogID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, IsCatalogued(id)
}
