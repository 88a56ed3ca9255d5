package types

// Station is one catalog entry; Code is the join key with the upstream API.
type Station struct {
	Code          string `json:"code"`
	Title         string `json:"title"`
	TransportType string `json:"transport_type,omitempty"`
	StationType   string `json:"station_type,omitempty"`
	Settlement    string `json:"settlement,omitempty"`
	Region        string `json:"region,omitempty"`
}

// StationListResponse is the raw payload of the full station catalog endpoint.
type StationListResponse struct {
	Countries []CountryEntry `json:"countries"`
}

type CountryEntry struct {
	Title   string        `json:"title"`
	Regions []RegionEntry `json:"regions"`
}

type RegionEntry struct {
	Title       string            `json:"title"`
	Settlements []SettlementEntry `json:"settlements"`
}

type SettlementEntry struct {
	Title    string         `json:"title"`
	Stations []StationEntry `json:"stations"`
}

type StationEntry struct {
	Title         string       `json:"title"`
	StationType   string       `json:"station_type"`
	TransportType string       `json:"transport_type"`
	Codes         StationCodes `json:"codes"`
}

type StationCodes struct {
	Code string `json:"code"`
}
