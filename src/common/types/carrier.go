package types

// Carrier is the normalized, display-ready representation of one route option.
// TransferInfo is non-empty exactly when HasTransfer is true, and DepartureHour
// is always derived from DepartureTime (0 when the time is a placeholder).
type Carrier struct {
	Name          string `json:"name"`
	Logo          string `json:"logo,omitempty"`
	HasTransfer   bool   `json:"has_transfer"`
	TransferInfo  string `json:"transfer_info,omitempty"`
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureHour int    `json:"departure_hour"`
	TravelTime    string `json:"travel_time,omitempty"`
	Code          string `json:"code"`
}

// CarrierDetails is the extended contact record fetched by carrier code.
type CarrierDetails struct {
	Code     int    `json:"code"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Contacts string `json:"contacts"`
	Logo     string `json:"logo"`
}

// CarrierDetailsResponse is the raw payload of the carrier endpoint.
type CarrierDetailsResponse struct {
	Carriers []CarrierDetails `json:"carriers"`
}
