package entities

// DeliveryOutcome is the per-channel result reported by the delivery service.
// Channels that were not requested produce no outcome entry at all.
type DeliveryOutcome struct {
	Channel Channel `json:"channel"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

// DeliveryRequest is what the workflow hands to the delivery service once the
// generation response has been observed.
type DeliveryRequest struct {
	Artifacts []Artifact `json:"artifacts"`
	Customer  Customer   `json:"customer"`
	Channels  []Channel  `json:"send_methods"`
	DocTypes  []DocType  `json:"doc_types"`
}
