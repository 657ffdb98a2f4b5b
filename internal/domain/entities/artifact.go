package entities

import "time"

// Artifact is one generated document, registered in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The download endpoint resolves artifacts through the registry only; raw
// client-supplied paths are never served.
type Artifact struct {
	ID        string    `json:"id"`
	DocType   DocType   `json:"doc_type"`
	FileName  string    `json:"file_name"`
	Path      string    `json:"path"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerationResult is the document generation service response.
type GenerationResult struct {
	Success   bool       `json:"success"`
	Artifacts []Artifact `json:"artifacts"`
}
