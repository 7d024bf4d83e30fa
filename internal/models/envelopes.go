package models

// DefaultCategory labels batches whose producer did not set one.
const DefaultCategory = "beauty"

// RawBatch is the envelope scraper jobs publish to the raw-batches
// topic: one scrape export for one platform and category.
type RawBatch struct {
	BatchID  string    `json:"batch_id"`
	Platform Platform  `json:"platform"`
	Category string    `json:"category"`
	Items    []RawItem `json:"items"`
}

// CleanRequest is the batch request body accepted by the HTTP API.
type CleanRequest struct {
	Items    []RawItem `json:"items"`
	Category string    `json:"category"`
}

// CleanSingleRequest is the single-item convenience request body.
type CleanSingleRequest struct {
	Item     RawItem `json:"item"`
	Category string  `json:"category"`
}

// CleanResponse is the batch response body.
type CleanResponse struct {
	Rows  []CanonicalRecord `json:"rows"`
	Count int               `json:"count"`
}

// CleanSingleResponse holds zero or one normalized record.
type CleanSingleResponse struct {
	Row *CanonicalRecord `json:"row"`
}
