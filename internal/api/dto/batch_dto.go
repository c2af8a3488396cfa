package dto

// BatchCreateRequest payload for POST /batches.
type BatchCreateRequest struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Domain    string `json:"domain"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Trainees  int    `json:"trainees"`
	Status    string `json:"status"`
}

// BatchUpdateRequest payload for PUT /batches/:code. Pointer fields so only
// keys present in the body are merged.
type BatchUpdateRequest struct {
	Name      *string `json:"name"`
	Domain    *string `json:"domain"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Trainees  *int    `json:"trainees"`
	Status    *string `json:"status"`
}
