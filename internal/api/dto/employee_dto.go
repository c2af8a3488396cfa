package dto

// EmployeeCreateRequest payload for POST /users and entries of POST /users/bulk.
type EmployeeCreateRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Team   string `json:"team"`
	Status string `json:"status"`
}

// EmployeeUpdateRequest payload for PUT /users/:id. Pointer fields so only
// keys present in the body are merged.
type EmployeeUpdateRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Team   *string `json:"team"`
	Status *string `json:"status"`
}

// BulkUploadResponse for POST /users/bulk.
type BulkUploadResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
