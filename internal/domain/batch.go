package domain

// Batch is a training batch, keyed by Code within its collection.
type Batch struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Domain    string `json:"domain"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Trainees  int    `json:"trainees"`
	Status    string `json:"status"`
}

// Defaults applied when a created batch leaves these fields empty.
const (
	BatchDomainUnspecified = "Not Specified"
	BatchStatusUpcoming    = "Upcoming"
)
