package dto

// CommitteeResponse is a committee lookup row.
type CommitteeResponse struct {
	ID   int64  `json:"coID"`
	Name string `json:"committee"`
}

// CreateCommitteeRequest creates a committee reference row.
type CreateCommitteeRequest struct {
	Name string `json:"committee"`
}

// DepartmentResponse is a department lookup row.
type DepartmentResponse struct {
	ID          int64  `json:"deID"`
	Name        string `json:"department"`
	CommitteeID int64  `json:"coID"`
}

// CreateDepartmentRequest creates a department under a committee.
type CreateDepartmentRequest struct {
	ID          int64  `json:"deID"`
	Name        string `json:"department"`
	CommitteeID int64  `json:"coID"`
}

// EstimatorResponse is an estimator row.
type EstimatorResponse struct {
	ID           int64  `json:"estimatorID"`
	Name         string `json:"estimatorName"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Status       string `json:"estimatorStatus"`
	CommitteeID  *int64 `json:"coID"`
	DepartmentID *int64 `json:"deID"`
}

// UpsertEstimatorRequest creates or updates an estimator. Dates are
// wire-formatted as 2006-01-02; an empty endDate clears the column.
type UpsertEstimatorRequest struct {
	Name         string `json:"estimatorName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Status       string `json:"estimatorStatus"`
	CommitteeID  *int64 `json:"coID"`
	DepartmentID *int64 `json:"deID"`
}

// CreateEstimatorResponse carries the assigned estimator id.
type CreateEstimatorResponse struct {
	EstimatorID int64 `json:"estimatorID"`
}
