package dto

// RunRequest is the optional body of a manual pipeline run.
type RunRequest struct {
	ClearanceHours *int `json:"clearance_hours" validate:"omitempty,gte=1,lte=8760"`
}
