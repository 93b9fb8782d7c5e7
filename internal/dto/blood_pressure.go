package dto

// BloodPressureRequest holds one day of readings in "SYS/DIA Ppulse" form.
// Empty readings are allowed as long as one is present.
type BloodPressureRequest struct {
	Date       FlexibleDate `json:"date" validate:"required"`
	MorningBP1 string       `json:"morningBp1" validate:"omitempty,bp_reading"`
	MorningBP2 string       `json:"morningBp2" validate:"omitempty,bp_reading"`
	EveningBP1 string       `json:"eveningBp1" validate:"omitempty,bp_reading"`
	EveningBP2 string       `json:"eveningBp2" validate:"omitempty,bp_reading"`
}

// ListBloodPressureResponse represents a page of blood pressure records
type ListBloodPressureResponse struct {
	Records    interface{}    `json:"records"`
	Pagination PaginationMeta `json:"pagination"`
}
