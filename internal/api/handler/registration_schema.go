package handler

type createRegistrationRequest struct {
	EventID        int            `json:"eventId" validate:"required,gt=0"`
	UserID         int            `json:"userId"  validate:"required,gt=0"`
	Status         string         `json:"status"  validate:"omitempty,oneof=registered confirmed checked_in completed cancelled active finished delayed"`
	BibNumber      *string        `json:"bibNumber"`
	Category       *string        `json:"category"`
	AdditionalInfo map[string]any `json:"additionalInfo"`
}

type updateRegistrationRequest struct {
	Status         *string        `json:"status" validate:"omitempty,oneof=registered confirmed checked_in completed cancelled active finished delayed"`
	BibNumber      *string        `json:"bibNumber"`
	Category       *string        `json:"category"`
	AdditionalInfo map[string]any `json:"additionalInfo"`
}
