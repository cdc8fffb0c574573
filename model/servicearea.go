package model

type ServiceArea struct {
	ID        int64    `json:"id"`
	Pincode   string   `json:"pincode"`
	Areas     []string `json:"areas"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// ServiceAreaInput is the create payload. Pincodes are exactly six digits.
type ServiceAreaInput struct {
	Pincode string   `json:"pincode" validate:"required,len=6,numeric"`
	Areas   []string `json:"areas"`
}
