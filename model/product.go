package model

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PricePerKg  float64 `json:"pricePerKg,omitempty"`
	Savings     string  `json:"savings,omitempty"`
	Popular     bool    `json:"popular,omitempty"`
	CategoryID  int64   `json:"categoryId"`
	FeatureIDs  []int64 `json:"featureIds"`
	IncludeIDs  []int64 `json:"includeIds,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	PricePerKg  float64 `json:"pricePerKg,omitempty"`
	Savings     string  `json:"savings,omitempty"`
	Popular     bool    `json:"popular"`
	CategoryID  int64   `json:"categoryId" validate:"required"`
	FeatureIDs  []int64 `json:"featureIds"`
	IncludeIDs  []int64 `json:"includeIds,omitempty"`
}
