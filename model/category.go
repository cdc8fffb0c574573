package model

import "encoding/json"

// Category is the canonical in-memory record. The backend is inconsistent
// about features: depending on the endpoint they arrive embedded as objects
// or as bare ids. UnmarshalJSON is the single normalization boundary; no
// downstream code branches on wire shape.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	FeatureIDs  []int64 `json:"featureIds,omitempty"`
}

type categoryWire struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FeatureIDs  []int64   `json:"featureIds"`
	Features    []Feature `json:"features"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var wire categoryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*c = Category{
		ID:          wire.ID,
		Name:        wire.Name,
		Description: wire.Description,
		FeatureIDs:  wire.FeatureIDs,
	}
	// Embedded feature objects win over bare ids when both are present.
	if len(wire.Features) > 0 {
		ids := make([]int64, 0, len(wire.Features))
		for _, f := range wire.Features {
			ids = append(ids, f.ID)
		}
		c.FeatureIDs = ids
	}
	return nil
}

// CategoryInput is the create/update payload.
type CategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	FeatureIDs  []int64 `json:"featureIds"`
}
