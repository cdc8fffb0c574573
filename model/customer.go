package model

// Customer is an admin view of a registered user. Status arrives absent for
// older accounts; the bool zero value is the documented default.
type Customer struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	TotalOrders    int       `json:"totalOrders,omitempty"`
	TotalSpent     Money     `json:"totalSpent,omitempty"`
	Status         bool      `json:"status"`
	UserType       string    `json:"userType,omitempty"`
	LatestBookings []Booking `json:"latestBookings,omitempty"`
	CreatedAt      string    `json:"createdAt,omitempty"`
}
