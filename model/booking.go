package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	// The backend spells the picked-up state "pickuped" on the wire; only
	// the display label is corrected.
	BookingPickedUp  BookingStatus = "pickuped"
	BookingDelivered BookingStatus = "delivered"
)

// Label returns the human-readable form of the status.
func (s BookingStatus) Label() string {
	if s == BookingPickedUp {
		return "picked up"
	}
	return string(s)
}

// Valid reports whether s is one of the known wire values.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingPickedUp, BookingDelivered:
		return true
	}
	return false
}

// BookingStatuses lists every assignable status, in lifecycle order.
func BookingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed, BookingPickedUp, BookingDelivered}
}

// Money tolerates the backend sending amounts as either a JSON number or a
// numeric string.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*m = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*m = Money(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Money(f)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

type BookingUser struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type BookingItem struct {
	ID       int64   `json:"id"`
	Quantity int     `json:"quantity"`
	Product  Product `json:"product"`
}

type Booking struct {
	ID            int64         `json:"id"`
	User          BookingUser   `json:"user"`
	PickupDate    string        `json:"pickupDate,omitempty"`
	DeliveryDate  string        `json:"deliveryDate,omitempty"`
	FullAddress   string        `json:"fullAddress,omitempty"`
	Area          string        `json:"area,omitempty"`
	Pincode       string        `json:"pincode,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	PaymentStatus string        `json:"paymentStatus,omitempty"`
	IsPaid        bool          `json:"isPaid"`
	Items         []BookingItem `json:"items,omitempty"`
	Amount        Money         `json:"amount"`
	Status        BookingStatus `json:"status"`
	CreatedAt     string        `json:"createdAt,omitempty"`
}

// BookingStatusUpdate is the PATCH /bookings/:id/status payload.
type BookingStatusUpdate struct {
	Status BookingStatus `json:"status"`
	IsPaid bool          `json:"isPaid"`
}
