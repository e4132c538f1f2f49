package mailservice

// BookingConfirmation payload письма подтверждения записи
type BookingConfirmation struct {
	Recipient    string   `json:"recipient"`
	BusinessName string   `json:"businessName"`
	ServiceName  string   `json:"serviceName"`
	Date         string   `json:"date"`      // "2026-09-15"
	StartTime    string   `json:"startTime"` // "10:00"
	Price        *float64 `json:"price,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Reference    string   `json:"reference"` // публичный UUID записи
}
