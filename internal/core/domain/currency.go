package domain

// Currency represents a supported currency in the domain.
// Identity and code are immutable once a rate or expense references them; only IsActive changes.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Opaque identity
	Code       string `json:"code"`       // ISO-style, unique, e.g. "USD"
	Name       string `json:"name"`       // e.g. "US Dollar"
	Symbol     string `json:"symbol"`     // e.g. "$"
	IsActive   bool   `json:"isActive"`
	AuditFields
}
