package domain

import (
	"time"
)

// UnknownProvider is the placeholder provider name for bills whose remote
// row carries no usable provider field.
const UnknownProvider = "Unknown"

// HouseholdBill is the validated local representation of a recurring
// household bill (utilities, telecom, rent).
//
// BillType and Status are cast straight from the remote value with a
// default when missing; unlike receipt and device categories they are not
// normalized against the closed vocabulary at parse time.
type HouseholdBill struct {
	ID int64 `json:"id"`

	BillType string  `json:"billType"`
	Status   string  `json:"status"`
	Provider string  `json:"provider"`
	Amount   float64 `json:"amount"`

	DueDate     time.Time `json:"dueDate"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`

	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	SyncStatus string    `json:"syncStatus"`

	AccountNumber *string               `json:"accountNumber,omitempty"`
	PaidDate      *time.Time            `json:"paidDate,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
	Consumption   *HouseholdConsumption `json:"consumption,omitempty"`
}

// HouseholdConsumption is a metered reading attached to a bill. A reading
// is only ever fully populated: a value without a known unit is not usable
// for aggregation, so partial readings never exist.
type HouseholdConsumption struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}
