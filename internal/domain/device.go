package domain

import (
	"time"
)

// DeviceStatusActive is the default status for devices arriving from the
// remote source without an explicit status. Device status is an open string
// at this layer; it is not validated against a vocabulary.
const DeviceStatusActive = "active"

// Device is the validated local representation of a registered household
// device (appliance, electronics) with its warranty information.
type Device struct {
	ID int64 `json:"id"`

	Brand          string    `json:"brand"`
	Category       string    `json:"category"`
	PurchaseDate   time.Time `json:"purchaseDate"`
	WarrantyMonths int       `json:"warrantyMonths"`
	WarrantyUntil  time.Time `json:"warrantyUntil"`
	Status         string    `json:"status"`

	// Reminders are populated by the reminders subsystem, never by the
	// row parsers. Always non-nil so callers can append directly.
	Reminders []Reminder `json:"reminders"`

	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	SyncStatus string    `json:"syncStatus"`

	SerialNumber         *string  `json:"serialNumber,omitempty"`
	ImageURL             *string  `json:"imageUrl,omitempty"`
	WarrantyTerms        *string  `json:"warrantyTerms,omitempty"`
	ServiceCenterName    *string  `json:"serviceCenterName,omitempty"`
	ServiceCenterAddress *string  `json:"serviceCenterAddress,omitempty"`
	ServiceCenterPhone   *string  `json:"serviceCenterPhone,omitempty"`
	ServiceCenterHours   *string  `json:"serviceCenterHours,omitempty"`
	Attachments          []string `json:"attachments,omitempty"`
	ReceiptID            *int64   `json:"receiptId,omitempty"`
}

// Reminder is a scheduled warranty or service reminder attached to a device.
type Reminder struct {
	ID      int64     `json:"id"`
	DueDate time.Time `json:"dueDate"`
	Message string    `json:"message"`
	Done    bool      `json:"done"`
}
