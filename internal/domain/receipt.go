package domain

import (
	"time"
)

// SyncStatus values for locally stored entities. Parsers always emit
// SyncStatusSynced; the sync orchestrator overwrites it when a local edit
// diverges from the remote copy.
const (
	SyncStatusSynced  = "synced"
	SyncStatusPending = "pending"
)

// UnknownMerchant is the placeholder merchant name for receipts whose
// remote row carries no usable vendor field.
const UnknownMerchant = "Nepoznato"

// Receipt is the validated local representation of a fiscal receipt
// reconstructed from a remote row. Required fields are always concrete;
// optional fields are nil/empty when the remote row did not carry them.
type Receipt struct {
	ID int64 `json:"id"`

	MerchantName string    `json:"merchantName"`
	PIB          string    `json:"pib"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"` // HH:mm, derived from Date
	TotalAmount  float64   `json:"totalAmount"`
	Category     string    `json:"category"`

	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	SyncStatus string    `json:"syncStatus"`

	VATAmount *float64      `json:"vatAmount,omitempty"`
	Items     []ReceiptItem `json:"items,omitempty"`
	Notes     *string       `json:"notes,omitempty"`
	QRData    *string       `json:"qrData,omitempty"`
	ImageURL  *string       `json:"imageUrl,omitempty"`
	PDFURL    *string       `json:"pdfUrl,omitempty"`
}

// ReceiptItem is one line item on a receipt.
type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}
