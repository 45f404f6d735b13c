package enum

import (
	"database/sql/driver"
	"fmt"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

var invoiceStatusLabels = map[InvoiceStatus]string{
	InvoiceStatusDraft:         "Draft",
	InvoiceStatusSent:          "Terkirim",
	InvoiceStatusPartiallyPaid: "Dibayar Sebagian",
	InvoiceStatusPaid:          "Lunas",
	InvoiceStatusOverdue:       "Jatuh Tempo",
	InvoiceStatusCancelled:     "Dibatalkan",
}

func (s InvoiceStatus) String() string {
	return string(s)
}

// Label returns the Indonesian label printed on documents.
func (s InvoiceStatus) Label() string {
	if label, ok := invoiceStatusLabels[s]; ok {
		return label
	}
	return invoiceStatusLabels[InvoiceStatusDraft]
}

// IsValid checks if the status is a known value
func (s InvoiceStatus) IsValid() bool {
	_, ok := invoiceStatusLabels[s]
	return ok
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	if s == "" {
		return string(InvoiceStatusDraft), nil
	}
	return string(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = InvoiceStatusDraft
	case string:
		*s = InvoiceStatus(v)
	case []byte:
		*s = InvoiceStatus(v)
	default:
		return fmt.Errorf("enum: cannot scan %T into InvoiceStatus", value)
	}
	return nil
}
