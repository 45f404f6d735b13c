package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceFilename(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"INV/2024:001", "Invoice-INV-2024-001.pdf"},
		{"INV-001", "Invoice-INV-001.pdf"},
		{`a\b*c?d"e<f>g|h`, "Invoice-a-b-c-d-e-f-g-h.pdf"},
		{"..//", "Invoice-..--.pdf"},
		{"", "Invoice-.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, InvoiceFilename(tt.number))
		})
	}
}
