package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoicePrintQuery_Amounts(t *testing.T) {
	q := InvoicePrintQuery{DPAmount: "500000", PelunasanAmount: ""}

	dp, pelunasan, err := q.Amounts()

	require.NoError(t, err)
	require.NotNil(t, dp)
	assert.Equal(t, "500000", dp.String())
	assert.Nil(t, pelunasan)
}

func TestInvoicePrintQuery_AmountsFraction(t *testing.T) {
	q := InvoicePrintQuery{PelunasanAmount: "1250000.50"}

	dp, pelunasan, err := q.Amounts()

	require.NoError(t, err)
	assert.Nil(t, dp)
	assert.Equal(t, "1250000.5", pelunasan.String())
}

func TestInvoicePrintQuery_AmountsInvalid(t *testing.T) {
	q := InvoicePrintQuery{DPAmount: "abc"}

	_, _, err := q.Amounts()

	assert.Error(t, err)
}

func TestLoginRequest_NormalizedEmail(t *testing.T) {
	r := LoginRequest{Email: "  Finance@AGSA.co.id "}
	assert.Equal(t, "finance@agsa.co.id", r.NormalizedEmail())
}
