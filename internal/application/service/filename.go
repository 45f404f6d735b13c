package service

import "strings"

var filenameReplacer = strings.NewReplacer(
	"/", "-",
	`\`, "-",
	":", "-",
	"*", "-",
	"?", "-",
	`"`, "-",
	"<", "-",
	">", "-",
	"|", "-",
)

// InvoiceFilename returns the download filename for an invoice number.
// Only the characters / \ : * ? " < > | are replaced.
func InvoiceFilename(invoiceNumber string) string {
	return "Invoice-" + filenameReplacer.Replace(invoiceNumber) + ".pdf"
}
