package voucherimg

import "github.com/abicrealty/voucher-api/pkg/money"

// Document describes the printable voucher layout handed to the renderer.
// It is built from an already-validated voucher snapshot; the renderer never
// consults the database.
type Document struct {
	Kind           string // "CASH VOUCHER" or "CHEQUE VOUCHER"
	CompanyName    string
	CompanyAddress string
	LogoDataURL    string
	Number         string
	Fields         []Field
	Rows           []Row
	Total          money.Parts
	Signatures     []SignatureBlock
}

// Field is a labelled header value (Paid to, Date, ...)
type Field struct {
	Label string
	Value string
}

// Row is one particulars line with its formatted amount
type Row struct {
	Description string
	Amount      money.Parts
}

// SignatureBlock is one signature slot at the foot of the voucher
type SignatureBlock struct {
	ImageDataURL string // optional base64 data URL
	Name         string
	Caption      string // e.g. "Received by", "Approved by"
	Date         string
}
