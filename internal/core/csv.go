package core

import (
	"strconv"
	"strings"
)

var vendorCSVHeaders = []string{
	"Vendor Name",
	"Type",
	"Contact Name",
	"Email",
	"Phone",
	"Website",
	"Vendor Currency",
	"Vendor Cost",
	"Converted Cost",
	"Converted Currency",
	"Contract Required",
	"Contract Signed",
	"Contract Signed Date",
	"Payment Description",
	"Payment Amount",
	"Payment Currency",
	"Payment Converted Amount",
	"Payment Converted Currency",
	"Payment Type",
	"Payment Due Date",
	"Payment Paid",
	"Payment Paid Date",
	"Refundable",
	"Notes",
}

// ExportVendorsCSV flattens vendors into CSV text: one row per payment, or
// a single row with empty payment fields for a vendor without payments, so
// every vendor appears at least once. Data cells are double-quoted with
// embedded quotes doubled.
func ExportVendorsCSV(vendors []Vendor) string {
	var rows [][]string
	for _, v := range vendors {
		currency := v.VendorCurrency
		if currency == "" {
			currency = "CAD"
		}
		converted := convertedCurrency(v)
		base := []string{
			v.VendorName,
			v.VendorType,
			v.ContactName,
			v.Email,
			v.Phone,
			v.Website,
			currency,
			FormatCurrency(VendorCost(v), currency),
			FormatCurrency(VendorConvertedCost(v), converted),
			converted,
			yesNo(v.ContractRequired),
			yesNo(v.ContractSigned),
			v.ContractSignedDate,
		}

		if len(v.Payments) == 0 {
			row := append(append([]string{}, base...),
				"", "", "", "", "", "", "", "", "", "",
				v.Notes)
			rows = append(rows, row)
			continue
		}
		for _, p := range v.Payments {
			convertedAmount := ""
			if p.AmountConverted != nil {
				convertedAmount = strconv.FormatFloat(*p.AmountConverted, 'f', -1, 64)
			}
			row := append(append([]string{}, base...),
				p.Description,
				strconv.FormatFloat(p.Amount, 'f', -1, 64),
				paymentCurrency(p, currency),
				convertedAmount,
				p.AmountConvertedCurrency,
				paymentTypeLabel(p.PaymentType),
				p.DueDate,
				yesNo(p.Paid),
				p.PaidDate,
				yesNo(p.Refundable),
				v.Notes)
			rows = append(rows, row)
		}
	}
	return buildCSV(vendorCSVHeaders, rows)
}

// ExportRSVPsCSV renders guest submissions with up to two plus-one columns.
func ExportRSVPsCSV(rsvps []RSVP) string {
	headers := []string{"Name", "Email", "Phone", "Attending", "Plus One 1", "Plus One 2", "Created At"}
	rows := make([][]string, 0, len(rsvps))
	for _, r := range rsvps {
		plusOne := func(i int) string {
			if i < len(r.Guests) {
				return r.Guests[i].Name
			}
			return ""
		}
		rows = append(rows, []string{
			r.Name,
			r.Email,
			r.Phone,
			yesNo(r.Attending),
			plusOne(0),
			plusOne(1),
			FormatDate(r.CreatedAt),
		})
	}
	return buildCSV(headers, rows)
}

// buildCSV joins a plain header row and quoted data rows with newlines, no
// trailing newline.
func buildCSV(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}

func convertedCurrency(v Vendor) string {
	for _, p := range v.Payments {
		if p.AmountConvertedCurrency != "" {
			return p.AmountConvertedCurrency
		}
	}
	return "CAD"
}

func paymentCurrency(p Payment, vendorCurrency string) string {
	if p.AmountCurrency != "" {
		return p.AmountCurrency
	}
	return vendorCurrency
}

func paymentTypeLabel(t PaymentType) string {
	switch t {
	case PaymentBankTransfer:
		return "Bank Transfer"
	case PaymentCash:
		return "Cash"
	default:
		return ""
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
