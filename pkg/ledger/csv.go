package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed export column order. Provider and reference come
// from record meta; everything else maps 1:1 to PaymentRecord fields.
var csvHeader = []string{
	"#", "Name", "Source", "Amount", "Currency",
	"Paid Date", "Settled Due Date", "Payment Method",
	"Provider", "Reference", "Notes",
}

// ExportCSV writes history records in the fixed column order. Quoting of
// delimiters and quote characters is handled by encoding/csv.
func ExportCSV(w io.Writer, records []PaymentRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("ledger: csv header: %w", err)
	}
	for i, rec := range records {
		row := []string{
			strconv.Itoa(i + 1),
			rec.DisplayName,
			rec.Source,
			rec.Amount.String(),
			rec.Currency,
			rec.PaidDate,
			rec.SettledDueDate,
			rec.PaymentMethod,
			rec.Meta["provider"],
			rec.Meta["reference"],
			rec.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ledger: csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
