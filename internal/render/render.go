package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/fsenergy/till/internal/receipt"
)

// tapeWidth is the column width of the target receipt printer.
const tapeWidth = 40

// Profile is the business letterhead printed on every receipt.
// It is externally supplied via configuration.
type Profile struct {
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Currency string `yaml:"currency"`
}

var printer = message.NewPrinter(language.English)

// Amount formats a monetary value with the currency symbol and
// thousands separators, e.g. "₦100,000".
func Amount(symbol string, d decimal.Decimal) string {
	f, _ := d.Float64()
	return symbol + printer.Sprintf("%v", number.Decimal(f))
}

// Receipt writes the printable tape for a finalized receipt.
func Receipt(w io.Writer, p Profile, r receipt.Receipt) {
	divider := strings.Repeat("=", tapeWidth)
	rule := strings.Repeat("-", tapeWidth)

	fmt.Fprintln(w, divider)
	writeHeader(w, p)
	fmt.Fprintln(w, divider)

	fmt.Fprintf(w, "Receipt No: %s\n", r.ID)
	fmt.Fprintf(w, "Date: %s\n", r.Date.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Customer: %s\n", orDash(r.CustomerName))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-20.20s %3s %15s\n", "ITEM", "QTY", "AMOUNT")
	fmt.Fprintln(w, rule)
	for _, li := range r.Items {
		fmt.Fprintf(w, "%-20.20s %3d %15s\n", li.Name, li.Quantity, Amount(p.Currency, li.Subtotal()))
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-24.24s %15s\n", "TOTAL", Amount(p.Currency, r.Total))
	fmt.Fprintln(w)
	fmt.Fprintln(w, center("Thank you for your business!"))
}

// Session writes the operator's editable view of the in-progress sale,
// with product ids so lines can be edited or removed.
func Session(w io.Writer, p Profile, snap receipt.Snapshot) {
	rule := strings.Repeat("-", tapeWidth)

	fmt.Fprintf(w, "Receipt No: %s\n", snap.Number)
	fmt.Fprintf(w, "Customer: %s\n", orDash(snap.CustomerName))
	fmt.Fprintln(w, rule)
	if len(snap.Items) == 0 {
		fmt.Fprintln(w, "(no items)")
	}
	for _, li := range snap.Items {
		fmt.Fprintf(w, "[%d] %-16.16s %3d %14s\n", li.ProductID, li.Name, li.Quantity, Amount(p.Currency, li.Subtotal()))
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-24.24s %15s\n", "TOTAL", Amount(p.Currency, snap.Total))
}

// HistoryList writes the read-only admin audit listing.
func HistoryList(w io.Writer, p Profile, receipts []receipt.Receipt) {
	if len(receipts) == 0 {
		fmt.Fprintln(w, "(no receipts)")
		return
	}

	for _, r := range receipts {
		fmt.Fprintf(w, "Receipt: %s\n", r.ID)
		fmt.Fprintf(w, "Customer: %s\n", orDash(r.CustomerName))
		fmt.Fprintf(w, "Date: %s\n", r.Date.Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "Total: %s\n", Amount(p.Currency, r.Total))
		for _, li := range r.Items {
			fmt.Fprintf(w, "  %d x %s @ %s\n", li.Quantity, li.Name, Amount(p.Currency, li.Price))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d receipt(s)\n", len(receipts))
}

// writeHeader prints the centered business letterhead, skipping unset
// fields.
func writeHeader(w io.Writer, p Profile) {
	fmt.Fprintln(w, center(p.Name))
	if p.Address != "" {
		fmt.Fprintln(w, center(p.Address))
	}
	if p.Phone != "" {
		fmt.Fprintln(w, center("Phone: "+p.Phone))
	}
	if p.Email != "" {
		fmt.Fprintln(w, center("Email: "+p.Email))
	}
}

// center pads a line to the middle of the tape. Lines wider than the
// tape are left as-is.
func center(s string) string {
	pad := (tapeWidth - utf8.RuneCountInString(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
