package chat

import (
	"fmt"
	"strings"

	"github.com/tradescribe/backend/internal/domain"
)

// formatConfirmation renders the structured block prepended to the
// assistant reply when a trade was extracted. The same text is persisted
// and returned.
func formatConfirmation(d *domain.TradeDraft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Logged trade: %s\n", domain.NormalizeTicker(d.Ticker))
	fmt.Fprintf(&b, "Entry: $%.2f x %s on %s\n",
		d.EntryPrice, formatQuantity(d.Quantity), d.EntryDate.Format("2006-01-02"))

	if d.ExitPrice != nil {
		fmt.Fprintf(&b, "Exit: $%.2f", *d.ExitPrice)
		if d.ExitDate != nil {
			fmt.Fprintf(&b, " on %s", d.ExitDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
		pl := domain.ComputeProfitLoss(d.EntryPrice, d.ExitPrice, d.Quantity)
		fmt.Fprintf(&b, "P&L: $%.2f", *pl)
	} else {
		b.WriteString("Status: OPEN")
	}

	return b.String()
}

// formatQuantity drops a trailing ".00" so whole share counts read
// naturally while fractional quantities keep their precision.
func formatQuantity(q float64) string {
	s := fmt.Sprintf("%.2f", q)
	return strings.TrimSuffix(s, ".00")
}
