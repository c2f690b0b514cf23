package queries

import (
	"fmt"

	"devion-storefront/internal/domain/checkout"
)

type SummaryLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type OrderSummaryView struct {
	Lines    []SummaryLine `json:"lines"`
	Subtotal string        `json:"subtotal"`
	Discount string        `json:"discount,omitempty"`
	Shipping string        `json:"shipping"`
	Total    string        `json:"total"`
	Stage    string        `json:"stage"`
	Method   string        `json:"method,omitempty"`
}

// NewOrderSummaryView projects the checkout snapshot into summary lines:
// one line per item, then subtotal, discount (omitted when zero), shipping
// and total. Pure projection; never mutates the state.
func NewOrderSummaryView(st *checkout.State) *OrderSummaryView {
	snap := st.Snapshot()

	var lines []SummaryLine
	for _, item := range snap.Items() {
		lines = append(lines, SummaryLine{
			Label:  fmt.Sprintf("%s x%d", item.DisplayName(), item.Quantity),
			Amount: FormatAmount(item.LineTotal()),
		})
	}

	lines = append(lines, SummaryLine{Label: "Subtotal", Amount: FormatAmount(snap.Subtotal())})
	view := &OrderSummaryView{
		Subtotal: FormatAmount(snap.Subtotal()),
		Shipping: FormatAmount(snap.Shipping()),
		Total:    FormatAmount(snap.Total()),
		Stage:    st.Stage().String(),
	}
	if snap.Discount().IsPositive() {
		view.Discount = "-" + FormatAmount(snap.Discount())
		lines = append(lines, SummaryLine{Label: "Discount", Amount: view.Discount})
	}
	lines = append(lines, SummaryLine{Label: "Shipping", Amount: view.Shipping})
	lines = append(lines, SummaryLine{Label: "Total", Amount: view.Total})
	view.Lines = lines

	if st.HasMethod() {
		view.Method = string(st.Method())
	}
	return view
}
