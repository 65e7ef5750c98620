package notify

import (
	"fmt"
	"html"
	"strings"

	"sebet/internal/domain"
)

// MaskContact hides all but the last 4 characters of a contact identifier
// before it is sent to the third-party channel.
func MaskContact(contact string) string {
	runes := []rune(contact)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}

// FormatOrderCreated renders an operator-facing summary of a new order.
// All user-supplied text is HTML-escaped before it is embedded in the
// HTML-parse-mode payload.
func FormatOrderCreated(o domain.Order) string {
	var b strings.Builder

	b.WriteString("<b>New order</b> ")
	b.WriteString(html.EscapeString(o.ID))
	b.WriteString("\n")

	for _, item := range o.Items {
		fmt.Fprintf(&b, "• %s × %d — %.2f\n",
			html.EscapeString(item.ProductName.Get(domain.DefaultLanguage)),
			item.Quantity,
			item.Price*float64(item.Quantity),
		)
	}

	fmt.Fprintf(&b, "Total: <b>%.2f</b>\n", o.Total)
	fmt.Fprintf(&b, "Contact: %s %s\n",
		html.EscapeString(string(o.Contact.Channel)),
		html.EscapeString(MaskContact(o.Contact.Value)),
	)
	if o.Contact.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", html.EscapeString(o.Contact.Name))
	}

	return b.String()
}

// FormatStatusUpdate renders an operator-facing status change line.
func FormatStatusUpdate(o domain.Order, previous domain.OrderStatus) string {
	return fmt.Sprintf("<b>Order</b> %s: %s → %s",
		html.EscapeString(o.ID),
		html.EscapeString(string(previous)),
		html.EscapeString(string(o.Status)),
	)
}
