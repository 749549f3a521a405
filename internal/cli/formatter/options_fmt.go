package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/homedesigns/internal/domain"
)

// FormatOptions renders the sub-category enumeration for each given user
// type, in order.
func FormatOptions(types ...domain.UserType) string {
	var b strings.Builder
	for i, u := range types {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(u.Label()))
		b.WriteString("\n")
		b.WriteString(Dim(u.Description()))
		b.WriteString("\n\n")
		width := 0
		for _, o := range u.Options() {
			width = max(width, len(o.Value))
		}
		for _, o := range u.Options() {
			b.WriteString(fmt.Sprintf("  %-*s  %s\n", width, string(o.Value), o.Label))
		}
	}
	return b.String()
}

// FormatSubmitted renders the acknowledgement printed after a submit.
func FormatSubmitted(rec domain.Record) string {
	return fmt.Sprintf("%s Thanks! Classified as %s\n",
		StyleGreen.Render("✔"), Bold(rec.Summary()))
}
