package domain

import "strings"

// Record is the classification emitted on a successful submit.
// OtherText is nil unless SubCategory is "other".
type Record struct {
	UserType    UserType    `json:"userType"`
	SubCategory SubCategory `json:"subCategory"`
	OtherText   *string     `json:"otherText"`
}

// NewRecord builds the emitted record. otherText is kept verbatim, and only
// when sub opens the free-text branch.
func NewRecord(u UserType, sub SubCategory, otherText string) Record {
	r := Record{UserType: u, SubCategory: sub}
	if sub.RequiresOtherText() {
		t := otherText
		r.OtherText = &t
	}
	return r
}

// Summary returns a short human description such as
// "Professional · Other (Home Stager)".
func (r Record) Summary() string {
	var b strings.Builder
	b.WriteString(r.UserType.Label())
	if r.SubCategory != "" {
		b.WriteString(" · ")
		b.WriteString(r.SubCategory.Label())
	}
	if r.OtherText != nil && strings.TrimSpace(*r.OtherText) != "" {
		b.WriteString(" (")
		b.WriteString(strings.TrimSpace(*r.OtherText))
		b.WriteString(")")
	}
	return b.String()
}
