package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownUserType       = errors.New("unknown user type")
	ErrSubCategoryNotAllowed = errors.New("sub-category not allowed for user type")
	ErrNoUserType            = errors.New("user type not selected")
)

// UserType is the primary classification of a visitor. The zero value means
// no type has been chosen yet.
type UserType string

const (
	UserPersonal     UserType = "personal"
	UserProfessional UserType = "professional"
)

// UserTypes lists the selectable user types in display order.
var UserTypes = []UserType{UserPersonal, UserProfessional}

// SubCategory refines a UserType. Its valid domain depends on the owning type.
type SubCategory string

const (
	SubSingleProject       SubCategory = "single-project"
	SubOngoingProject      SubCategory = "ongoing-project"
	SubRealEstate          SubCategory = "real-estate"
	SubArchitecture        SubCategory = "architecture"
	SubInteriorDesign      SubCategory = "interior-design"
	SubLandscaping         SubCategory = "landscaping"
	SubPropertyDevelopment SubCategory = "property-development"
	SubOther               SubCategory = "other"
)

// Option is a selectable sub-category with its display label.
type Option struct {
	Value SubCategory
	Label string
}

var personalOptions = []Option{
	{Value: SubSingleProject, Label: "Single Project"},
	{Value: SubOngoingProject, Label: "Ongoing Project"},
}

var professionalOptions = []Option{
	{Value: SubRealEstate, Label: "Real Estate"},
	{Value: SubArchitecture, Label: "Architecture"},
	{Value: SubInteriorDesign, Label: "Interior Design"},
	{Value: SubLandscaping, Label: "Landscaping"},
	{Value: SubPropertyDevelopment, Label: "Property Development"},
	{Value: SubOther, Label: "Other"},
}

// ParseUserType converts s into a UserType, rejecting anything outside the
// enumeration.
func ParseUserType(s string) (UserType, error) {
	u := UserType(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUserType, s)
	}
	return u, nil
}

// ParseSubCategory converts s into a SubCategory owned by u.
func ParseSubCategory(u UserType, s string) (SubCategory, error) {
	if u == "" {
		return "", ErrNoUserType
	}
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUserType, string(u))
	}
	sub := SubCategory(s)
	if !u.Allows(sub) {
		return "", fmt.Errorf("%w: %q is not a %s option", ErrSubCategoryNotAllowed, s, u)
	}
	return sub, nil
}

// Valid reports whether u is one of the enumerated user types.
func (u UserType) Valid() bool {
	return u == UserPersonal || u == UserProfessional
}

// Options returns the ordered sub-category options for u. The returned slice
// is a copy; unknown or unset types have no options.
func (u UserType) Options() []Option {
	var src []Option
	switch u {
	case UserPersonal:
		src = personalOptions
	case UserProfessional:
		src = professionalOptions
	default:
		return nil
	}
	out := make([]Option, len(src))
	copy(out, src)
	return out
}

// Allows reports whether sub belongs to u's option list.
func (u UserType) Allows(sub SubCategory) bool {
	for _, o := range u.Options() {
		if o.Value == sub {
			return true
		}
	}
	return false
}

// Label returns the capitalised display name, e.g. "Professional".
func (u UserType) Label() string {
	switch u {
	case UserPersonal:
		return "Personal"
	case UserProfessional:
		return "Professional"
	default:
		return ""
	}
}

// Description returns the one-line blurb shown on the selection card.
func (u UserType) Description() string {
	switch u {
	case UserPersonal:
		return "Individual homeowners looking to redesign their spaces"
	case UserProfessional:
		return "Industry professionals and businesses in design and real estate"
	default:
		return ""
	}
}

// Label returns the display label for sub, or the raw value if it is not an
// enumerated option.
func (s SubCategory) Label() string {
	for _, u := range UserTypes {
		for _, o := range u.Options() {
			if o.Value == s {
				return o.Label
			}
		}
	}
	return string(s)
}

// RequiresOtherText reports whether sub opens the free-text branch.
func (s SubCategory) RequiresOtherText() bool {
	return s == SubOther
}
