// Package onboarding holds the classification form: the local state behind
// the onboarding dialog and the rules that decide when it can be submitted.
//
// A Form is owned by a single caller. All mutations are synchronous and none
// of its methods are safe for concurrent use.
package onboarding

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/homedesigns/internal/domain"
)

// Stage is the coarse position of the form in its lifecycle.
type Stage int

const (
	StageUnset Stage = iota
	StagePrimarySelected
	StageSubSelected
	StageSubmitted
)

func (s Stage) String() string {
	switch s {
	case StageUnset:
		return "unset"
	case StagePrimarySelected:
		return "primary-selected"
	case StageSubSelected:
		return "sub-selected"
	case StageSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Options configures a new Form.
type Options struct {
	// Open is the initial visibility requested by the host.
	Open bool
	// OnClose is called after a successful submit or an explicit Close.
	OnClose func()
	// Sink receives the record on submit. Nil discards it.
	Sink Sink
}

// Form is the classification dialog state.
type Form struct {
	userType    domain.UserType
	subCategory domain.SubCategory
	otherText   string

	open      bool
	submitted bool
	onClose   func()
	sink      Sink
}

// New creates an empty form.
func New(opts Options) *Form {
	sink := opts.Sink
	if sink == nil {
		sink = NoopSink{}
	}
	return &Form{
		open:    opts.Open,
		onClose: opts.OnClose,
		sink:    sink,
	}
}

// IsOpen reports whether the host currently shows the dialog.
func (f *Form) IsOpen() bool { return f.open }

// Show makes the dialog visible again with fresh state.
func (f *Form) Show() {
	f.clear()
	f.submitted = false
	f.open = true
}

// UserType returns the selected primary category, or "" when unset.
func (f *Form) UserType() domain.UserType { return f.userType }

// SubCategory returns the selected sub-category, or "" when unset.
func (f *Form) SubCategory() domain.SubCategory { return f.subCategory }

// OtherText returns the free text exactly as entered.
func (f *Form) OtherText() string { return f.otherText }

// SelectUserType sets the primary category and clears the sub-category and
// free text, even when u equals the current selection.
func (f *Form) SelectUserType(u domain.UserType) error {
	if !u.Valid() {
		return fmt.Errorf("select user type: %w: %q", domain.ErrUnknownUserType, string(u))
	}
	f.userType = u
	f.subCategory = ""
	f.otherText = ""
	return nil
}

// SelectSubCategory sets the sub-category. Values outside the current user
// type's options are rejected and leave the form unchanged.
func (f *Form) SelectSubCategory(sub domain.SubCategory) error {
	if _, err := domain.ParseSubCategory(f.userType, string(sub)); err != nil {
		return fmt.Errorf("select sub-category: %w", err)
	}
	f.subCategory = sub
	return nil
}

// SetOtherText stores text verbatim. It only matters when the sub-category is
// "other".
func (f *Form) SetOtherText(text string) {
	f.otherText = text
}

// Options lists the sub-categories valid for the current user type.
func (f *Form) Options() []domain.Option {
	return f.userType.Options()
}

// NeedsOtherText reports whether the free-text field is in play.
func (f *Form) NeedsOtherText() bool {
	return f.subCategory.RequiresOtherText()
}

// Submittable reports whether every required field is populated.
func (f *Form) Submittable() bool {
	if f.userType == "" || f.subCategory == "" {
		return false
	}
	if f.subCategory.RequiresOtherText() {
		return strings.TrimSpace(f.otherText) != ""
	}
	return true
}

// Stage reports where the form is in the selection flow.
func (f *Form) Stage() Stage {
	switch {
	case f.submitted:
		return StageSubmitted
	case f.subCategory != "":
		return StageSubSelected
	case f.userType != "":
		return StagePrimarySelected
	default:
		return StageUnset
	}
}

// Snapshot returns the record the form would emit right now.
func (f *Form) Snapshot() domain.Record {
	return domain.NewRecord(f.userType, f.subCategory, f.otherText)
}

// Submit emits the current record to the sink and closes the form.
// It returns false without side effects when the form is not submittable.
// On a sink error the form keeps its state and stays open.
func (f *Form) Submit(ctx context.Context) (bool, error) {
	if !f.Submittable() {
		return false, nil
	}
	rec := f.Snapshot()
	if err := f.sink.Emit(ctx, rec); err != nil {
		return false, fmt.Errorf("emit classification: %w", err)
	}
	f.submitted = true
	f.dismiss()
	return true, nil
}

// Reset clears all three fields. Used by the "Change" action.
func (f *Form) Reset() {
	f.clear()
}

// Close discards the state and notifies the host.
func (f *Form) Close() {
	if !f.open {
		return
	}
	f.dismiss()
}

func (f *Form) dismiss() {
	f.clear()
	f.open = false
	if f.onClose != nil {
		f.onClose()
	}
}

func (f *Form) clear() {
	f.userType = ""
	f.subCategory = ""
	f.otherText = ""
}
