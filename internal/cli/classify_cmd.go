package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/homedesigns/internal/cli/formatter"
	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/alexanderramin/homedesigns/internal/onboarding"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// errNotSubmittable is returned when the collected answers leave the form
// incomplete, e.g. "other" with a blank profession.
var errNotSubmittable = errors.New("classification is incomplete")

func newClassifyCmd(app *App) *cobra.Command {
	var accessible bool
	var userType, subCategory, otherText string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Answer the onboarding questions without the full-screen UI",
		Long: `Asks whether you are a personal or professional user and what best
describes your needs. Pass --user-type and --sub-category to skip the prompts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out := cmd.OutOrStdout()

			var answers classifyAnswers
			if userType != "" || subCategory != "" {
				answers = classifyAnswers{
					userType:    domain.UserType(userType),
					subCategory: domain.SubCategory(subCategory),
					otherText:   otherText,
				}
			} else {
				prompted, err := promptClassification(ctx, app, out, accessible || !app.IsInteractive())
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(out, formatter.Dim("Cancelled."))
					return nil
				}
				if err != nil {
					return err
				}
				answers = prompted
			}

			rec, err := submitAnswers(ctx, app, answers)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatSubmitted(rec))
			return nil
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, "use plain line-based prompts (screen readers, pipes)")
	cmd.Flags().StringVar(&userType, "user-type", "", "personal or professional")
	cmd.Flags().StringVar(&subCategory, "sub-category", "", "one of the options for the user type (see the options command)")
	cmd.Flags().StringVar(&otherText, "other", "", "profession, required with --sub-category other")

	return cmd
}

func promptClassification(ctx context.Context, app *App, out io.Writer, accessible bool) (classifyAnswers, error) {
	var a classifyAnswers
	form := classifyForm(&a).
		WithAccessible(accessible).
		WithInput(app.Stdin).
		WithOutput(out)
	if err := form.RunWithContext(ctx); err != nil {
		return classifyAnswers{}, err
	}
	return a, nil
}

// submitAnswers replays the answers through an onboarding.Form so the same
// rules apply as in the dialog, then submits it.
func submitAnswers(ctx context.Context, app *App, a classifyAnswers) (domain.Record, error) {
	form := onboarding.New(onboarding.Options{Open: true, Sink: app.Sink})

	if err := form.SelectUserType(a.userType); err != nil {
		return domain.Record{}, err
	}
	if err := form.SelectSubCategory(a.subCategory); err != nil {
		return domain.Record{}, err
	}
	if form.NeedsOtherText() {
		form.SetOtherText(a.otherText)
	}
	if !form.Submittable() {
		return domain.Record{}, fmt.Errorf("%w: please specify your profession", errNotSubmittable)
	}

	rec := form.Snapshot()
	ctx, cancel := submitContext(ctx, app)
	defer cancel()
	if _, err := form.Submit(ctx); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}
