package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mise/internal/cli/formatter"
	"github.com/alexanderramin/mise/internal/contract"
	"github.com/alexanderramin/mise/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect day plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanShowCmd(app),
		newPlanRegenCmd(app),
		newPlanAltsCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	var dateFlag string
	var usePrep bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a full day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			resp, err := app.Plans.Generate(ctx, contract.GeneratePlanRequest{Date: date, UsePrep: usePrep})
			if err != nil {
				return err
			}

			profile, _ := app.Profile.Get(ctx)
			fmt.Println(formatter.FormatDayPlan(resp.Date, &resp.Plan, profile))
			if resp.PrepApplied {
				fmt.Println(formatter.Dim("Scaled against the latest prep manifest."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Plan date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().BoolVar(&usePrep, "prep", false, "Scale meals against the latest prep manifest")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var dateFlag string
	var detail bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored plan for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			resp, err := app.Plans.Get(ctx, contract.GeneratePlanRequest{Date: date})
			if err != nil {
				return err
			}

			profile, _ := app.Profile.Get(ctx)
			fmt.Println(formatter.FormatDayPlan(resp.Date, &resp.Plan, profile))

			if detail {
				for i := range resp.Plan.Meals {
					fmt.Println(formatter.FormatMealDetail(&resp.Plan.Meals[i]))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Plan date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().BoolVar(&detail, "detail", false, "Include ingredients and instructions per meal")

	return cmd
}

func newPlanRegenCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "regen [slot]",
		Short: "Regenerate a single meal slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			var slot domain.MealType
			if len(args) == 1 {
				slot, err = resolveSlot(args[0])
				if err != nil {
					return err
				}
			} else {
				slot, err = pickSlot(app)
				if err != nil {
					return err
				}
			}

			resp, err := app.Plans.Regenerate(ctx, contract.RegenerateMealRequest{Date: date, Slot: slot})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatMealDetail(&resp.Replaced))
			profile, _ := app.Profile.Get(ctx)
			fmt.Println(formatter.FormatDayPlan(resp.Date, &resp.Plan, profile))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Plan date (YYYY-MM-DD, today, tomorrow)")

	return cmd
}

// pickSlot asks for the slot interactively when the terminal allows it.
func pickSlot(app *App) (domain.MealType, error) {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return "", fmt.Errorf("missing meal slot (breakfast, lunch or dinner)")
	}

	var picked string
	form := wizardSelectSlot(&picked)
	if err := form.Run(); err != nil {
		return "", err
	}
	return resolveSlot(picked)
}

func newPlanAltsCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "alts <slot>",
		Short: "Show calorie/macro-equivalent swaps for a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			slot, err := resolveSlot(args[0])
			if err != nil {
				return err
			}

			resp, err := app.Plans.Alternatives(ctx, contract.AlternativesRequest{Date: date, Slot: slot})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAlternatives(&resp.Current, resp.Alternatives))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Plan date (YYYY-MM-DD, today, tomorrow)")

	return cmd
}
