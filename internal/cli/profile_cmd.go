package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage nutrition targets and food preferences",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Profile"))
			if !p.HasCalorieTarget() {
				fmt.Println(formatter.Dim("No calorie target set. Run `mise profile set --calories <kcal>` to enable planning."))
				return nil
			}

			fmt.Printf("Calories  %s\n", formatter.Bold(formatter.Kcal(p.TargetCalories)))
			if p.HasMacroTargets() {
				fmt.Printf("Macros    %s\n", formatter.MacroLine(p.TargetProtein, p.TargetCarbs, p.TargetFats))
			} else {
				fmt.Printf("Macros    %s\n", formatter.Dim("derived from calories (45/30/25)"))
			}
			fmt.Printf("Likes     %s\n", tagList(p.LikedFoods))
			fmt.Printf("Dislikes  %s\n", tagList(p.DislikedFoods))
			return nil
		},
	}
}

func tagList(tags []string) string {
	if len(tags) == 0 {
		return formatter.Dim("—")
	}
	return strings.Join(tags, ", ")
}

func newProfileSetCmd(app *App) *cobra.Command {
	var calories, protein, carbs, fats float64
	var likes, dislikes []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update targets and preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("calories") {
				p.TargetCalories = calories
			}
			if cmd.Flags().Changed("protein") {
				p.TargetProtein = protein
			}
			if cmd.Flags().Changed("carbs") {
				p.TargetCarbs = carbs
			}
			if cmd.Flags().Changed("fats") {
				p.TargetFats = fats
			}
			if cmd.Flags().Changed("like") {
				p.LikedFoods = likes
			}
			if cmd.Flags().Changed("dislike") {
				p.DislikedFoods = dislikes
			}

			if err := app.Profile.Update(ctx, p); err != nil {
				return err
			}

			fmt.Println(formatter.StyleGreen.Render("Profile updated."))
			return nil
		},
	}

	cmd.Flags().Float64Var(&calories, "calories", 0, "Daily calorie target (kcal)")
	cmd.Flags().Float64Var(&protein, "protein", 0, "Daily protein target (g)")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "Daily carbs target (g)")
	cmd.Flags().Float64Var(&fats, "fats", 0, "Daily fats target (g)")
	cmd.Flags().StringSliceVar(&likes, "like", nil, "Preferred tags (replaces the stored list)")
	cmd.Flags().StringSliceVar(&dislikes, "dislike", nil, "Excluded tags (replaces the stored list)")

	return cmd
}
