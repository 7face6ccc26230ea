package main

import (
	"github.com/spf13/cobra"

	"github.com/LianHaeming/weekplan/advisor"
	"github.com/LianHaeming/weekplan/models"
	"github.com/LianHaeming/weekplan/planner"
	"github.com/LianHaeming/weekplan/render"
)

type planFlags struct {
	hours      map[models.Category]*float64
	notes      string
	priorities []string
	format     string
	advice     bool
	style      string
	width      int
}

func newPlanCmd(a *app) *cobra.Command {
	f := &planFlags{hours: map[models.Category]*float64{}}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print a weekly plan for the given routine",
		Example: `  weekplan plan --study 3 --social 2
  weekplan plan --notes "night shifts" --advice
  weekplan plan --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, a, f)
		},
	}

	for _, c := range models.Categories {
		b := c.Bounds()
		f.hours[c] = cmd.Flags().Float64(string(c), b.Default,
			b.Label+" per day ("+models.FormatHours(b.Min)+"-"+models.FormatHours(b.Max)+")")
	}
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-text description of your routine")
	cmd.Flags().StringSliceVar(&f.priorities, "priority", []string{string(models.PriorityStudy), string(models.PriorityHealth)},
		"priority tags (Study, Health, Social Life, Sleep, Work)")
	cmd.Flags().StringVarP(&f.format, "format", "o", string(render.FormatTable), "output format: table, json or yaml")
	cmd.Flags().BoolVar(&f.advice, "advice", false, "ask the model for a suggestion")
	cmd.Flags().StringVar(&f.style, "style", "auto", "markdown style for advice in table output")
	cmd.Flags().IntVar(&f.width, "width", 80, "wrap width for advice")
	return cmd
}

func runPlan(cmd *cobra.Command, a *app, f *planFlags) error {
	format, err := render.ParseFormat(f.format)
	if err != nil {
		return err
	}

	routine := models.Routine{
		Study:      *f.hours[models.CategoryStudy],
		Health:     *f.hours[models.CategoryHealth],
		Social:     *f.hours[models.CategorySocial],
		Sleep:      *f.hours[models.CategorySleep],
		Work:       *f.hours[models.CategoryWork],
		Notes:      f.notes,
		Priorities: models.ParsePriorities(f.priorities),
	}.Clamped()

	doc := render.Document{Routine: routine, Plan: planner.Generate(routine)}

	var res advisor.Result
	if f.advice {
		res = advisor.New(cmd.Context(), a.cfg, a.logger).Suggest(cmd.Context(), routine.Notes)
		if res.OK() {
			doc.Advice = res.Text
		}
	}

	out := cmd.OutOrStdout()
	if err := render.WritePlan(out, format, doc); err != nil {
		return err
	}
	if format != render.FormatTable || !res.OK() {
		return nil
	}

	text, err := render.Advice(res.Text, f.style, f.width)
	if err != nil {
		// Fall back to the raw text rather than losing the suggestion.
		text = res.Text + "\n"
	}
	_, err = out.Write([]byte("\n" + text))
	return err
}
