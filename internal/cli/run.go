package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"agingd/internal/orchestrator"
)

func subjectFlags(cmd *cobra.Command, s *orchestrator.Subject, suffix string) {
	cmd.Flags().IntVar(&s.Age, "age"+suffix, 0, "Age in years")
	cmd.Flags().IntVar(&s.Gender, "gender"+suffix, 0, "Gender code: 0=male 1=female")
	cmd.Flags().IntVar(&s.Race, "race"+suffix, 0, "Race code: 0=white 1=black 2=asian 3=indian 4=other")
	_ = cmd.MarkFlagRequired("age" + suffix)
}

func newAgeCmd(o *options) *cobra.Command {
	var s orchestrator.Subject
	cmd := &cobra.Command{
		Use:     "age",
		Short:   "Age a dataset face matching the subject and print the result as JSON",
		Example: "  agingd age --age 25 --gender 0 --race 0",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), o, func(ctx context.Context, a *app) (orchestrator.Outcome, error) {
				return a.RunAgeProgression(ctx, s)
			})
		},
	}
	subjectFlags(cmd, &s, "")
	return cmd
}

type pairRun func(a *app, ctx context.Context, x, y orchestrator.Subject, length int) (orchestrator.Outcome, error)

func newPairCmd(o *options, use, short string, run pairRun) *cobra.Command {
	var x, y orchestrator.Subject
	var length int
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: "  agingd " + use + " --age-1 10 --gender-1 1 --race-1 2 --age-2 60 --gender-2 0 --race-2 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(), o, func(ctx context.Context, a *app) (orchestrator.Outcome, error) {
				return run(a, ctx, x, y, length)
			})
		},
	}
	subjectFlags(cmd, &x, "-1")
	subjectFlags(cmd, &y, "-2")
	cmd.Flags().IntVar(&length, "length", 0, "Frames to generate (default 10)")
	return cmd
}

func newMorphCmd(o *options) *cobra.Command {
	return newPairCmd(o, "morph", "Morph between two dataset faces and print the frames as JSON", (*app).RunMorph)
}

func newKidsCmd(o *options) *cobra.Command {
	return newPairCmd(o, "kids", "Synthesize kids of two dataset faces and print the frames as JSON", (*app).RunKids)
}

// runOnce wires the app, runs a single request and prints its response.
func runOnce(ctx context.Context, o *options, run func(context.Context, *app) (orchestrator.Outcome, error)) error {
	a, err := buildApp(ctx, o.cfg, o.log, nil)
	if err != nil {
		return err
	}
	defer a.Close()
	out, err := run(ctx, a)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Response())
}
