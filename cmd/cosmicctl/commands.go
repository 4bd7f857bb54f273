package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/daily-secrets/internal/domain/compatibility"
	"github.com/yanqian/daily-secrets/internal/domain/dreams"
	"github.com/yanqian/daily-secrets/internal/domain/numerology"
	"github.com/yanqian/daily-secrets/internal/domain/zodiac"
	"github.com/yanqian/daily-secrets/pkg/logger"
)

// services holds the engines the CLI talks to; no persistence is wired.
type services struct {
	numerology numerology.Service
	zodiac     zodiac.Service
	compat     compatibility.Service
	dreams     dreams.Service
}

func newServices(log *slog.Logger) *services {
	return &services{
		numerology: numerology.NewService(numerology.Config{}, log),
		zodiac:     zodiac.NewService(log),
		compat:     compatibility.NewService(compatibility.Config{}, compatibility.NewScorer(nil), nil, log),
		dreams:     dreams.NewService(log),
	}
}

func newRootCommand() *cobra.Command {
	svc := newServices(logger.NewWithWriter(os.Stderr))

	root := &cobra.Command{
		Use:          "cosmicctl",
		Short:        "Numerology, zodiac, compatibility and dream readings from the terminal",
		SilenceUsage: true,
	}
	root.AddCommand(
		newLifePathCommand(svc),
		newPersonalYearCommand(svc),
		newNameCommand(svc),
		newZodiacCommand(svc),
		newCompatCommand(svc),
		newDreamCommand(svc),
	)
	return root
}

func newLifePathCommand(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:     "lifepath DATE",
		Short:   "Life path number for a birth date (YYYY-MM-DD or MM/DD/YYYY)",
		Example: "  cosmicctl lifepath 1990-03-25",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := svc.numerology.LifePath(cmd.Context(), numerology.LifePathRequest{BirthDate: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newPersonalYearCommand(svc *services) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:     "personal-year DATE",
		Short:   "Personal year number for a birth date",
		Example: "  cosmicctl personal-year 03/25/1990 --year 2024",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := svc.numerology.PersonalYear(cmd.Context(), numerology.PersonalYearRequest{BirthDate: args[0], Year: year})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "target year (defaults to the current year)")
	return cmd
}

func newNameCommand(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:     "name FULL NAME",
		Short:   "Expression, soul urge and personality numbers for a name",
		Example: `  cosmicctl name "John Smith"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := svc.numerology.Name(cmd.Context(), numerology.NameRequest{FullName: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}

func newZodiacCommand(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:     "zodiac DATE",
		Short:   "Sun sign for a birth date",
		Example: "  cosmicctl zodiac 1990-03-25",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sign, err := svc.zodiac.Resolve(cmd.Context(), zodiac.Request{BirthDate: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, sign)
		},
	}
}

func newCompatCommand(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:     "compat SIGN SIGN",
		Short:   "Compatibility score for two signs",
		Example: "  cosmicctl compat Aries Leo",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := svc.compat.Score(cmd.Context(), compatibility.Request{SignA: args[0], SignB: args[1]})
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
}

func newDreamCommand(svc *services) *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:     "dream [TEXT...]",
		Short:   "Rank the symbols in a dream description",
		Example: "  cosmicctl dream I was flying over the ocean\n  cosmicctl dream --demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := svc.dreams.Analyze(cmd.Context(), dreams.Request{Description: strings.Join(args, " "), Demo: demo})
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "return the fixed demo reading")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

