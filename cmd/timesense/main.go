// Command timesense is a demo CLI over the resolver and calendar packages.
// It carries no API contract; the library packages are the product.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hrygo/timesense/calendar"
	"github.com/hrygo/timesense/format"
	"github.com/hrygo/timesense/internal/profile"
	"github.com/hrygo/timesense/resolver"
)

var (
	refFlag     string
	strictFlag  bool
	noColorFlag bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "timesense",
		Short:         "Resolve natural-language date phrases to concrete instants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&refFlag, "ref", "", "reference instant for relative phrases (default: now)")
	root.PersistentFlags().BoolVar(&strictFlag, "strict", false, "disable the generic date-literal fallback")
	root.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	root.AddCommand(newParseCmd(), newAddCmd(), newDiffCmd(), newBoundsCmd())
	return root
}

// loadOptions merges the environment profile with command-line flags.
// Flags win.
func loadOptions() (*resolver.Options, error) {
	prof, err := profile.FromEnv()
	if err != nil {
		return nil, err
	}

	if noColorFlag || !prof.Color {
		color.NoColor = true
	}

	opts := &resolver.Options{Strict: strictFlag || prof.Strict}
	if refFlag != "" {
		ref, err := resolver.ParseInstant(refFlag)
		if err != nil {
			return nil, err
		}
		opts.Reference = ref
	}
	return opts, nil
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <phrase>",
		Short: "Resolve a phrase and print the instant, confidence and spans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions()
			if err != nil {
				return err
			}

			phrase := strings.Join(args, " ")
			result := resolver.ResolveNatural(phrase, opts)
			if !result.Resolved() {
				return errors.Errorf("could not resolve %q", phrase)
			}

			ref := opts.Reference
			if ref.IsZero() {
				ref = time.Now()
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen, color.Bold).Fprintln(out, format.Instant(result.Instant))
			fmt.Fprintf(out, "confidence: %.2f\n", result.Confidence)
			fmt.Fprintf(out, "relative:   %s\n", format.Relative(result.Instant, ref))
			if result.Remaining != "" {
				fmt.Fprintf(out, "unparsed:   %q\n", result.Remaining)
			}
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <timestamp> <amount> <unit>",
		Short: "Shift a timestamp by a signed amount of a unit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolver.ParseInstant(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid amount %q", args[1])
			}
			unit, err := calendar.ParseUnit(strings.ToLower(args[2]))
			if err != nil {
				return err
			}

			shifted, err := calendar.Add(t, amount, unit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Instant(shifted))
			return nil
		},
	}
}

func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <timestamp> <period>",
		Short: "Print the start and end boundaries of a day, week, month or year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := profile.FromEnv()
			if err != nil {
				return err
			}

			t, err := resolver.ParseInstant(args[0])
			if err != nil {
				return err
			}

			var start, end time.Time
			switch strings.ToLower(args[1]) {
			case "day":
				start, end = calendar.StartOfDay(t), calendar.EndOfDay(t)
			case "week":
				ws := prof.WeekStartDay()
				start, end = calendar.StartOfWeek(t, ws), calendar.EndOfWeek(t, ws)
			case "month":
				start, end = calendar.StartOfMonth(t), calendar.EndOfMonth(t)
			case "year":
				start, end = calendar.StartOfYear(t), calendar.EndOfYear(t)
			default:
				return errors.Errorf("unknown period %q", args[1])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start: %s\n", format.Instant(start))
			fmt.Fprintf(out, "end:   %s\n", format.Instant(end))
			return nil
		},
	}
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b> <unit>",
		Short: "Print the signed difference a − b in whole units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := resolver.ParseInstant(args[0])
			if err != nil {
				return err
			}
			b, err := resolver.ParseInstant(args[1])
			if err != nil {
				return err
			}
			unit, err := calendar.ParseUnit(strings.ToLower(args[2]))
			if err != nil {
				return err
			}

			diff, err := calendar.DifferenceIn(a, b, unit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}
