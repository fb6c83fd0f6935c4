package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snapfsm/fsm"
)

const defaultPrice = 50

var rootCmd = &cobra.Command{
	Use:   "turnstile [steps...]",
	Short: "Drive the coin turnstile state machine demo",
	Long: `Runs the classic coin turnstile on top of the persistent FSM engine.

Steps are given as arguments ("coin=50", "push") or scripted in a YAML
config file. Every trigger produces a fresh immutable snapshot; the log
shows the settled state and carried data after each one.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int("price", defaultPrice, "Coin value required to unlock")
	rootCmd.Flags().String("config", "", "YAML file with price and scripted steps")
	rootCmd.Flags().Bool("dot", false, "Print the machine's DOT graph and exit")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger writes to stderr so stdout stays free for the DOT output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, args []string) error {
	price, _ := cmd.Flags().GetInt("price")
	configPath, _ := cmd.Flags().GetString("config")
	dot, _ := cmd.Flags().GetBool("dot")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := newLogger(verbose)

	steps := make([]Step, 0, len(args))
	for _, arg := range args {
		step, err := parseStep(arg)
		if err != nil {
			return err
		}

		steps = append(steps, step)
	}

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		price = cfg.Price
		steps = append(steps, cfg.Steps...)
	}

	machine := newTurnstile(price)

	if dot {
		fmt.Print(machine.ToDOT())
		return nil
	}

	if len(steps) == 0 {
		log.Debug("no steps given, using built-in demo script")
		steps = []Step{{Action: "coin", Value: 20}, {Action: "coin", Value: price}, {Action: "push"}}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, step := range steps {
		var (
			next fsm.FSM
			err  error
		)

		switch step.Action {
		case "coin":
			log.Debug("inserting coin", "value", step.Value)
			next, err = machine.Trigger(ctx, eventCoinInserted, Coin{Value: step.Value})
		case "push":
			log.Debug("pushing")
			next, err = machine.Trigger(ctx, eventPush)
		default:
			return fmt.Errorf("unknown action %q in script", step.Action)
		}

		var noTransition *fsm.ErrNoTransition
		switch {
		case errors.As(err, &noTransition):
			log.Warn("event not accepted",
				"state", fmt.Sprint(noTransition.State),
				"event", string(noTransition.Event))
			continue
		case err != nil:
			return err
		}

		machine = next
		log.Info("settled",
			"state", fmt.Sprint(machine.Current()),
			"data", fmt.Sprint(machine.Data().UnwrapOr(nil)))
	}

	return nil
}

func parseStep(arg string) (Step, error) {
	switch {
	case arg == "push":
		return Step{Action: "push"}, nil
	case strings.HasPrefix(arg, "coin="):
		value, err := strconv.Atoi(strings.TrimPrefix(arg, "coin="))
		if err != nil {
			return Step{}, fmt.Errorf("bad coin step %q: %w", arg, err)
		}

		return Step{Action: "coin", Value: value}, nil
	default:
		return Step{}, fmt.Errorf("unknown step %q (want \"coin=<value>\" or \"push\")", arg)
	}
}
