package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errMissingCommand = errors.New("missing command")

// newRootCmd builds the command tree around a tracker.
func newRootCmd(t *Tracker) *cobra.Command {
	root := &cobra.Command{
		Use:           "swole",
		Short:         "Track daily exercise goals from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errMissingCommand
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(addCmd(t))
	root.AddCommand(listCmd(t))
	root.AddCommand(doneCmd(t))
	root.AddCommand(deleteCmd(t))
	root.AddCommand(goalCmd(t))
	root.AddCommand(historyCmd(t))
	root.AddCommand(trackCmd(t))
	return root
}

func addCmd(t *Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <goal>",
		Short: "Start tracking an exercise with a daily goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := t.Add(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s with a daily goal of %s.\n", nameStyle.Render(args[0]), args[1])
			return nil
		},
	}
}

func listCmd(t *Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show today's progress for every exercise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := t.List()
			if err != nil {
				return err
			}
			renderList(cmd.OutOrStdout(), statuses)
			return nil
		},
	}
}

func doneCmd(t *Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "done <name> <count>",
		Short: "Log repetitions for today",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := t.Done(args[0], args[1])
			if err != nil {
				return err
			}
			renderProgress(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func deleteCmd(t *Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Stop tracking an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := t.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", nameStyle.Render(args[0]))
			return nil
		},
	}
}

func goalCmd(t *Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "goal <name> <goal>",
		Short: "Change the daily goal of an exercise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := t.Goal(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "New daily goal for %s: %s.\n", nameStyle.Render(args[0]), args[1])
			return nil
		},
	}
}

func historyCmd(t *Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "history <name>",
		Short: "Show the per-day counts stored for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := t.History(args[0])
			if err != nil {
				return err
			}
			renderHistory(cmd.OutOrStdout(), args[0], ex)
			return nil
		},
	}
}

func trackCmd(t *Tracker) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Log repetitions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTUI(t)
		},
	}
}
