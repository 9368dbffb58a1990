package main

import (
	"context"
	"fmt"
	"io"

	"github.com/flashnotes/flashnotes/internal/command"
	"github.com/flashnotes/flashnotes/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// cli carries the state shared by the root command and its subcommands.
type cli struct {
	fs         afero.Fs
	configFile string
	app        *application
}

// run executes the command line in args and returns the process exit code.
func run(args []string, fsys afero.Fs, stdout, stderr io.Writer) int {
	c := &cli{fs: fsys}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if c.app != nil {
		c.app.cleanup()
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s %s\n", ui.RenderFail("Error:"), ui.UserMessage(err))
	}
	return ui.ExitCode(err)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "flashnotes",
		Short: "Manage question and answer flashcards",
		Long: `FlashNotes keeps a collection of flashcards, each with a question, an
answer and optional tags. Every tag forms a deck.

Indices accepted by edit and delete are the one-based positions shown by
list. Pass --deck or --find to edit and delete to pick from a filtered list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := initializeApp(cmd.Context(), c.configFile, c.fs)
			if err != nil {
				return err
			}
			c.app = app
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: flashnotes.{yaml,toml,json} in . or ~/.config/flashnotes)")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", command.ErrInvalidCommandFormat, err)
	})

	root.AddCommand(
		newAddCmd(c),
		newEditCmd(c),
		newDeleteCmd(c),
		newListCmd(c),
		newFindCmd(c),
		newClearCmd(c),
		newDecksCmd(c),
	)
	return root
}

// exactArgs is cobra.ExactArgs reporting ErrInvalidCommandFormat.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d argument(s), got %d",
				command.ErrInvalidCommandFormat, cmd.Name(), n, len(args))
		}
		return nil
	}
}

// minimumArgs is cobra.MinimumNArgs reporting ErrInvalidCommandFormat.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: %s expects at least %d argument(s)",
				command.ErrInvalidCommandFormat, cmd.Name(), n)
		}
		return nil
	}
}

// execute runs cmd through the service and prints its feedback.
func (c *cli) execute(cobraCmd *cobra.Command, cmd command.Command) (command.Result, error) {
	result, err := c.app.service.Execute(cobraCmd.Context(), cmd)
	if err != nil {
		return result, err
	}
	out := cobraCmd.OutOrStdout()
	if result.Changed {
		fmt.Fprintf(out, "%s %s\n", ui.RenderPass("✓"), result.Feedback)
	} else {
		fmt.Fprintln(out, result.Feedback)
	}
	return result, nil
}

// printFlashcards prints the currently displayed flashcards.
func (c *cli) printFlashcards(cobraCmd *cobra.Command) {
	fmt.Fprintln(cobraCmd.OutOrStdout(), ui.FormatFlashcards(c.app.service.FilteredFlashcards()))
}
