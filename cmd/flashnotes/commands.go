package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/flashnotes/flashnotes/internal/command"
	"github.com/flashnotes/flashnotes/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(c *cli) *cobra.Command {
	var (
		question string
		answer   string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "add -q QUESTION -a ANSWER [-t TAG]...",
		Short: "Add a flashcard",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("question") || !cmd.Flags().Changed("answer") {
				return fmt.Errorf("%w: add requires --question and --answer", command.ErrInvalidCommandFormat)
			}
			q, err := domain.NewQuestion(question)
			if err != nil {
				return err
			}
			a, err := domain.NewAnswer(answer)
			if err != nil {
				return err
			}
			ts, err := domain.ParseTagSet(tags...)
			if err != nil {
				return err
			}

			_, err = c.execute(cmd, command.NewAddCommand(domain.NewFlashcard(q, a, ts)))
			return err
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "question of the flashcard")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "answer of the flashcard")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag of the flashcard (repeatable)")
	return cmd
}

// viewFlags select the list an index refers to.
type viewFlags struct {
	deck string
	find string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.deck, "deck", "", "resolve INDEX against the flashcards of this deck")
	cmd.Flags().StringVar(&f.find, "find", "", "resolve INDEX against the flashcards matching these keywords")
}

// apply narrows the displayed list before an indexed command runs.
func (f *viewFlags) apply(ctx context.Context, c *cli, cmd *cobra.Command) error {
	deckSet := cmd.Flags().Changed("deck")
	findSet := cmd.Flags().Changed("find")

	var view command.Command
	switch {
	case deckSet && findSet:
		return fmt.Errorf("%w: --deck and --find cannot be combined", command.ErrInvalidCommandFormat)
	case deckSet:
		name, err := domain.NewTag(f.deck)
		if err != nil {
			return err
		}
		view = command.NewListDeckCommand(name)
	case findSet:
		find, err := command.NewFindCommand(strings.Fields(f.find)...)
		if err != nil {
			return err
		}
		view = find
	default:
		return nil
	}

	_, err := c.app.service.Execute(ctx, view)
	return err
}

func newEditCmd(c *cli) *cobra.Command {
	var (
		question  string
		answer    string
		tags      []string
		clearTags bool
		view      viewFlags
	)

	cmd := &cobra.Command{
		Use:   "edit INDEX [-q QUESTION] [-a ANSWER] [-t TAG]... [--clear-tags]",
		Short: "Edit the flashcard at INDEX",
		Long: `Edit the flashcard at INDEX. Only the given fields change. Tags given with
-t replace all existing tags; --clear-tags removes them.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := command.ParseIndex(args[0])
			if err != nil {
				return err
			}

			var descriptor command.EditDescriptor
			if cmd.Flags().Changed("question") {
				q, err := domain.NewQuestion(question)
				if err != nil {
					return err
				}
				descriptor.Question = command.Some(q)
			}
			if cmd.Flags().Changed("answer") {
				a, err := domain.NewAnswer(answer)
				if err != nil {
					return err
				}
				descriptor.Answer = command.Some(a)
			}
			switch {
			case clearTags && cmd.Flags().Changed("tag"):
				return fmt.Errorf("%w: --tag and --clear-tags cannot be combined", command.ErrInvalidCommandFormat)
			case clearTags:
				descriptor.Tags = command.Some(domain.NewTagSet())
			case cmd.Flags().Changed("tag"):
				ts, err := domain.ParseTagSet(tags...)
				if err != nil {
					return err
				}
				descriptor.Tags = command.Some(ts)
			}

			edit, err := command.NewEditCommand(index, descriptor)
			if err != nil {
				return err
			}
			if err := view.apply(cmd.Context(), c, cmd); err != nil {
				return err
			}
			_, err = c.execute(cmd, edit)
			return err
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "new question")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "new answer")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "new tag (repeatable, replaces existing tags)")
	cmd.Flags().BoolVar(&clearTags, "clear-tags", false, "remove every tag")
	view.register(cmd)
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	var view viewFlags

	cmd := &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the flashcard at INDEX",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := command.ParseIndex(args[0])
			if err != nil {
				return err
			}
			if err := view.apply(cmd.Context(), c, cmd); err != nil {
				return err
			}
			_, err = c.execute(cmd, command.NewDeleteCommand(index))
			return err
		},
	}

	view.register(cmd)
	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	var deck string

	cmd := &cobra.Command{
		Use:   "list [--deck NAME]",
		Short: "List flashcards",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := command.NewListCommand()
			if cmd.Flags().Changed("deck") {
				name, err := domain.NewTag(deck)
				if err != nil {
					return err
				}
				list = command.NewListDeckCommand(name)
			}
			if _, err := c.execute(cmd, list); err != nil {
				return err
			}
			c.printFlashcards(cmd)
			return nil
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "only list the flashcards of this deck")
	return cmd
}

func newFindCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD...",
		Short: "List flashcards whose question contains any keyword",
		Args:  minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			find, err := command.NewFindCommand(args...)
			if err != nil {
				return err
			}
			if _, err := c.execute(cmd, find); err != nil {
				return err
			}
			c.printFlashcards(cmd)
			return nil
		},
	}
}

func newClearCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every flashcard and deck",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.execute(cmd, command.NewClearCommand())
			return err
		},
	}
}

func newDecksCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List decks with their flashcard count and statistics",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.execute(cmd, command.NewDecksCommand())
			return err
		},
	}
}
