package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	automaton "github.com/glipR/languagelab-sub002"
)

func closureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closure STATE...",
		Short: "Print the epsilon closure of a set of states",
		RunE: func(cmd *cobra.Command, args []string) error {
			lesson, err := loadLesson()
			if err != nil {
				return err
			}
			states := automaton.NewStateSet(args...)
			if states.IsEmpty() {
				states = lesson.StartSet()
			}
			closure := automaton.EpsilonClosure(lesson.Automaton(), states)
			stateStyle.Fprintln(cmd.OutOrStdout(), closure.String())
			return nil
		},
	}
	return cmd
}

func stepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step SYMBOL STATE...",
		Short: "Print the states reached from a set of states on one symbol",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lesson, err := loadLesson()
			if err != nil {
				return err
			}
			symbol := automaton.Symbol(args[0])
			if symbol.IsEpsilon() {
				return fmt.Errorf("step on %s: %w", symbol, automaton.ErrEpsilonInAlphabet)
			}
			states := automaton.NewStateSet(args[1:]...)
			if states.IsEmpty() {
				states = lesson.StartSet()
			}
			next := automaton.ReachableOnSymbol(lesson.Automaton(), states, symbol)
			stateStyle.Fprintln(cmd.OutOrStdout(), next.String())
			return nil
		},
	}
	return cmd
}
