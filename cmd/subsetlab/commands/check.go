package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	automaton "github.com/glipR/languagelab-sub002"
)

var errTableInvalid = errors.New("conversion table is not valid")

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the conversion table of the lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			var solution *automaton.Solution
			lesson, err := loadLesson(automaton.WithOnSolved(func(s automaton.Solution) {
				solution = &s
			}))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result := lesson.Check()
			if !result.Valid {
				failStyle.Fprint(out, "FAIL ")
				ruleStyle.Fprintf(out, "[%s] ", result.Rule)
				fmt.Fprintln(out, result.Reason)
				logger.Info("check failed", zap.String("file", lessonPath), zap.Stringer("rule", result.Rule))
				return errTableInvalid
			}

			passStyle.Fprintln(out, "PASS")
			fmt.Fprintf(out, "%d DFA states, accepting:", len(solution.States))
			for _, s := range solution.Accepting {
				fmt.Fprint(out, " ")
				stateStyle.Fprint(out, s.String())
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	return cmd
}
