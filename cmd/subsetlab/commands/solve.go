package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	automaton "github.com/glipR/languagelab-sub002"
)

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the complete conversion table for the lesson automaton",
		RunE: func(cmd *cobra.Command, args []string) error {
			lesson, err := loadLesson()
			if err != nil {
				return err
			}
			table, err := automaton.Determinize(lesson.Automaton(), lesson.Alphabet())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			labels := make([]string, 0, len(lesson.Alphabet())+1)
			labels = append(labels, "")
			for _, c := range lesson.Alphabet() {
				labels = append(labels, string(c))
			}
			fmt.Fprintln(w, strings.Join(labels, "\t"))

			for _, row := range table.Rows() {
				if row.Header.IsEmpty() {
					continue
				}
				cells := make([]string, 0, len(row.Cells)+1)
				header := row.Header.String()
				if automaton.IsAcceptingSet(lesson.Automaton(), row.Header) {
					header = "*" + header
				}
				cells = append(cells, header)
				for _, cell := range row.Cells {
					cells = append(cells, cell.String())
				}
				fmt.Fprintln(w, strings.Join(cells, "\t"))
			}
			return w.Flush()
		},
	}
	return cmd
}
