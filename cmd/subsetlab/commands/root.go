package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	automaton "github.com/glipR/languagelab-sub002"
)

var (
	lessonPath string
	verbose    bool
	noColor    bool

	logger *zap.Logger
)

var (
	passStyle  = color.New(color.FgGreen, color.Bold)
	failStyle  = color.New(color.FgRed, color.Bold)
	ruleStyle  = color.New(color.FgYellow, color.Bold)
	stateStyle = color.New(color.FgCyan)
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "subsetlab",
		Short:         "Grade and author NFA to DFA conversion lessons",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&lessonPath, "file", "f", "lesson.yaml", "lesson file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every check")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(checkCmd(), closureCmd(), stepCmd(), solveCmd())
	return root
}

func loadLesson(options ...automaton.LessonOption) (*automaton.Lesson, error) {
	lf, err := automaton.LoadLessonFile(lessonPath)
	if err != nil {
		return nil, err
	}
	lesson, err := lf.Build(append(options, automaton.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded lesson",
		zap.String("file", lessonPath),
		zap.Int("states", lesson.Automaton().NumStates()),
		zap.Int("rows", lesson.Table().Len()))
	return lesson, nil
}
