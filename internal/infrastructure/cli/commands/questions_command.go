package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/dpc-go/internal/questionnaire"
)

// NewQuestionsCommand lists the questionnaire.
func NewQuestionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the DPC questions and their allowed answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			listQuestions(cmd.OutOrStdout())
			return nil
		},
	}
}

func listQuestions(out io.Writer) {
	var section questionnaire.Section
	for _, q := range questionnaire.Questions() {
		if q.Section != section {
			section = q.Section
			fmt.Fprintf(out, "%s\n", section)
		}
		fmt.Fprintf(out, "  %-20s --%-22s %s\n", q.ID, q.Flag, q.Prompt)
		fmt.Fprintf(out, "  %-20s %-24s [%s]\n", "", "", strings.Join(q.Values(), "|"))
	}
}
