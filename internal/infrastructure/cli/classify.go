package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/dpc-go/internal/app"
	"github.com/doeshing/dpc-go/internal/application/assessment"
	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/infrastructure/answers"
	"github.com/doeshing/dpc-go/internal/ports"
	"github.com/doeshing/dpc-go/internal/presentation"
	"github.com/doeshing/dpc-go/internal/questionnaire"
)

type classifyFlags struct {
	values      map[string]*string
	aliases     map[string]*string
	aliasNames  map[string]string
	file        string
	interactive bool
	format      string
	locale      string
	color       string
	copyResult  bool
	noHistory   bool
}

func newClassifyCommand(container *app.Container) *cobra.Command {
	flags := classifyFlags{
		values:     make(map[string]*string),
		aliases:    make(map[string]*string),
		aliasNames: make(map[string]string),
	}

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify information by answering the DPC questionnaire",
		Long: "Answer the eight DPC questions with flags, an answers file (--file) or\n" +
			"interactively. Without flags or a file the questions are asked one by one.",
		Example: "  dpc classify --q1 yes --q2 no --q3 no --q4 no --confidentiality privada --q6 no --q7 medium --q8 no\n" +
			"  dpc classify --file answers.yaml --format json\n" +
			"  dpc classify --interactive --locale es",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, container, flags)
		},
	}

	for _, q := range questionnaire.Questions() {
		value := new(string)
		flags.values[q.ID] = value
		usage := fmt.Sprintf("%s (%s)", q.Prompt, strings.Join(q.Values(), "|"))
		cmd.Flags().StringVar(value, q.Flag, "", usage)
		alias := q.ID
		if q.ID == domain.FieldConfidentialityType {
			alias = "q5"
		}
		flags.aliases[q.ID] = new(string)
		flags.aliasNames[q.ID] = alias
		cmd.Flags().StringVar(flags.aliases[q.ID], alias, "", "Alias of --"+q.Flag)
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Read answers from a YAML or JSON file")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Ask the questions interactively")
	cmd.Flags().StringVarP(&flags.format, "format", "o", "", "Output format: human|json|yaml|html (default from config)")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "Message language: en|es (default from config)")
	cmd.Flags().StringVar(&flags.color, "color", "", "Colour output: auto|always|never (default from config)")
	cmd.Flags().BoolVarP(&flags.copyResult, "copy", "c", false, "Copy the result summary to the clipboard")
	cmd.Flags().BoolVar(&flags.noHistory, "no-history", false, "Do not record this classification")
	cmd.MarkFlagsMutuallyExclusive("file", "interactive")

	return cmd
}

func runClassify(cmd *cobra.Command, container *app.Container, flags classifyFlags) error {
	if container.AssessmentService == nil {
		return errors.New("assessment service unavailable")
	}
	cfg := container.Config
	out := cmd.OutOrStdout()

	locale := firstNonEmpty(flags.locale, cfg.EffectiveLocale())
	cards, err := presentation.New(locale)
	if err != nil {
		return err
	}
	renderer, err := NewRenderer(firstNonEmpty(flags.format, cfg.EffectiveFormat()), firstNonEmpty(flags.color, cfg.Preferences.Color))
	if err != nil {
		return err
	}

	source, err := selectSource(cmd.InOrStdin(), cmd.ErrOrStderr(), flags)
	if err != nil {
		return err
	}

	resp, err := container.AssessmentService.Run(cmd.Context(), assessment.Request{
		Source:          source,
		Cards:           cards,
		RecordHistory:   cfg.History.Enabled && !flags.noHistory,
		CopyToClipboard: flags.copyResult || cfg.Preferences.CopyToClipboard,
	})
	if err != nil {
		var incomplete *domain.IncompleteInputError
		if errors.As(err, &incomplete) {
			return fmt.Errorf("%w; use --help to see the question flags", err)
		}
		return err
	}

	if err := renderer.Render(out, resp.Result, resp.Card); err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	if resp.Copied {
		fmt.Fprintln(cmd.ErrOrStderr(), "Result copied to clipboard.")
	}
	return nil
}

func selectSource(in io.Reader, prompts io.Writer, flags classifyFlags) (ports.AnswerSource, error) {
	raw, err := questionFlagValues(flags)
	if err != nil {
		return nil, err
	}
	flagSource := answers.NewFlagSource(raw)

	switch {
	case flags.file != "":
		if flagSource.Any() {
			return nil, errors.New("--file cannot be combined with question flags")
		}
		return answers.NewFileSource(flags.file), nil
	case flags.interactive || !flagSource.Any():
		return NewPrompter(in, prompts), nil
	default:
		return flagSource, nil
	}
}

// questionFlagValues merges each question flag with its q-id alias. Giving
// both spellings is allowed only when they resolve to the same answer.
func questionFlagValues(flags classifyFlags) (map[string]string, error) {
	raw := make(map[string]string, len(flags.values))
	for _, q := range questionnaire.Questions() {
		primary := strings.TrimSpace(*flags.values[q.ID])
		alias := strings.TrimSpace(*flags.aliases[q.ID])
		switch {
		case alias == "":
			raw[q.ID] = primary
		case primary == "":
			raw[q.ID] = alias
		case sameAnswer(q, primary, alias):
			raw[q.ID] = primary
		default:
			return nil, fmt.Errorf("--%s %q conflicts with --%s %q", q.Flag, primary, flags.aliasNames[q.ID], alias)
		}
	}
	return raw, nil
}

func sameAnswer(q questionnaire.Question, a, b string) bool {
	va, errA := q.Parse(a)
	vb, errB := q.Parse(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	return va == vb
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
