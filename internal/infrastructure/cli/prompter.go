package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
	"github.com/doeshing/dpc-go/internal/questionnaire"
)

// Prompter asks the questionnaire on stdin/stdout. It implements
// ports.AnswerSource.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Name implements ports.AnswerSource.
func (p *Prompter) Name() string {
	return domain.SourceInteractive
}

// Collect walks the questionnaire. "b" goes back one question, "r" starts
// over and "?" shows help. When input ends early the answers gathered so far
// are returned and completeness is left to the caller.
func (p *Prompter) Collect(ctx context.Context) (domain.QuestionnaireAnswers, error) {
	session := questionnaire.NewSession()
	var section questionnaire.Section
	for !session.Done() {
		if err := ctx.Err(); err != nil {
			return session.Answers, err
		}
		q, _ := session.Current()
		if q.Section != section {
			section = q.Section
			fmt.Fprintf(p.out, "\n== %s ==\n", section)
		}
		step, total := session.Progress()
		fmt.Fprintf(p.out, "[%d/%d] %s\n", step, total, q.Prompt)
		for i, opt := range q.Options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt.Display)
		}
		fmt.Fprint(p.out, "> ")

		line, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.out)
				return session.Answers, nil
			}
			return session.Answers, err
		}

		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "b", "back":
			session = session.Back()
			continue
		case "r", "reset":
			session = session.Reset()
			section = ""
			continue
		case "?", "help":
			if q.Help != "" {
				fmt.Fprintf(p.out, "  %s\n", q.Help)
			}
			fmt.Fprintln(p.out, "  Type an option number or value, b to go back, r to start over.")
			continue
		}

		next, err := session.Answer(input)
		if err != nil {
			fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}
		session = next
	}
	return session.Answers, nil
}

var _ ports.AnswerSource = (*Prompter)(nil)
