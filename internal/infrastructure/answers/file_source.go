package answers

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/dpc-go/assets"
	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/ports"
	"github.com/doeshing/dpc-go/internal/questionnaire"
)

const schemaURL = "schema://dpc/answers.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// FileSource reads answers from a YAML or JSON document.
type FileSource struct {
	path string
}

// NewFileSource builds a source for path. Files ending in .json are parsed
// as JSON; anything else as YAML.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements ports.AnswerSource.
func (s *FileSource) Name() string {
	return domain.SourceFile
}

// Collect implements ports.AnswerSource.
func (s *FileSource) Collect(ctx context.Context) (domain.QuestionnaireAnswers, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuestionnaireAnswers{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.QuestionnaireAnswers{}, fmt.Errorf("read answers: %w", err)
	}
	answers, err := Parse(data, strings.EqualFold(filepath.Ext(s.path), ".json"))
	if err != nil {
		return domain.QuestionnaireAnswers{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return answers, nil
}

// Parse decodes and schema-validates an answers document. Missing keys are
// left unset so completeness is reported by the caller.
func Parse(data []byte, isJSON bool) (domain.QuestionnaireAnswers, error) {
	var doc any
	if isJSON {
		parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return domain.QuestionnaireAnswers{}, fmt.Errorf("invalid JSON: %w", err)
		}
		doc = parsed
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return domain.QuestionnaireAnswers{}, fmt.Errorf("invalid YAML: %w", err)
		}
	}
	if doc == nil {
		doc = map[string]any{}
	}

	schema, err := answersSchema()
	if err != nil {
		return domain.QuestionnaireAnswers{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return domain.QuestionnaireAnswers{}, fmt.Errorf("schema validation failed: %w", err)
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return domain.QuestionnaireAnswers{}, fmt.Errorf("answers must be a mapping")
	}
	var answers domain.QuestionnaireAnswers
	for key, value := range fields {
		raw, ok := value.(string)
		if !ok {
			return domain.QuestionnaireAnswers{}, fmt.Errorf("%s must be a string", key)
		}
		if err := questionnaire.Set(&answers, key, raw); err != nil {
			return domain.QuestionnaireAnswers{}, err
		}
	}
	return answers, nil
}

func answersSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(assets.AnswersSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse answers schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

var _ ports.AnswerSource = (*FileSource)(nil)
