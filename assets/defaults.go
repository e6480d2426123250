package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// MessagesYAML contains the localized status card texts.
//
//go:embed defaults/messages.yaml
var MessagesYAML []byte

// AnswersSchemaJSON is the JSON schema answers files must satisfy.
//
//go:embed defaults/answers.schema.json
var AnswersSchemaJSON []byte
