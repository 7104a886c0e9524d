// Package catalog holds the fixed, ordered stage list and the static content
// each stage engine plays through. Content is embedded at build time.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed content.toml
var contentTOML []byte

//go:embed schema.json
var schemaJSON []byte

// ErrInvalidContent is returned when catalog content fails validation.
var ErrInvalidContent = errors.New("catalog: invalid content")

// Color is the color tag of a stage card.
type Color string

const (
	ColorViolet Color = "violet"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorPink   Color = "pink"
)

// Stage IDs in play order.
const (
	StagePronouns   = 1
	StageLanguage   = 2
	StageScenario   = 3
	StageActions    = 4
	StageReflection = 5
)

// Stage describes one learning unit in the sequence.
type Stage struct {
	ID    int    `toml:"id"`
	Title string `toml:"title"`
	Icon  string `toml:"icon"`
	Color Color  `toml:"color"`
}

// Question is a multiple-choice item with a single correct option.
type Question struct {
	Text    string   `toml:"text"`
	Options []string `toml:"options"`
	Answer  int      `toml:"answer"`
}

// Phrase is a statement to judge as appropriate or not.
type Phrase struct {
	Text        string `toml:"text"`
	Appropriate bool   `toml:"appropriate"`
	Explanation string `toml:"explanation"`
}

// ScenarioOption is a response with a fixed star value.
type ScenarioOption struct {
	Text     string `toml:"text"`
	Stars    int    `toml:"stars"`
	Feedback string `toml:"feedback"`
}

type PronounContent struct {
	Prompt    string     `toml:"prompt"`
	Tip       string     `toml:"tip"`
	Questions []Question `toml:"questions"`
}

type LanguageContent struct {
	Prompt  string   `toml:"prompt"`
	Tip     string   `toml:"tip"`
	Phrases []Phrase `toml:"phrases"`
}

type ScenarioContent struct {
	Prompt      string           `toml:"prompt"`
	Title       string           `toml:"title"`
	Description string           `toml:"description"`
	Tip         string           `toml:"tip"`
	Options     []ScenarioOption `toml:"options"`
}

type ActionContent struct {
	Prompt    string     `toml:"prompt"`
	Tip       string     `toml:"tip"`
	Questions []Question `toml:"questions"`
}

type ReflectionContent struct {
	Prompt      string `toml:"prompt"`
	Placeholder string `toml:"placeholder"`
	Thanks      string `toml:"thanks"`
}

// Catalog is the full immutable content set.
type Catalog struct {
	Stages     []Stage           `toml:"stages"`
	Pronouns   PronounContent    `toml:"pronouns"`
	Language   LanguageContent   `toml:"language"`
	Scenario   ScenarioContent   `toml:"scenario"`
	Actions    ActionContent     `toml:"actions"`
	Reflection ReflectionContent `toml:"reflection"`
}

// Stage returns the descriptor for id.
func (c *Catalog) Stage(id int) (Stage, bool) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

// Len returns the number of stages.
func (c *Catalog) Len() int {
	return len(c.Stages)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(contentTOML)
	})
	return defaultCat, defaultErr
}

// Parse decodes and validates TOML catalog content.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrInvalidContent, err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidContent, err)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

// check enforces the rules the schema cannot express.
func (c *Catalog) check() error {
	for i, s := range c.Stages {
		if s.ID != i+1 {
			return fmt.Errorf("%w: stage at position %d has id %d", ErrInvalidContent, i+1, s.ID)
		}
	}
	for _, set := range [][]Question{c.Pronouns.Questions, c.Actions.Questions} {
		for _, q := range set {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return fmt.Errorf("%w: answer %d out of range for %q", ErrInvalidContent, q.Answer, q.Text)
			}
		}
	}
	return nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
	})
	return schema, schemaErr
}

// validateSchema checks decoded TOML against the embedded JSON Schema. The
// value is round-tripped through JSON so numbers have the shape the
// validator expects.
func validateSchema(raw map[string]any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return nil
}
