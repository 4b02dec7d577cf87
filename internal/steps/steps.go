// Package steps implements the step catalog for Loom: the closed set of
// pipeline step types, their descriptions, and their behavior — either a pure
// text transform or a prompt template completed by the generation backend.
package steps

// Type identifies a pipeline step behavior.
type Type string

// The recognized step types.
const (
	TypeClean            Type = "clean"
	TypeSummarize        Type = "summarize"
	TypeExtractKeypoints Type = "extract_keypoints"
	TypeTagCategory      Type = "tag_category"
	TypeSentiment        Type = "sentiment"
	TypeGenerateTitle    Type = "generate_title"
)

// Spec is one ordered entry in a workflow's step sequence.
type Spec struct {
	Type Type `json:"type"`
}

// Definition describes a step type's behavior. Generation steps carry a
// Prompt template; pure steps carry a Transform. Exactly one of the two is
// set for every catalog entry.
type Definition struct {
	Type           Type
	Description    string
	UsesGeneration bool
	Prompt         func(input string) string
	Transform      func(input string) string
}

// Entry is the catalog listing shape exposed to clients.
type Entry struct {
	Type           Type   `json:"type"`
	Description    string `json:"description"`
	UsesGeneration bool   `json:"uses_generation"`
}

// types fixes the catalog enumeration order.
var types = []Type{
	TypeClean,
	TypeSummarize,
	TypeExtractKeypoints,
	TypeTagCategory,
	TypeSentiment,
	TypeGenerateTitle,
}

var catalog = map[Type]Definition{
	TypeClean: {
		Type:        TypeClean,
		Description: "Clean and normalize text",
		Transform:   Clean,
	},
	TypeSummarize: {
		Type:           TypeSummarize,
		Description:    "Generate a concise summary",
		UsesGeneration: true,
		Prompt:         summarizePrompt,
	},
	TypeExtractKeypoints: {
		Type:           TypeExtractKeypoints,
		Description:    "Extract key points as a bullet list",
		UsesGeneration: true,
		Prompt:         extractKeypointsPrompt,
	},
	TypeTagCategory: {
		Type:           TypeTagCategory,
		Description:    "Assign category tags",
		UsesGeneration: true,
		Prompt:         tagCategoryPrompt,
	},
	TypeSentiment: {
		Type:           TypeSentiment,
		Description:    "Analyze sentiment and tone",
		UsesGeneration: true,
		Prompt:         sentimentPrompt,
	},
	TypeGenerateTitle: {
		Type:           TypeGenerateTitle,
		Description:    "Generate a descriptive title",
		UsesGeneration: true,
		Prompt:         generateTitlePrompt,
	},
}

// Lookup resolves a step type against the catalog.
func Lookup(t Type) (Definition, bool) {
	def, ok := catalog[t]
	return def, ok
}

// Known reports whether t is a registered step type.
func Known(t Type) bool {
	_, ok := catalog[t]
	return ok
}

// Types returns all registered step types in enumeration order.
func Types() []Type {
	return types
}

// Catalog returns the listing entry for every registered step type, in
// enumeration order.
func Catalog() []Entry {
	entries := make([]Entry, 0, len(types))
	for _, t := range types {
		def := catalog[t]
		entries = append(entries, Entry{
			Type:           def.Type,
			Description:    def.Description,
			UsesGeneration: def.UsesGeneration,
		})
	}
	return entries
}
