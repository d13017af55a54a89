package adapt

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	jsonObjectRe  = regexp.MustCompile(`(?s)\{.*\}`)
	titleLineRe   = regexp.MustCompile(`(?i)Title[:\s]+(.*)`)
	descriptionRe = regexp.MustCompile(`(?is)Description[:\s]+(.*)`)
)

// adaptationSchemaDef constrains the structured reply to a non-empty
// title/description pair.
var adaptationSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string", "minLength": 1},
	},
	"required": []any{"title", "description"},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func adaptationSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://adapted-content.json", adaptationSchemaDef); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://adapted-content.json")
	})
	return compiledSchema, schemaErr
}

// parseAdaptation extracts the adapted title and description from
// generated text. It tries, in order: a schema-valid JSON object, labeled
// "Title:"/"Description:" lines, and finally the whole reply as the new
// description with the original title kept.
func parseAdaptation(text, originalTitle string) (title, description string) {
	if t, d, ok := parseJSONAdaptation(text); ok {
		return t, d
	}
	if t, d, ok := parseLabeledAdaptation(text, originalTitle); ok {
		return t, d
	}
	return originalTitle, strings.TrimSpace(text)
}

func parseJSONAdaptation(text string) (string, string, bool) {
	match := jsonObjectRe.FindString(text)
	if match == "" {
		return "", "", false
	}

	var parsed any
	if err := json.Unmarshal([]byte(match), &parsed); err != nil {
		return "", "", false
	}

	schema, err := adaptationSchema()
	if err != nil || schema.Validate(parsed) != nil {
		return "", "", false
	}

	obj := parsed.(map[string]any)
	return strings.TrimSpace(obj["title"].(string)), strings.TrimSpace(obj["description"].(string)), true
}

func parseLabeledAdaptation(text, originalTitle string) (string, string, bool) {
	dm := descriptionRe.FindStringSubmatch(text)
	if dm == nil {
		return "", "", false
	}
	description := strings.TrimSpace(dm[1])

	title := originalTitle
	if tm := titleLineRe.FindStringSubmatch(text); tm != nil {
		// The title match may run into the description label on the same
		// split; keep the first line only.
		line := strings.SplitN(tm[1], "\n", 2)[0]
		if t := strings.TrimSpace(line); t != "" {
			title = t
		}
	}
	return title, description, true
}
