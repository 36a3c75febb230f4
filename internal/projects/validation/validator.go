// Package validation checks candidate project bodies before any entity is built.
package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	MsgBodyNotObject = "body must be a JSON object"
	MsgTitle         = "title must be a string with length >= 2"
	MsgSummary       = "summary must be a string"

	MinTitleLength = 2
)

// CreateInput is the schema-checked form of a create request.
type CreateInput struct {
	Title   string
	Summary string
}

// Validate returns human-readable problems with body, a value produced by
// decoding JSON into an empty interface. A nil or empty result means valid.
func Validate(body any) []string {
	var errs []string

	obj, ok := body.(map[string]any)
	if !ok {
		errs = append(errs, MsgBodyNotObject)
	}

	title, isString := obj["title"].(string)
	if !isString || utf8.RuneCountInString(strings.TrimSpace(title)) < MinTitleLength {
		errs = append(errs, MsgTitle)
	}

	if raw, present := obj["summary"]; present && raw != nil {
		if _, isString := raw.(string); !isString {
			errs = append(errs, MsgSummary)
		}
	}

	return errs
}

// Decode validates body and, when it conforms, returns the trimmed input.
func Decode(body any) (CreateInput, []string) {
	if errs := Validate(body); len(errs) > 0 {
		return CreateInput{}, errs
	}

	obj := body.(map[string]any)
	in := CreateInput{Title: strings.TrimSpace(obj["title"].(string))}
	if s, ok := obj["summary"].(string); ok {
		in.Summary = strings.TrimSpace(s)
	}
	return in, nil
}
