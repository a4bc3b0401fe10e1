package validation

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Messages flattens a Validate() error into the API's error list: one
// `"field": message` entry per failing field, sorted by field name so the
// order is deterministic. Errors that are not attributable to a single field
// become a single whole-object message.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%q: %v", field, fieldErrs[field]))
	}
	return messages
}
