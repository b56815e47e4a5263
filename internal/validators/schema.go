package validators

import (
	"fmt"
	"strings"
)

// Schema declares the field shape of one resource's request bodies:
// the fields a create must carry and the whitelist of fields a patch may
// change. One reusable routine checks any body against any schema, so the
// per-resource handlers carry data instead of validation code.
type Schema struct {
	// Required lists the create fields in declaration order; the first
	// missing one is the one named in the error.
	Required []string

	// Updatable is the whitelist of fields a PATCH body may set.
	Updatable []string
}

// ValidateCreate checks that every required field is present and
// non-empty in body. The first violation (in schema declaration order)
// produces the error; later fields are not inspected.
func (s Schema) ValidateCreate(body map[string]any) error {
	for _, field := range s.Required {
		if isEmptyValue(body[field]) {
			return &ValidationError{
				Message: fmt.Sprintf("Missing '%s' in request body", field),
			}
		}
	}

	return nil
}

// ValidateUpdate extracts the updatable fields carried by a PATCH body.
// It returns a map holding only the whitelisted fields with meaningful
// (non-empty) values — the merge set for a partial update. A body that
// supplies no meaningful whitelisted value at all is rejected, whether the
// keys are absent entirely or present with empty values.
func (s Schema) ValidateUpdate(body map[string]any) (map[string]any, error) {
	updates := make(map[string]any, len(s.Updatable))
	for _, field := range s.Updatable {
		value, ok := body[field]
		if !ok || isEmptyValue(value) {
			continue
		}
		updates[field] = value
	}

	if len(updates) == 0 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Request body must contain %s", s.updatableList()),
		}
	}

	return updates, nil
}

// updatableList renders the whitelist as "'a', 'b' or 'c'" for error messages.
func (s Schema) updatableList() string {
	quoted := make([]string, len(s.Updatable))
	for i, f := range s.Updatable {
		quoted[i] = "'" + f + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

// isEmptyValue implements the "falsy" notion used by both checks: absent
// keys, nulls, empty strings, zero numbers and false are all empty.
func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	default:
		return false
	}
}
