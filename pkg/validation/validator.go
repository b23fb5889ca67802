// Package validation checks request payloads at the REST boundary
// before they reach the inference engine.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dhimarketer/newDirReact-sub000/pkg/family"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxPersons bounds one layout request; a family group sharing an
	// address never legitimately approaches this.
	MaxPersons = 500
	// MaxRelationships bounds the explicit edge list per request.
	MaxRelationships = 2000
)

func init() {
	validate = validator.New()
}

// ValidatePersons validates a person set for one computation: struct
// constraints plus PID uniqueness within the set.
func ValidatePersons(persons []family.Person) error {
	if len(persons) > MaxPersons {
		return fmt.Errorf("persons: maximum %d entries allowed, got %d", MaxPersons, len(persons))
	}

	seen := make(map[int]bool, len(persons))
	for i, p := range persons {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("persons[%d]: %w", i, formatValidationError(err))
		}
		if seen[p.PID] {
			return fmt.Errorf("persons[%d]: duplicate pid %d", i, p.PID)
		}
		seen[p.PID] = true
	}
	return nil
}

// ValidateRelationships validates the explicit edge list. Edges naming
// unknown PIDs are legal here (the traversal ignores them); only
// structural constraints are enforced.
func ValidateRelationships(rels []family.Relationship) error {
	if len(rels) > MaxRelationships {
		return fmt.Errorf("relationships: maximum %d entries allowed, got %d", MaxRelationships, len(rels))
	}
	for i, r := range rels {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("relationships[%d]: %w", i, formatValidationError(err))
		}
	}
	return nil
}

// formatValidationError flattens validator.v10 field errors into a
// single readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q constraint", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, "; "))
}
