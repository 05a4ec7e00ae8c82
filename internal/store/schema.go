package store

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// Violation is one schema failure for a record.
type Violation struct {
	Index   int    `json:"index"` // position in load order
	Name    string `json:"name"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// CheckSchema validates every record against the #Record definition and
// returns all violations in record order. The error is non-nil only when
// the embedded schema itself fails to compile.
func CheckSchema(records []Record) ([]Violation, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Record"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Record: %w", err)
	}

	violations := []Violation{}
	for i, rec := range records {
		v := def.Unify(ctx.Encode(rec))
		err := v.Validate(cue.Concrete(true))
		if err == nil {
			continue
		}
		for _, e := range cueerrors.Errors(err) {
			path := e.Path()
			if len(path) > 0 && strings.HasPrefix(path[0], "#") {
				path = path[1:]
			}
			violations = append(violations, Violation{
				Index:   i,
				Name:    rec.Name,
				Field:   strings.Join(path, "."),
				Message: e.Error(),
			})
		}
	}
	return violations, nil
}
