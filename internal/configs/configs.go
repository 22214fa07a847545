// Package configs holds the canonical linter, style, and formatter
// configuration documents plus the dev-dependencies each one requires.
// Builders are pure: apart from the lint rule selector prefix, everything
// here is a fixed data table.
package configs

import "github.com/jakoblorz/lintkit/internal/jsondoc"

// Config file names produced by the schematic.
const (
	// LintConfigFile is written at the workspace root.
	LintConfigFile = "tslint.json"

	// FormatConfigFile and StyleConfigFile are written per project root.
	FormatConfigFile = ".prettierrc"
	StyleConfigFile  = ".stylelintrc"
)

// DefaultPrefix is the component selector prefix used when a project
// declares none.
const DefaultPrefix = "app"

// field is one key/value pair of a config document; orderedObject keeps the
// tables readable while preserving the exact key order of the emitted file.
type field struct {
	key   string
	value jsondoc.Value
}

type orderedObject []field

func (fields orderedObject) build() *jsondoc.Object {
	obj := jsondoc.NewObject()
	for _, f := range fields {
		obj.Set(f.key, f.value)
	}
	return obj
}
