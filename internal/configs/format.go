package configs

import (
	"encoding/json"

	"github.com/jakoblorz/lintkit/internal/jsondoc"
)

// Format builds the per-project .prettierrc document. All settings are
// fixed constants.
func Format() *jsondoc.Object {
	return orderedObject{
		{"printWidth", json.Number("100")},
		{"tabWidth", json.Number("2")},
		{"useTabs", false},
		{"semi", true},
		{"singleQuote", true},
		{"trailingComma", "es5"},
		{"bracketSpacing", true},
	}.build()
}

// FormatDependencies lists the devDependencies required by the formatter
// config, including the tslint bridge packages that keep the two tools
// from fighting over the same rules.
func FormatDependencies() map[string]string {
	return map[string]string{
		"prettier":               "^1.18.2",
		"tslint-config-prettier": "^1.18.0",
		"tslint-plugin-prettier": "^2.0.1",
	}
}
