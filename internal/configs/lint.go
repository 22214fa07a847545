package configs

import (
	"encoding/json"

	"github.com/jakoblorz/lintkit/internal/jsondoc"
)

// Lint builds the root tslint.json document. Only the component and
// directive selector rules depend on the project prefix; every other rule
// is a fixed constant.
func Lint(prefix string) *jsondoc.Object {
	return orderedObject{
		{"rulesDirectory", jsondoc.Array{"node_modules/codelyzer"}},
		{"rules", lintRules(prefix).build()},
	}.build()
}

func lintRules(prefix string) orderedObject {
	return orderedObject{
		{"arrow-return-shorthand", true},
		{"callable-types", true},
		{"class-name", true},
		{"deprecation", orderedObject{{"severity", "warn"}}.build()},
		{"forin", true},
		{"import-blacklist", jsondoc.Array{true, "rxjs/Rx"}},
		{"interface-over-type-literal", true},
		{"member-access", false},
		{"no-arg", true},
		{"no-console", jsondoc.Array{true, "debug", "info", "time", "timeEnd", "trace"}},
		{"no-construct", true},
		{"no-debugger", true},
		{"no-duplicate-super", true},
		{"no-empty", false},
		{"no-empty-interface", true},
		{"no-eval", true},
		{"no-misused-new", true},
		{"no-non-null-assertion", true},
		{"no-string-literal", false},
		{"no-string-throw", true},
		{"no-switch-case-fall-through", true},
		{"no-unnecessary-initializer", true},
		{"no-unused-expression", true},
		{"no-var-keyword", true},
		{"prefer-const", true},
		{"quotemark", jsondoc.Array{true, "single"}},
		{"radix", true},
		{"triple-equals", jsondoc.Array{true, "allow-null-check"}},
		{"unified-signatures", true},
		{"max-line-length", jsondoc.Array{true, json.Number("140")}},

		// codelyzer
		{"component-selector", jsondoc.Array{true, "element", prefix, "kebab-case"}},
		{"directive-selector", jsondoc.Array{true, "attribute", prefix, "camelCase"}},
		{"component-class-suffix", true},
		{"directive-class-suffix", true},
		{"no-input-rename", true},
		{"no-output-on-prefix", true},
		{"no-output-rename", true},
		{"use-input-property-decorator", true},
		{"use-output-property-decorator", true},
		{"use-host-property-decorator", true},
		{"use-life-cycle-interface", true},
		{"use-pipe-transform-interface", true},
	}
}

// LintDependencies lists the devDependencies required by the lint config.
func LintDependencies() map[string]string {
	return map[string]string{
		"tslint":    "~5.18.0",
		"codelyzer": "^5.1.0",
	}
}
