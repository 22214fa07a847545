package configs

import "github.com/jakoblorz/lintkit/internal/jsondoc"

// Style builds the per-project .stylelintrc document. All settings are
// fixed constants.
func Style() *jsondoc.Object {
	return orderedObject{
		{"extends", jsondoc.Array{"stylelint-config-standard", "stylelint-config-prettier"}},
		{"rules", orderedObject{
			{"no-empty-source", nil},
			{"selector-pseudo-element-no-unknown", jsondoc.Array{
				true,
				orderedObject{{"ignorePseudoElements", jsondoc.Array{"ng-deep"}}}.build(),
			}},
			{"at-rule-no-unknown", jsondoc.Array{
				true,
				orderedObject{{"ignoreAtRules", jsondoc.Array{"mixin", "include", "extend", "content"}}}.build(),
			}},
		}.build()},
	}.build()
}

// StyleDependencies lists the devDependencies required by the style lint
// config.
func StyleDependencies() map[string]string {
	return map[string]string{
		"stylelint":                 "^10.1.0",
		"stylelint-config-standard": "^18.3.0",
		"stylelint-config-prettier": "^5.2.0",
	}
}
