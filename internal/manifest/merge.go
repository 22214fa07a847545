// Package manifest mutates package.json-style dependency manifests.
package manifest

import (
	"github.com/jakoblorz/lintkit/internal/jsondoc"
)

// FileName is the manifest file at the workspace root.
const FileName = "package.json"

// Manifest sections subject to dependency merging.
const (
	DependenciesSection    = "dependencies"
	DevDependenciesSection = "devDependencies"
)

// DependencySet holds dependency entries (package name to version
// constraint) requested for a merge.
type DependencySet struct {
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// Merge sets every requested entry in the corresponding manifest section,
// creating the section if absent and overwriting prior values per key.
// Entries not named in the request are never touched. Sections are not
// sorted; see SortSection.
//
// A manifest that is not an object is returned unchanged. This mirrors the
// spread-merge degradation of the original tooling and is a deliberate
// guard, not a validation error; the surrounding pipeline only ever writes
// object-shaped manifests itself.
func Merge(doc jsondoc.Value, requested DependencySet) jsondoc.Value {
	obj, ok := jsondoc.AsObject(doc)
	if !ok {
		return doc
	}

	mergeSection(obj, DependenciesSection, requested.Dependencies)
	mergeSection(obj, DevDependenciesSection, requested.DevDependencies)

	return obj
}

func mergeSection(obj *jsondoc.Object, name string, entries map[string]string) {
	if len(entries) == 0 {
		return
	}

	section, _ := jsondoc.AsObject(valueOrNil(obj, name))
	if section == nil {
		// absent or non-object sections start fresh
		section = jsondoc.NewObject()
	}

	for pkg, version := range entries {
		section.Set(pkg, version)
	}

	obj.Set(name, section)
}

// SortSection replaces the named section with a key-sorted copy. Documents
// without that section (or with a non-object section) are left unchanged.
func SortSection(doc jsondoc.Value, name string) jsondoc.Value {
	obj, ok := jsondoc.AsObject(doc)
	if !ok {
		return doc
	}

	section, ok := jsondoc.AsObject(valueOrNil(obj, name))
	if !ok {
		return doc
	}

	obj.Set(name, jsondoc.SortKeys(section))
	return obj
}

func valueOrNil(obj *jsondoc.Object, key string) jsondoc.Value {
	value, ok := obj.Get(key)
	if !ok {
		return nil
	}
	return value
}
