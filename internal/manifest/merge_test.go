package manifest

import (
	"testing"

	"github.com/jakoblorz/lintkit/internal/jsondoc"
	"github.com/stretchr/testify/require"
)

func manifestFrom(t *testing.T, raw string) *jsondoc.Object {
	t.Helper()

	doc, err := jsondoc.Parse([]byte(raw))
	require.NoError(t, err)

	obj, ok := jsondoc.AsObject(doc)
	require.True(t, ok)
	return obj
}

func sectionOf(t *testing.T, doc jsondoc.Value, name string) *jsondoc.Object {
	t.Helper()

	obj, ok := jsondoc.AsObject(doc)
	require.True(t, ok)

	value, ok := obj.Get(name)
	require.True(t, ok)

	section, ok := jsondoc.AsObject(value)
	require.True(t, ok)
	return section
}

func TestMerge_AddsRequestedEntries(t *testing.T) {
	doc := manifestFrom(t, `{"name": "ws", "devDependencies": {"a": "1.0.0"}}`)

	merged := Merge(doc, DependencySet{
		DevDependencies: map[string]string{"b": "2.0.0"},
	})

	devDeps := sectionOf(t, merged, DevDependenciesSection)
	a, _ := devDeps.Get("a")
	require.Equal(t, "1.0.0", a)
	b, _ := devDeps.Get("b")
	require.Equal(t, "2.0.0", b)
}

func TestMerge_OverwritesPerKey(t *testing.T) {
	doc := manifestFrom(t, `{"dependencies": {"a": "1.0.0", "keep": "0.1.0"}}`)

	merged := Merge(doc, DependencySet{
		Dependencies: map[string]string{"a": "2.0.0"},
	})

	deps := sectionOf(t, merged, DependenciesSection)
	a, _ := deps.Get("a")
	require.Equal(t, "2.0.0", a)
	keep, _ := deps.Get("keep")
	require.Equal(t, "0.1.0", keep)
}

func TestMerge_CreatesMissingSection(t *testing.T) {
	doc := manifestFrom(t, `{"name": "ws"}`)

	merged := Merge(doc, DependencySet{
		DevDependencies: map[string]string{"prettier": "^1.18.2"},
	})

	devDeps := sectionOf(t, merged, DevDependenciesSection)
	require.Equal(t, 1, devDeps.Len())

	// the other section is not conjured up
	obj, _ := jsondoc.AsObject(merged)
	_, exists := obj.Get(DependenciesSection)
	require.False(t, exists)
}

func TestMerge_NonObjectManifestIsNoOp(t *testing.T) {
	var doc jsondoc.Value = "not a manifest"

	merged := Merge(doc, DependencySet{
		DevDependencies: map[string]string{"prettier": "^1.18.2"},
	})

	require.Equal(t, doc, merged)
}

func TestMerge_NonObjectSectionIsReplaced(t *testing.T) {
	doc := manifestFrom(t, `{"devDependencies": "bogus"}`)

	merged := Merge(doc, DependencySet{
		DevDependencies: map[string]string{"prettier": "^1.18.2"},
	})

	devDeps := sectionOf(t, merged, DevDependenciesSection)
	require.Equal(t, []string{"prettier"}, devDeps.Keys())
}

func TestMerge_DoesNotSort(t *testing.T) {
	doc := manifestFrom(t, `{"devDependencies": {"z": "1.0.0"}}`)

	merged := Merge(doc, DependencySet{
		DevDependencies: map[string]string{"a": "2.0.0"},
	})

	devDeps := sectionOf(t, merged, DevDependenciesSection)
	require.Equal(t, []string{"z", "a"}, devDeps.Keys())
}

func TestSortSection(t *testing.T) {
	doc := manifestFrom(t, `{"devDependencies": {"z": "1.0.0", "a": "2.0.0", "m": "3.0.0"}}`)

	sorted := SortSection(doc, DevDependenciesSection)

	devDeps := sectionOf(t, sorted, DevDependenciesSection)
	require.Equal(t, []string{"a", "m", "z"}, devDeps.Keys())
}

func TestSortSection_MissingSection(t *testing.T) {
	doc := manifestFrom(t, `{"name": "ws"}`)

	sorted := SortSection(doc, DevDependenciesSection)
	require.Equal(t, jsondoc.Value(doc), sorted)
}

func TestCheckConstraints(t *testing.T) {
	errs := CheckConstraints(DependencySet{
		DevDependencies: map[string]string{
			"prettier": "^1.18.2",
			"tslint":   "~5.18.0",
		},
	})
	require.Empty(t, errs)

	errs = CheckConstraints(DependencySet{
		DevDependencies: map[string]string{
			"broken": "not-a-version",
			"fine":   "^1.0.0",
		},
	})
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "broken")
}
