package jsondoc

import "sort"

// SortKeys returns a copy of obj with keys ordered lexicographically by
// code point. Values are carried over untouched and the input is not
// mutated. Applying SortKeys to an already-sorted object is a no-op.
func SortKeys(obj *Object) *Object {
	keys := obj.Keys()
	sort.Strings(keys)

	sorted := NewObject()
	for _, key := range keys {
		value, _ := obj.Get(key)
		sorted.Set(key, value)
	}

	return sorted
}
