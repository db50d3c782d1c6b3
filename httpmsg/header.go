package httpmsg

import "sort"

type headerField struct {
	name    string
	value   string
	deleted bool
}

// Header is an ordered list of (name, value) fields that preserves
// insertion order until Sort is called, and supports deleting a field
// in place by tombstoning it rather than shifting the slice — matching
// original_source/include/header.h's offset-based removeField, which marks
// a field's value offset 0 instead of erasing it from the vector.
//
// The zero value is an empty, already-sorted Header, ready to use.
type Header struct {
	fields   []headerField
	unsorted bool
}

// Len returns the number of fields, including tombstoned ones. Most callers
// want Traverse or Search instead of indexing directly.
func (h *Header) Len() int { return len(h.fields) }

// IsSorted reports whether Sort would be a no-op.
func (h *Header) IsSorted() bool { return !h.unsorted }

// AddField appends a field. The header is no longer sorted until Sort runs
// again.
func (h *Header) AddField(name, value string) {
	h.fields = append(h.fields, headerField{name: name, value: value})
	h.unsorted = true
}

// RemoveField tombstones the field at index, which must be a value
// previously reported live by Traverse or Search. The slice is not
// reordered or shrunk, and Sort does not need to re-run afterward.
func (h *Header) RemoveField(index int) {
	h.fields[index].deleted = true
}

// Sort orders fields stably by name, ascending, so Search's binary search
// is valid. It is a no-op if the header is already sorted.
func (h *Header) Sort() {
	if !h.unsorted {
		return
	}
	sort.SliceStable(h.fields, func(i, j int) bool {
		return h.fields[i].name < h.fields[j].name
	})
	h.unsorted = false
}

// Traverse calls cb for every live (non-tombstoned) field in current order,
// stopping early if cb returns false.
func (h *Header) Traverse(cb func(index int, name, value string) bool) {
	for i := range h.fields {
		f := &h.fields[i]
		if f.deleted {
			continue
		}
		if !cb(i, f.name, f.value) {
			return
		}
	}
}

// Search binary-searches for the first field named name and calls cb for it
// and every subsequent field with the same name, in order, stopping early if
// cb returns false. Search panics if the header is not sorted — callers must
// call Sort first, same as the source's SIREN_ASSERT(isSorted_).
func (h *Header) Search(name string, cb func(index int, value string) bool) {
	if h.unsorted {
		panic("httpmsg: Header.Search called before Sort")
	}
	i := sort.Search(len(h.fields), func(i int) bool { return h.fields[i].name >= name })
	for ; i < len(h.fields) && h.fields[i].name == name; i++ {
		if h.fields[i].deleted {
			continue
		}
		if !cb(i, h.fields[i].value) {
			break
		}
	}
}

// Reset clears the header back to its zero value.
func (h *Header) Reset() {
	h.fields = h.fields[:0]
	h.unsorted = false
}
