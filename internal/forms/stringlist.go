package forms

import "strings"

// StringList is a dynamic form list field (course requirements, course
// content). It always holds at least min entries; removal below the minimum
// is a no-op, mirroring the form controls which hide the remove button on
// the last remaining row.
type StringList struct {
	entries []string
	min     int
}

// NewStringList builds a list with the given minimum, padding with empty
// entries until the minimum is met.
func NewStringList(min int, entries ...string) StringList {
	l := StringList{min: min}
	l.entries = append(l.entries, entries...)
	for len(l.entries) < min {
		l.entries = append(l.entries, "")
	}
	return l
}

// Len returns the current number of entries, blanks included.
func (l *StringList) Len() int { return len(l.entries) }

// Entries returns a copy of all entries, blanks included.
func (l *StringList) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Add appends a new blank entry.
func (l *StringList) Add() {
	l.entries = append(l.entries, "")
}

// UpdateAt replaces the entry at index i. Out-of-range indexes are ignored.
func (l *StringList) UpdateAt(i int, value string) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries[i] = value
}

// RemoveAt deletes the entry at index i unless that would drop the list
// below its minimum. Returns whether the entry was removed.
func (l *StringList) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.entries) || len(l.entries) <= l.min {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Filled returns the trimmed non-blank entries, the shape submitted upstream.
func (l *StringList) Filled() []string {
	var out []string
	for _, e := range l.entries {
		if t := strings.TrimSpace(e); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// OptionSet is the fixed four-slot option editor of a quiz question.
// Options can be edited but never added or removed.
type OptionSet [4]string

// UpdateAt replaces the option at index i. Out-of-range indexes are ignored.
func (o *OptionSet) UpdateAt(i int, value string) {
	if i < 0 || i >= len(o) {
		return
	}
	o[i] = value
}

// FilledCount returns how many options are non-blank after trimming.
func (o OptionSet) FilledCount() int {
	n := 0
	for _, v := range o {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

// Trimmed returns all four options with surrounding whitespace removed.
func (o OptionSet) Trimmed() []string {
	out := make([]string, len(o))
	for i, v := range o {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
