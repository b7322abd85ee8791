package books

import "strings"

// Filter describes a read-only query over a record sequence.
// Title, Author, and Genre are case-insensitive substring matches and are
// combined with logical AND. Keyword matches when any of the three fields
// contains it, mirroring the interactive keyword search.
type Filter struct {
	Title   string
	Author  string
	Genre   string
	Keyword string
}

// Empty reports whether the filter has no criteria at all.
func (f Filter) Empty() bool {
	return f.Title == "" && f.Author == "" && f.Genre == "" && f.Keyword == ""
}

// Matches reports whether b satisfies every criterion of the filter.
// An empty filter matches everything.
func (f Filter) Matches(b *Book) bool {
	if !contains(b.Title, f.Title) {
		return false
	}
	if !contains(b.Author, f.Author) {
		return false
	}
	if !contains(b.Genre, f.Genre) {
		return false
	}
	if f.Keyword != "" {
		if !contains(b.Title, f.Keyword) &&
			!contains(b.Author, f.Keyword) &&
			!contains(b.Genre, f.Keyword) {
			return false
		}
	}
	return true
}

// Find returns the ordered subsequence of list matching f.
// An empty result is not an error.
func Find(list []Book, f Filter) []Book {
	var out []Book
	for i := range list {
		if f.Matches(&list[i]) {
			out = append(out, list[i])
		}
	}
	return out
}

// contains is a case-insensitive substring check. An empty pattern matches.
func contains(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}
