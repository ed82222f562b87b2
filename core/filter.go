package core

import (
	"slices"
	"strings"
	"time"
)

// Predicate reports whether a document satisfies one search criterion.
type Predicate func(document *Document) bool

func TitlePrefixes(prefixes []string) Predicate {
	return func(document *Document) bool {
		if len(prefixes) == 0 {
			return true
		}
		return slices.ContainsFunc(prefixes, func(prefix string) bool {
			return strings.HasPrefix(document.Title, prefix)
		})
	}
}

func ContainsContents(fragments []string) Predicate {
	return func(document *Document) bool {
		if len(fragments) == 0 {
			return true
		}
		return slices.ContainsFunc(fragments, func(fragment string) bool {
			return strings.Contains(document.Content, fragment)
		})
	}
}

func AuthorIDs(ids []string) Predicate {
	return func(document *Document) bool {
		if len(ids) == 0 {
			return true
		}
		return slices.Contains(ids, document.Author.ID)
	}
}

// CreatedFrom is an exclusive lower bound.
func CreatedFrom(from time.Time) Predicate {
	return func(document *Document) bool {
		if from.IsZero() {
			return true
		}
		return document.Created.After(from)
	}
}

// CreatedTo is an exclusive upper bound.
func CreatedTo(to time.Time) Predicate {
	return func(document *Document) bool {
		if to.IsZero() {
			return true
		}
		return document.Created.Before(to)
	}
}

// Predicates returns one predicate per criterion of the request.
func (r *SearchRequest) Predicates() []Predicate {
	return []Predicate{
		TitlePrefixes(r.TitlePrefixes),
		ContainsContents(r.ContainsContents),
		AuthorIDs(r.AuthorIDs),
		CreatedFrom(r.CreatedFrom),
		CreatedTo(r.CreatedTo),
	}
}

// Matches reports whether the document satisfies every criterion. A nil
// request matches nothing.
func (r *SearchRequest) Matches(document *Document) bool {
	if r == nil || document == nil {
		return false
	}
	for _, match := range r.Predicates() {
		if !match(document) {
			return false
		}
	}
	return true
}
