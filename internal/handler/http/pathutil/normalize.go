// Package pathutil maps request paths to route templates so metric labels
// stay bounded.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// Any single segment under /notes is an id; malformed ids must not create
// new label values either.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/notes/[^/]+$`), Template: "/notes/:id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

var knownPaths = map[string]struct{}{
	"/":        {},
	"/ping":    {},
	"/notes":   {},
	"/health":  {},
	"/ready":   {},
	"/live":    {},
	"/metrics": {},
	"/swagger": {},
}

// NormalizePath converts a request path to its route template.
//
//	NormalizePath("/notes/6f1c2b1e-8d5a-4c1e-9f0a-3b2d4e5f6a7b") // "/notes/:id"
//	NormalizePath("/notes?page=2")                               // "/notes"
//	NormalizePath("/wp-admin.php")                               // "other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return "other"
}
