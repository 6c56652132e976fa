// Package normalize maps free-text language names and repository URLs
// submitted by IDE tools to canonical forms before storage.
package normalize

import (
	"net/url"
	"strings"
)

// canonicalLanguages maps lowercase aliases to canonical language
// names. Unknown values pass through trimmed but otherwise unchanged.
var canonicalLanguages = map[string]string{
	"js":          "JavaScript",
	"javascript":  "JavaScript",
	"node":        "JavaScript",
	"nodejs":      "JavaScript",
	"ts":          "TypeScript",
	"typescript":  "TypeScript",
	"py":          "Python",
	"python":      "Python",
	"go":          "Go",
	"golang":      "Go",
	"rb":          "Ruby",
	"ruby":        "Ruby",
	"rs":          "Rust",
	"rust":        "Rust",
	"java":        "Java",
	"kt":          "Kotlin",
	"kotlin":      "Kotlin",
	"cs":          "C#",
	"csharp":      "C#",
	"c#":          "C#",
	"cpp":         "C++",
	"c++":         "C++",
	"c":           "C",
	"php":         "PHP",
	"swift":       "Swift",
	"scala":       "Scala",
	"sh":          "Shell",
	"bash":        "Shell",
	"shell":       "Shell",
	"sql":         "SQL",
	"html":        "HTML",
	"css":         "CSS",
	"dart":        "Dart",
	"elixir":      "Elixir",
	"haskell":     "Haskell",
	"lua":         "Lua",
	"objective-c": "Objective-C",
	"objc":        "Objective-C",
	"r":           "R",
	"zig":         "Zig",
}

// Language returns the canonical name for a language tag,
// case-insensitively. Unrecognized values are returned trimmed.
func Language(s string) string {
	trimmed := strings.TrimSpace(s)
	if canonical, ok := canonicalLanguages[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// RepoURL canonicalizes a repository URL: lowercase, https scheme,
// no trailing slashes, no trailing .git suffix.
func RepoURL(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	u, err := url.Parse(strings.ToLower(trimmed))
	if err != nil {
		return "", err
	}
	u.Scheme = "https"
	out := strings.TrimRight(u.String(), "/")
	out = strings.TrimSuffix(out, ".git")
	return out, nil
}
