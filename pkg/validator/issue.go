package validator

import (
	"strings"
)

// Issue is a single validation failure addressed by a dotted path.
type Issue struct {
	Path    string
	Code    string
	Message string
	Params  map[string]any
}

func (i Issue) String() string {
	return i.Path + " -> " + i.Message
}

// IssueList is an ordered collection of issues. Order is insertion order and
// is what reports show.
type IssueList []Issue

// Has reports whether any issue is recorded for path.
func (l IssueList) Has(path string) bool {
	_, ok := l.Find(path)
	return ok
}

// Find returns the first issue recorded for path.
func (l IssueList) Find(path string) (Issue, bool) {
	for _, issue := range l {
		if issue.Path == path {
			return issue, true
		}
	}
	return Issue{}, false
}

// Get returns every issue recorded for path, in order.
func (l IssueList) Get(path string) []Issue {
	var out []Issue
	for _, issue := range l {
		if issue.Path == path {
			out = append(out, issue)
		}
	}
	return out
}

// Messages returns the messages recorded for path.
func (l IssueList) Messages(path string) []string {
	var out []string
	for _, issue := range l {
		if issue.Path == path {
			out = append(out, issue.Message)
		}
	}
	return out
}

// Paths returns the distinct paths in first-seen order.
func (l IssueList) Paths() []string {
	var paths []string
	seen := make(map[string]bool, len(l))
	for _, issue := range l {
		if !seen[issue.Path] {
			seen[issue.Path] = true
			paths = append(paths, issue.Path)
		}
	}
	return paths
}

func (l IssueList) IsEmpty() bool {
	return len(l) == 0
}

// Prefixed returns a copy of the list with every path prefixed by "<prefix>.".
func (l IssueList) Prefixed(prefix string) IssueList {
	if len(l) == 0 {
		return nil
	}
	out := make(IssueList, len(l))
	for i, issue := range l {
		issue.Path = JoinPath(prefix, issue.Path)
		out[i] = issue
	}
	return out
}

// WithPrefix returns a collector that appends to l, prefixing every added path
// with "<prefix>.".
func (l *IssueList) WithPrefix(prefix string) *Collector {
	return &Collector{list: l, prefix: prefix}
}

// Concat returns a new list with the issues of l followed by those of other.
func (l IssueList) Concat(other IssueList) IssueList {
	if len(other) == 0 {
		return l
	}
	if len(l) == 0 {
		return other
	}
	out := make(IssueList, 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

// String renders the stable diagnostic format "path -> message; path -> message".
func (l IssueList) String() string {
	return l.join("; ")
}

func (l IssueList) join(sep string) string {
	parts := make([]string, len(l))
	for i, issue := range l {
		parts[i] = issue.String()
	}
	return strings.Join(parts, sep)
}

// Collector appends issues to an IssueList under a path prefix.
// Decoders use it to report conversion failures while walking a document.
type Collector struct {
	list   *IssueList
	prefix string
}

// NewCollector returns a collector writing to list with no prefix.
func NewCollector(list *IssueList) *Collector {
	return &Collector{list: list}
}

// Add records an issue at path relative to the collector's prefix.
func (c *Collector) Add(path, code, message string) {
	c.AddIssue(Issue{Path: path, Code: code, Message: message})
}

func (c *Collector) AddIssue(issue Issue) {
	issue.Path = JoinPath(c.prefix, issue.Path)
	*c.list = append(*c.list, issue)
}

// WithPrefix nests another segment under the collector's prefix.
func (c *Collector) WithPrefix(prefix string) *Collector {
	return &Collector{list: c.list, prefix: JoinPath(c.prefix, prefix)}
}

func (c *Collector) Len() int {
	return len(*c.list)
}

// JoinPath joins two path segments with a dot, skipping empty ones.
func JoinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	default:
		return prefix + "." + path
	}
}
