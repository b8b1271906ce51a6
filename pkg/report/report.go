// Package report turns a list of issues and an option map into a
// string. Text, JSON, and CSV are shipped here — CSV because the
// delimiter/enclosure/includeHeader options need a consumer; other
// formats (XML, HTML, JUnit, GitHub annotations) are left to callers,
// with text as the one first-party human-readable renderer. Built
// around a section-by-section fmt.Printf idiom, generalized from "one
// component" to "one issue list".
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/atani/php-knip/pkg/analyze"
)

// Options mirrors the subset of reporter options the shipped reporters
// recognize.
type Options struct {
	BasePath      string
	Pretty        bool
	GroupBy       GroupBy
	Colors        bool
	Title         string
	Delimiter     string
	Enclosure     string
	IncludeHeader bool
}

// GroupBy selects how TextReporter buckets issues: by type, by file, or
// not at all.
type GroupBy string

const (
	GroupByNone GroupBy = ""
	GroupByType GroupBy = "type"
	GroupByFile GroupBy = "file"
)

// Reporter renders a list of issues to a string.
type Reporter interface {
	Format(issues []analyze.Issue, opts Options) string
}

func relativize(path, basePath string) string {
	if basePath == "" {
		return path
	}
	rel := strings.TrimPrefix(path, basePath)
	return strings.TrimPrefix(rel, "/")
}

func sortIssues(issues []analyze.Issue) []analyze.Issue {
	sorted := make([]analyze.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})
	return sorted
}

func groupKey(issue analyze.Issue, groupBy GroupBy) string {
	switch groupBy {
	case GroupByFile:
		return issue.File
	case GroupByType:
		return string(issue.Kind)
	default:
		return ""
	}
}

// jsonIssue is the wire shape for JSONReporter; lowercase/camelCase keys
// match analyze.Issue's field names.
type jsonIssue struct {
	Kind       string         `json:"kind"`
	Severity   string         `json:"severity"`
	Message    string         `json:"message"`
	File       string         `json:"file,omitempty"`
	Line       int            `json:"line,omitempty"`
	Symbol     string         `json:"symbol,omitempty"`
	SymbolKind string         `json:"symbolKind,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// JSONReporter emits issues as a JSON array.
type JSONReporter struct{}

func (JSONReporter) Format(issues []analyze.Issue, opts Options) string {
	sorted := sortIssues(issues)
	out := make([]jsonIssue, 0, len(sorted))
	for _, iss := range sorted {
		out = append(out, jsonIssue{
			Kind:       string(iss.Kind),
			Severity:   string(iss.Severity),
			Message:    iss.Message,
			File:       relativize(iss.File, opts.BasePath),
			Line:       iss.Line,
			Symbol:     iss.Symbol,
			SymbolKind: iss.SymbolKind,
			Metadata:   iss.Metadata,
		})
	}

	var data []byte
	var err error
	if opts.Pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return "[]"
	}
	return string(data)
}

// TextReporter renders issues as human-readable lines, optionally grouped
// by file or kind.
type TextReporter struct{}

func (TextReporter) Format(issues []analyze.Issue, opts Options) string {
	var b strings.Builder

	if opts.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", opts.Title)
	}

	sorted := sortIssues(issues)
	if len(sorted) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	if opts.GroupBy == GroupByNone {
		for _, iss := range sorted {
			writeTextLine(&b, iss, opts)
		}
		return b.String()
	}

	var order []string
	seen := make(map[string]bool)
	grouped := make(map[string][]analyze.Issue)
	for _, iss := range sorted {
		key := groupKey(iss, opts.GroupBy)
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], iss)
	}

	for _, key := range order {
		fmt.Fprintf(&b, "%s\n", key)
		for _, iss := range grouped[key] {
			b.WriteString("  ")
			writeTextLine(&b, iss, opts)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeTextLine(b *strings.Builder, iss analyze.Issue, opts Options) {
	severity := colorize(strings.ToUpper(string(iss.Severity)), iss.Severity, opts.Colors)
	file := relativize(iss.File, opts.BasePath)
	if iss.Line > 0 {
		fmt.Fprintf(b, "[%s] %s:%d %s\n", severity, file, iss.Line, iss.Message)
		return
	}
	if file != "" {
		fmt.Fprintf(b, "[%s] %s %s\n", severity, file, iss.Message)
		return
	}
	fmt.Fprintf(b, "[%s] %s\n", severity, iss.Message)
}

func colorize(label string, severity analyze.Severity, enabled bool) string {
	if !enabled {
		return label
	}
	code := "0"
	switch severity {
	case analyze.SeverityError:
		code = "31"
	case analyze.SeverityWarning:
		code = "33"
	case analyze.SeverityInfo:
		code = "36"
	}
	return fmt.Sprintf("\033[%sm%s\033[0m", code, label)
}

// CSVReporter renders issues as delimited rows, honoring the
// delimiter/enclosure/includeHeader options.
type CSVReporter struct{}

func (CSVReporter) Format(issues []analyze.Issue, opts Options) string {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = ","
	}
	enclosure := opts.Enclosure
	if enclosure == "" {
		enclosure = `"`
	}

	quote := func(field string) string {
		if strings.Contains(field, delimiter) || strings.Contains(field, enclosure) || strings.Contains(field, "\n") {
			escaped := strings.ReplaceAll(field, enclosure, enclosure+enclosure)
			return enclosure + escaped + enclosure
		}
		return field
	}

	var b strings.Builder
	columns := []string{"kind", "severity", "file", "line", "symbol", "message"}

	if opts.IncludeHeader {
		quoted := make([]string, len(columns))
		for i, c := range columns {
			quoted[i] = quote(c)
		}
		b.WriteString(strings.Join(quoted, delimiter))
		b.WriteString("\n")
	}

	for _, iss := range sortIssues(issues) {
		row := []string{
			string(iss.Kind),
			string(iss.Severity),
			relativize(iss.File, opts.BasePath),
			fmt.Sprintf("%d", iss.Line),
			iss.Symbol,
			iss.Message,
		}
		quoted := make([]string, len(row))
		for i, f := range row {
			quoted[i] = quote(f)
		}
		b.WriteString(strings.Join(quoted, delimiter))
		b.WriteString("\n")
	}
	return b.String()
}
</content>
