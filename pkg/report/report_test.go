package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atani/php-knip/pkg/analyze"
)

func sampleIssues() []analyze.Issue {
	return []analyze.Issue{
		{Kind: analyze.KindUnusedClasses, Severity: analyze.SeverityError, Message: "class unused", File: "src/B.php", Line: 5, Symbol: `App\B`},
		{Kind: analyze.KindUnusedFunctions, Severity: analyze.SeverityError, Message: "function unused", File: "src/A.php", Line: 2, Symbol: `App\a`},
	}
}

func TestTextReporterSortsByFileThenLine(t *testing.T) {
	out := TextReporter{}.Format(sampleIssues(), Options{})
	aIdx := strings.Index(out, "src/A.php")
	bIdx := strings.Index(out, "src/B.php")
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, bIdx)
	assert.Less(t, aIdx, bIdx)
}

func TestTextReporterEmptyIssuesMessage(t *testing.T) {
	out := TextReporter{}.Format(nil, Options{})
	assert.Contains(t, out, "No issues found")
}

func TestTextReporterGroupsByFile(t *testing.T) {
	out := TextReporter{}.Format(sampleIssues(), Options{GroupBy: GroupByFile})
	assert.Contains(t, out, "src/A.php")
	assert.Contains(t, out, "src/B.php")
}

func TestJSONReporterProducesValidArray(t *testing.T) {
	out := JSONReporter{}.Format(sampleIssues(), Options{})
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "unused-classes", decoded[1]["kind"])
}

func TestJSONReporterRelativizesPath(t *testing.T) {
	out := JSONReporter{}.Format(sampleIssues(), Options{BasePath: "src"})
	assert.Contains(t, out, `"file":"A.php"`)
}

func TestCSVReporterIncludesHeaderWhenRequested(t *testing.T) {
	out := CSVReporter{}.Format(sampleIssues(), Options{IncludeHeader: true})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "kind,severity,file,line,symbol,message", lines[0])
}

func TestCSVReporterQuotesFieldsContainingDelimiter(t *testing.T) {
	issues := []analyze.Issue{
		{Kind: analyze.KindUnusedClasses, Severity: analyze.SeverityError, Message: "has, a comma", File: "src/A.php"},
	}
	out := CSVReporter{}.Format(issues, Options{})
	assert.Contains(t, out, `"has, a comma"`)
}
</content>
