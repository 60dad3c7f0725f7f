package waiver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFile is a tiny in-memory "source file" used to exercise Build
// without depending on lexsim, keeping this package's tests independent
// of the illustrative lexer.
type fakeFile struct {
	lines []string // each entry is the full line text, comments marked "//..."
}

func (f fakeFile) classify(i int) Line {
	line := f.lines[i]
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Blank: true}
	}
	if strings.HasPrefix(trimmed, "//") {
		return Line{Comments: []string{strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))}}
	}
	if i := strings.Index(trimmed, "//"); i > 0 {
		return Line{HasReal: true, Comments: []string{strings.TrimSpace(trimmed[i+2:])}}
	}
	return Line{HasReal: true}
}

func TestBuild_WaiveLineOnSameLine(t *testing.T) {
	f := fakeFile{lines: []string{
		`code here // svtext-lint waive-line my-rule`,
		`more code`,
	}}
	store := Build(len(f.lines), DefaultTriggerForTest, f.classify)
	assert.True(t, store.RuleIsWaivedOnLine("my-rule", 0))
	assert.False(t, store.RuleIsWaivedOnLine("my-rule", 1))
}

func TestBuild_WaiveLineDeferredToNextRealLine(t *testing.T) {
	f := fakeFile{lines: []string{
		`// svtext-lint waive-line my-rule`,
		`code that gets waived`,
		`code that does not`,
	}}
	store := Build(len(f.lines), DefaultTriggerForTest, f.classify)
	assert.False(t, store.RuleIsWaivedOnLine("my-rule", 0))
	assert.True(t, store.RuleIsWaivedOnLine("my-rule", 1))
	assert.False(t, store.RuleIsWaivedOnLine("my-rule", 2))
}

func TestBuild_WaiveLineDeferralDroppedAcrossBlankLine(t *testing.T) {
	f := fakeFile{lines: []string{
		`// svtext-lint waive-line my-rule`,
		``,
		`code that is NOT waived`,
	}}
	store := Build(len(f.lines), DefaultTriggerForTest, f.classify)
	assert.False(t, store.RuleIsWaivedOnLine("my-rule", 2))
}

func TestBuild_WaiveStartStop(t *testing.T) {
	f := fakeFile{lines: []string{
		`// svtext-lint waive-start my-rule`,
		`line a`,
		`line b`,
		`// svtext-lint waive-stop my-rule`,
		`line c not waived`,
	}}
	store := Build(len(f.lines), DefaultTriggerForTest, f.classify)
	for _, line := range []int{1, 2} {
		assert.True(t, store.RuleIsWaivedOnLine("my-rule", line), "line %d", line)
	}
	assert.False(t, store.RuleIsWaivedOnLine("my-rule", 4))
}

func TestBuild_UnterminatedWaiveStartRunsToEOF(t *testing.T) {
	f := fakeFile{lines: []string{
		`// svtext-lint waive-start my-rule`,
		`line a`,
		`line b`,
	}}
	store := Build(len(f.lines), DefaultTriggerForTest, f.classify)
	assert.True(t, store.RuleIsWaivedOnLine("my-rule", 1))
	assert.True(t, store.RuleIsWaivedOnLine("my-rule", 2))
}

func TestBuild_DifferentRulesIndependentlyTracked(t *testing.T) {
	f := fakeFile{lines: []string{
		`code // svtext-lint waive-line rule-a`,
	}}
	store := Build(len(f.lines), DefaultTriggerForTest, f.classify)
	assert.True(t, store.RuleIsWaivedOnLine("rule-a", 0))
	assert.False(t, store.RuleIsWaivedOnLine("rule-b", 0))
}

func TestParseDirective_RejectsWrongTrigger(t *testing.T) {
	_, _, ok := parseDirective("othertool waive-line my-rule", DefaultTriggerForTest)
	assert.False(t, ok)
}

func TestParseDirective_RejectsUnknownCommand(t *testing.T) {
	_, _, ok := parseDirective(DefaultTriggerForTest+" bogus-command my-rule", DefaultTriggerForTest)
	assert.False(t, ok)
}

func TestParseDirective_ParsesValidForm(t *testing.T) {
	rule, command, ok := parseDirective(DefaultTriggerForTest+" waive-start my-rule", DefaultTriggerForTest)
	require.True(t, ok)
	assert.Equal(t, "my-rule", rule)
	assert.Equal(t, CommandWaiveStart, command)
}

const DefaultTriggerForTest = "svtext-lint"
