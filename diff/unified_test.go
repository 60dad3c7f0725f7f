package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedDiffText_BasicHunk(t *testing.T) {
	before := "one\ntwo\nthree\n"
	after := "one\ntwo-modified\nthree\n"

	out := UnifiedDiffText(before, after, "a.txt", "b.txt", 1)
	assert.True(t, strings.HasPrefix(out, "--- a.txt\n+++ b.txt\n"))
	assert.Contains(t, out, "@@ -1,3 +1,3 @@\n")
	assert.Contains(t, out, "-two\n")
	assert.Contains(t, out, "+two-modified\n")
	assert.Contains(t, out, " one\n")
	assert.Contains(t, out, " three\n")
}

func TestUnifiedDiffText_NoDifference(t *testing.T) {
	text := "same\ntext\n"
	out := UnifiedDiffText(text, text, "", "", 3)
	assert.Equal(t, "", out)
}

func TestUnifiedDiffText_NoTrailingNewline(t *testing.T) {
	before := "line1\nline2"
	after := "line1\nline2modified"
	out := UnifiedDiffText(before, after, "a", "b", 1)
	assert.Contains(t, out, "\\ No newline at end of file\n")
}
