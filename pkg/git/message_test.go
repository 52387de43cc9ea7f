package git

import (
	"strings"
	"testing"
)

func TestFormatCommitMessage(t *testing.T) {
	t.Run("Full Message", func(t *testing.T) {
		msg := FormatCommitMessage(CommitTypeDocs, "strata", "capture a.md v2", "details here")

		if !strings.HasPrefix(msg, "docs(strata): capture a.md v2") {
			t.Errorf("Bad header: %q", msg)
		}
		if !strings.Contains(msg, "details here") {
			t.Errorf("Body missing: %q", msg)
		}
		if !strings.HasSuffix(msg, "Powered-by: Strata") {
			t.Errorf("Footer missing: %q", msg)
		}
	})

	t.Run("No Scope Or Body", func(t *testing.T) {
		msg := FormatCommitMessage(CommitTypeFeat, "", "add tracking", "")
		if !strings.HasPrefix(msg, "feat: add tracking") {
			t.Errorf("Bad header: %q", msg)
		}
	})

	t.Run("Empty Type Falls Back To Chore", func(t *testing.T) {
		msg := FormatCommitMessage("", "", "cleanup", "")
		if !strings.HasPrefix(msg, "chore: cleanup") {
			t.Errorf("Bad header: %q", msg)
		}
	})
}

func TestAppendFooter(t *testing.T) {
	t.Run("Appends When Missing", func(t *testing.T) {
		msg := AppendFooter("manual capture")
		if !strings.HasSuffix(msg, "Powered-by: Strata") {
			t.Errorf("Footer missing: %q", msg)
		}
		if !strings.Contains(msg, "manual capture\n") {
			t.Errorf("Original message mangled: %q", msg)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := AppendFooter("msg")
		twice := AppendFooter(once)
		if once != twice {
			t.Errorf("Footer appended twice:\n%q\n%q", once, twice)
		}
	})
}
