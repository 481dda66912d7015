//go:build !fyne

package ui

import (
	"strings"
	"testing"
)

func TestRunStubPointsAtFyneBuild(t *testing.T) {
	for _, themeFile := range []string{"", "theme.json"} {
		err := Run(themeFile)
		if err == nil {
			t.Fatalf("Run(%q): expected error in a non-fyne build", themeFile)
		}
		msg := err.Error()
		if !strings.Contains(msg, "-tags fyne") || !strings.Contains(msg, "./cmd/antdkit ui") {
			t.Fatalf("unexpected error message: %q", msg)
		}
	}
}
