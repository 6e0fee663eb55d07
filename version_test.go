package hodl

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	if !strings.HasPrefix(Version(), "v0.") {
		t.Fatalf("unexpected version: %q", Version())
	}

	GitCommit = "abc123"
	defer func() { GitCommit = "" }()
	if !strings.HasSuffix(Version(), " abc123") {
		t.Fatalf("commit not appended: %q", Version())
	}
}
