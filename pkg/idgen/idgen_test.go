package idgen

import (
	"regexp"
	"testing"
)

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix("x-")
	if err != nil {
		t.Fatalf("GenerateWithPrefix() error: %v", err)
	}
	if len(id) != len("x-")+Length {
		t.Errorf("GenerateWithPrefix() length = %d, want %d (id=%q)", len(id), len("x-")+Length, id)
	}
	if !regexp.MustCompile(`^x-[a-zA-Z0-9]+$`).MatchString(id) {
		t.Errorf("GenerateWithPrefix() = %q, does not match expected charset", id)
	}
}

func TestRequestID_Unique(t *testing.T) {
	const count = 5000
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id := RequestID()
		if id[:len(RequestPrefix)] != RequestPrefix {
			t.Fatalf("RequestID() = %q, want prefix %q", id, RequestPrefix)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate request id after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
