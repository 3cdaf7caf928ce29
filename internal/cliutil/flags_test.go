package cliutil

import "testing"

func TestParseAgentSpecKnownKinds(t *testing.T) {
	for _, spec := range []string{"random", "greedy", "lookahead", "lookahead:3", "Greedy"} {
		factory, err := ParseAgentSpec(spec)
		if err != nil {
			t.Fatalf("ParseAgentSpec(%q) returned error: %v", spec, err)
		}
		if factory == nil {
			t.Fatalf("ParseAgentSpec(%q) returned a nil factory", spec)
		}
		if a := factory(1); a == nil {
			t.Fatalf("factory for %q produced a nil agent", spec)
		}
	}
}

func TestParseAgentSpecRejectsUnknownKind(t *testing.T) {
	if _, err := ParseAgentSpec("nonsense"); err == nil {
		t.Fatal("expected an error for an unknown agent spec")
	}
}

func TestParseAgentSpecRejectsBadDepth(t *testing.T) {
	if _, err := ParseAgentSpec("lookahead:not-a-number"); err == nil {
		t.Fatal("expected an error for a non-numeric lookahead depth")
	}
}
