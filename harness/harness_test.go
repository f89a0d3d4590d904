package harness

import (
	"bytes"
	"strings"
	"testing"

	"github.com/timpalpant/go-rps"
)

func serve(t *testing.T, input string) []string {
	e, err := rps.NewEngine(rps.Params{})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Serve(strings.NewReader(input), &out, e); err != nil {
		t.Fatal(err)
	}

	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestServe(t *testing.T) {
	input := strings.Join([]string{
		"configure 49 26",
		"start",
		"choose 0",
		"",
		"choose 1",
		"end",
		"quit",
		"choose 1",
	}, "\n")

	expected := []string{
		"ok",
		"ok",
		"1",
		"2",
		"summary rounds=2 wins=0 draws=1 losses=0",
	}

	got := serve(t, input)
	if len(got) != len(expected) {
		t.Fatalf("expected %d replies, got %d: %q", len(expected), len(got), got)
	}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("reply %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestServe_Errors(t *testing.T) {
	input := strings.Join([]string{
		"start",
		"choose 0",
		"choose 7",
		"choose rock",
		"choose",
		"configure -1 26",
		"shoot",
		"end",
	}, "\n")

	got := serve(t, input)
	if len(got) != 8 {
		t.Fatalf("expected 8 replies, got %d: %q", len(got), got)
	}

	for i := 2; i < 7; i++ {
		if !strings.HasPrefix(got[i], "error ") {
			t.Errorf("reply %d: expected an error, got %q", i, got[i])
		}
	}

	// Rejected requests do not advance the match.
	if got[7] != "summary rounds=1 wins=0 draws=0 losses=0" {
		t.Errorf("unexpected summary %q", got[7])
	}
}
