package overlay

import (
	"errors"
	"testing"
)

func openCount(s State) int {
	n := 0
	for _, k := range Kinds() {
		if s.IsOpen(k) {
			n++
		}
	}
	return n
}

func TestInitialStateClosed(t *testing.T) {
	var s State
	if s.Selection() != None {
		t.Errorf("initial selection = %v, want none", s.Selection())
	}
	if openCount(s) != 0 {
		t.Error("no dialog should be open initially")
	}
}

func TestOpenThenOpenLastWriterWins(t *testing.T) {
	var s State
	s.Open(TermsOfService)
	s.Open(PrivacyPolicy)

	if !s.IsOpen(PrivacyPolicy) {
		t.Error("privacy policy should be open")
	}
	if s.IsOpen(TermsOfService) {
		t.Error("terms of service should have been replaced")
	}
	if n := openCount(s); n != 1 {
		t.Errorf("open dialogs = %d, want 1", n)
	}
}

func TestCloseResetsToNone(t *testing.T) {
	var s State
	s.Open(PrivacyPolicy)
	s.Close()
	if s.Selection() != None {
		t.Errorf("after close = %v, want none", s.Selection())
	}

	// Cyclical: reusable after close.
	s.Open(TermsOfService)
	if !s.IsOpen(TermsOfService) {
		t.Error("reopen failed")
	}
}

func TestAtMostOneOpenAcrossSequences(t *testing.T) {
	actions := []func(*State){
		func(s *State) { s.Open(TermsOfService) },
		func(s *State) { s.Open(PrivacyPolicy) },
		func(s *State) { s.Close() },
		func(s *State) { s.Open(None) },
	}
	// Every sequence of length 4 over the action alphabet.
	var walk func(s State, depth int)
	walk = func(s State, depth int) {
		if openCount(s) > 1 {
			t.Fatalf("more than one dialog open: %v", s.Selection())
		}
		if depth == 0 {
			return
		}
		for _, a := range actions {
			next := s
			a(&next)
			walk(next, depth-1)
		}
	}
	walk(State{}, 4)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Selection
	}{
		{"", None},
		{"none", None},
		{"terms-of-service", TermsOfService},
		{"privacy-policy", PrivacyPolicy},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("cookies"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Parse(cookies) error = %v, want ErrUnknownKind", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, k := range append(Kinds(), None) {
		got, err := Parse(k.String())
		if err != nil || got != k {
			t.Errorf("Parse(%q) = %v, %v", k.String(), got, err)
		}
	}
}

func TestCatalogView(t *testing.T) {
	c := Catalog{
		TermsOfService: {Title: "Terms of Service", Body: "<p>terms</p>"},
	}

	var s State
	if v := c.View(s); v.Open {
		t.Error("closed state should render nothing")
	}

	s.Open(TermsOfService)
	v := c.View(s)
	if !v.Open || v.Title != "Terms of Service" || v.Kind != TermsOfService {
		t.Errorf("unexpected view %+v", v)
	}

	// Bound content is missing for privacy; render closed rather than fail.
	s.Open(PrivacyPolicy)
	if v := c.View(s); v.Open {
		t.Error("kind without content should render closed")
	}
}
