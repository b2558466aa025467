package container

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Installed, "installed"},
		{Resolved, "resolved"},
		{Active, "active"},
		{Uninstalled, "uninstalled"},
		{State(42), "state(42)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestParseState(t *testing.T) {
	for _, name := range []string{"installed", "resolved", "active", "uninstalled"} {
		s, err := ParseState(name)
		if err != nil {
			t.Fatalf("ParseState(%q) returned error: %v", name, err)
		}
		if s.String() != name {
			t.Errorf("ParseState(%q).String() = %q", name, s.String())
		}
	}

	if _, err := ParseState("paused"); err == nil {
		t.Error("ParseState(\"paused\") should fail")
	}
}

func TestLinkLocationRoundTrip(t *testing.T) {
	loc := LinkLocation("com.acme.logging.api")
	if loc != "link:classpath:com.acme.logging.api.link" {
		t.Errorf("LinkLocation() = %q", loc)
	}

	name, err := ParseLinkLocation(loc)
	if err != nil {
		t.Fatalf("ParseLinkLocation(%q) returned error: %v", loc, err)
	}
	if name != "com.acme.logging.api" {
		t.Errorf("ParseLinkLocation(%q) = %q", loc, name)
	}
}

func TestParseLinkLocationMalformed(t *testing.T) {
	for _, loc := range []string{
		"",
		"com.acme.logging.api",
		"link:classpath:api",
		"api.link",
		"link:classpath:.link",
	} {
		if _, err := ParseLinkLocation(loc); err == nil {
			t.Errorf("ParseLinkLocation(%q) should fail", loc)
		}
	}
}
