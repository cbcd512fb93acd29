package classify

import "testing"

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		formName string
		message  string
		want     string
	}{
		{"demo keyword in message", "", "", "I would like a demo please", "demo"},
		{"resource keyword in form name", "", "Ebook Q3", "", "resource"},
		{"demo wins over resource", "", "", "book a demo and download our ebook", "demo"},
		{"keyword in source", "webinar-replay", "", "", "resource"},
		{"accented demo keyword", "", "", "Je veux une démo", "demo"},
		{"nothing matches", "linkedin", "contact", "hello there", "other"},
		{"all empty", "", "", "", "other"},
	}

	for _, tc := range cases {
		if got := DetectIntent(tc.source, tc.formName, tc.message); got != tc.want {
			t.Fatalf("%s: DetectIntent = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestHasUrgency(t *testing.T) {
	if !HasUrgency("Please get back to me ASAP") {
		t.Fatal("expected urgency match")
	}
	if HasUrgency("no rush at all") {
		t.Fatal("unexpected urgency match")
	}
}

func TestSourceWeight(t *testing.T) {
	if got := SourceWeight("LinkedIn"); got != 5 {
		t.Fatalf("SourceWeight(LinkedIn) = %d, want 5", got)
	}
	if got := SourceWeight("carrier-pigeon"); got != 0 {
		t.Fatalf("SourceWeight(carrier-pigeon) = %d, want 0", got)
	}
}
