package interpret

import (
	"reflect"
	"testing"
)

func TestParseSections_Basic(t *testing.T) {
	raw := "GENEL\nFoo bar.\n\nAŞK\nBaz qux."
	got := ParseSections(raw)
	want := map[string]string{"GENEL": "Foo bar.", "AŞK": "Baz qux."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSections = %#v; want %#v", got, want)
	}
}

func TestParseSections_NumberingAndPunctuation(t *testing.T) {
	raw := "1. GENEL:\nIlk satır.\nIkinci satır.\n2) KARİYER)\nTek satır."
	got := ParseSections(raw)
	if got["GENEL"] != "Ilk satır. Ikinci satır." {
		t.Fatalf("GENEL body = %q", got["GENEL"])
	}
	if got["KARİYER"] != "Tek satır." {
		t.Fatalf("KARİYER body = %q", got["KARİYER"])
	}
}

func TestParseSections_NoHeadings(t *testing.T) {
	got := ParseSections("just some prose\nwith more prose")
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %#v", got)
	}
}

func TestParseSections_FirstHeadingWins(t *testing.T) {
	raw := "PARA\nfirst body\nPARA\nsecond body"
	got := ParseSections(raw)
	if got["PARA"] != "first body" {
		t.Fatalf("first heading should win, got %q", got["PARA"])
	}
}

func TestParseSections_TailBelongsToOpenSection(t *testing.T) {
	raw := "SAĞLIK\na\nb\nc"
	got := ParseSections(raw)
	if got["SAĞLIK"] != "a b c" {
		t.Fatalf("trailing lines should join the open section, got %q", got["SAĞLIK"])
	}
}

func TestParseSections_MixedCaseIsNotHeading(t *testing.T) {
	raw := "GENEL\nBody.\nNot A Heading\nstill body"
	got := ParseSections(raw)
	if got["GENEL"] != "Body. Not A Heading still body" {
		t.Fatalf("mixed-case line must not open a section: %q", got["GENEL"])
	}
}

func TestParseSections_DigitsOnlyLineIsNotHeading(t *testing.T) {
	raw := "GENEL\nBody.\n2024\nmore body"
	got := ParseSections(raw)
	if got["GENEL"] != "Body. 2024 more body" {
		t.Fatalf("digits-only line must not open a section: %q", got["GENEL"])
	}
}

func TestCanonical_MapsHeadingsToKeys(t *testing.T) {
	parsed := map[string]string{
		"GENEL":   "g",
		"AŞK":     "l",
		"KARİYER": "c",
		"EXTRA":   "dropped",
	}
	got := Canonical(parsed, "tr")
	want := map[string]string{SectionGeneral: "g", SectionLove: "l", SectionCareer: "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Canonical = %#v; want %#v", got, want)
	}
}

func TestCanonical_EnglishHeadings(t *testing.T) {
	parsed := map[string]string{"MONEY": "m", "HEALTH": "h"}
	got := Canonical(parsed, "en")
	if got[SectionMoney] != "m" || got[SectionHealth] != "h" {
		t.Fatalf("english canonical mapping failed: %#v", got)
	}
}

func TestComplete_FillsMissingKeys(t *testing.T) {
	in := map[string]string{SectionGeneral: "present", SectionLove: "  "}
	out := Complete(in, HoroscopeSections, func(key string) string { return "default-" + key })
	if out[SectionGeneral] != "present" {
		t.Fatalf("present key overwritten: %q", out[SectionGeneral])
	}
	for _, key := range []string{SectionLove, SectionCareer, SectionHealth, SectionMoney} {
		if out[key] != "default-"+key {
			t.Fatalf("key %q not defaulted: %q", key, out[key])
		}
	}
	// Input must not be mutated.
	if in[SectionCareer] != "" {
		t.Fatalf("input mutated")
	}
}

func TestHeading_FallsBackToTurkish(t *testing.T) {
	if Heading("de", SectionLove) != "AŞK" {
		t.Fatalf("unknown language should use Turkish headings")
	}
	if Heading("en", SectionLove) != "LOVE" {
		t.Fatalf("english heading wrong")
	}
}
