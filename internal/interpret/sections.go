// Package interpret implements the shared text pipeline behind every
// AI-generated reading: prompt construction, parsing of the provider's
// free-form response into named sections, and deterministic fallback text
// when the provider fails or a section is missing.
package interpret

import (
	"strings"
	"unicode"
)

// Canonical section keys every horoscope-shaped reading must carry.
const (
	SectionGeneral = "general"
	SectionLove    = "love"
	SectionCareer  = "career"
	SectionHealth  = "health"
	SectionMoney   = "money"
)

// HoroscopeSections lists the canonical keys in presentation order.
var HoroscopeSections = []string{SectionGeneral, SectionLove, SectionCareer, SectionHealth, SectionMoney}

// sectionHeadings maps language -> canonical key -> the upper-case heading
// the prompt asks the provider to emit and the parser expects back.
var sectionHeadings = map[string]map[string]string{
	"tr": {
		SectionGeneral: "GENEL",
		SectionLove:    "AŞK",
		SectionCareer:  "KARİYER",
		SectionHealth:  "SAĞLIK",
		SectionMoney:   "PARA",
	},
	"en": {
		SectionGeneral: "GENERAL",
		SectionLove:    "LOVE",
		SectionCareer:  "CAREER",
		SectionHealth:  "HEALTH",
		SectionMoney:   "MONEY",
	},
}

// Heading returns the upper-case heading for a canonical key in the given
// language. Unknown languages fall back to Turkish.
func Heading(lang, key string) string {
	hs, ok := sectionHeadings[lang]
	if !ok {
		hs = sectionHeadings["tr"]
	}
	return hs[key]
}

// ParseSections splits a raw provider response into heading -> body.
//
// A line is treated as a section heading when, after stripping an optional
// "N. " numbering prefix and trailing ":" or ")", it contains at least one
// letter and no lower-case letters (Unicode-aware, so Turkish headings such
// as "AŞK" or "KARİYER" qualify). All non-empty lines following a heading,
// up to the next heading or EOF, are space-joined as that heading's body.
//
// The scan is a single pass with no lookahead: the first heading match wins
// and trailing non-heading lines belong to the open section. A response with
// no recognized headings yields an empty map.
func ParseSections(raw string) map[string]string {
	out := make(map[string]string)
	var current string
	var body []string

	flush := func() {
		if current == "" {
			return
		}
		if _, exists := out[current]; exists {
			return // first heading match wins
		}
		out[current] = strings.Join(body, " ")
	}

	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if h, ok := headingOf(line); ok {
			flush()
			current, body = h, nil
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()
	return out
}

// Canonical re-keys a parsed heading map onto the canonical section keys for
// the given language. Headings that match no expected section are dropped;
// missing sections are simply absent (fallback substitution happens in
// Complete).
func Canonical(parsed map[string]string, lang string) map[string]string {
	hs, ok := sectionHeadings[lang]
	if !ok {
		hs = sectionHeadings["tr"]
	}
	out := make(map[string]string, len(HoroscopeSections))
	for key, heading := range hs {
		if body, ok := parsed[heading]; ok && strings.TrimSpace(body) != "" {
			out[key] = body
		}
	}
	return out
}

// Complete guarantees every expected key is present and non-empty, filling
// gaps from the defaults function. The input map is not mutated.
func Complete(sections map[string]string, expected []string, defaults func(key string) string) map[string]string {
	out := make(map[string]string, len(expected))
	for _, key := range expected {
		if v, ok := sections[key]; ok && strings.TrimSpace(v) != "" {
			out[key] = v
			continue
		}
		out[key] = defaults(key)
	}
	return out
}

// headingOf normalizes a candidate heading line and reports whether it
// qualifies. Stripped: a leading "N. " / "N) " numbering prefix and a
// trailing ":" or ")".
func headingOf(line string) (string, bool) {
	s := stripNumbering(line)
	s = strings.TrimRight(s, ":)")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return "", false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	if !hasLetter {
		return "", false
	}
	return s, true
}

// stripNumbering removes an "N. " or "N) " prefix when present.
func stripNumbering(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) {
		return s
	}
	if s[i] == '.' || s[i] == ')' {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
