// Package astro holds the static zodiac data used across horoscope,
// compatibility, and birth chart generation. The twelve signs, their
// attributes, and their calendar bands are fixed; nothing here touches the
// database or the network.
package astro

import (
	"strings"
	"time"
)

// Element is one of the four classical elements a sign belongs to.
type Element string

// Quality is a sign's modality.
type Quality string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"

	Cardinal Quality = "cardinal"
	Fixed    Quality = "fixed"
	Mutable  Quality = "mutable"
)

// Sign describes one zodiac sign. NameTR carries the Turkish display name
// used in generated content; Slug is the stable API identifier.
type Sign struct {
	Slug    string  `json:"slug"`
	Name    string  `json:"name"`
	NameTR  string  `json:"name_tr"`
	Element Element `json:"element"`
	Quality Quality `json:"quality"`
	Planet  string  `json:"ruling_planet"`

	// Calendar band, inclusive on both ends. StartMonth/StartDay is the
	// first day of the sign; Capricorn wraps the year boundary.
	StartMonth time.Month `json:"-"`
	StartDay   int        `json:"-"`
	EndMonth   time.Month `json:"-"`
	EndDay     int        `json:"-"`
}

// signs is ordered by band start within the calendar year (Aries first, the
// conventional zodiac order). SignForDate relies on this ordering.
var signs = []Sign{
	{Slug: "aries", Name: "Aries", NameTR: "Koç", Element: Fire, Quality: Cardinal, Planet: "Mars", StartMonth: time.March, StartDay: 21, EndMonth: time.April, EndDay: 19},
	{Slug: "taurus", Name: "Taurus", NameTR: "Boğa", Element: Earth, Quality: Fixed, Planet: "Venus", StartMonth: time.April, StartDay: 20, EndMonth: time.May, EndDay: 20},
	{Slug: "gemini", Name: "Gemini", NameTR: "İkizler", Element: Air, Quality: Mutable, Planet: "Mercury", StartMonth: time.May, StartDay: 21, EndMonth: time.June, EndDay: 20},
	{Slug: "cancer", Name: "Cancer", NameTR: "Yengeç", Element: Water, Quality: Cardinal, Planet: "Moon", StartMonth: time.June, StartDay: 21, EndMonth: time.July, EndDay: 22},
	{Slug: "leo", Name: "Leo", NameTR: "Aslan", Element: Fire, Quality: Fixed, Planet: "Sun", StartMonth: time.July, StartDay: 23, EndMonth: time.August, EndDay: 22},
	{Slug: "virgo", Name: "Virgo", NameTR: "Başak", Element: Earth, Quality: Mutable, Planet: "Mercury", StartMonth: time.August, StartDay: 23, EndMonth: time.September, EndDay: 22},
	{Slug: "libra", Name: "Libra", NameTR: "Terazi", Element: Air, Quality: Cardinal, Planet: "Venus", StartMonth: time.September, StartDay: 23, EndMonth: time.October, EndDay: 22},
	{Slug: "scorpio", Name: "Scorpio", NameTR: "Akrep", Element: Water, Quality: Fixed, Planet: "Pluto", StartMonth: time.October, StartDay: 23, EndMonth: time.November, EndDay: 21},
	{Slug: "sagittarius", Name: "Sagittarius", NameTR: "Yay", Element: Fire, Quality: Mutable, Planet: "Jupiter", StartMonth: time.November, StartDay: 22, EndMonth: time.December, EndDay: 21},
	{Slug: "capricorn", Name: "Capricorn", NameTR: "Oğlak", Element: Earth, Quality: Cardinal, Planet: "Saturn", StartMonth: time.December, StartDay: 22, EndMonth: time.January, EndDay: 19},
	{Slug: "aquarius", Name: "Aquarius", NameTR: "Kova", Element: Air, Quality: Fixed, Planet: "Uranus", StartMonth: time.January, StartDay: 20, EndMonth: time.February, EndDay: 18},
	{Slug: "pisces", Name: "Pisces", NameTR: "Balık", Element: Water, Quality: Mutable, Planet: "Neptune", StartMonth: time.February, StartDay: 19, EndMonth: time.March, EndDay: 20},
}

// Signs returns all twelve signs in conventional zodiac order.
// The returned slice is a copy; callers may not mutate the static data.
func Signs() []Sign {
	out := make([]Sign, len(signs))
	copy(out, signs)
	return out
}

// SignBySlug looks a sign up by its API slug (case-insensitive).
// The second return value is false when the slug is unknown.
func SignBySlug(slug string) (Sign, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, s := range signs {
		if s.Slug == slug {
			return s, true
		}
	}
	return Sign{}, false
}

// SignForDate classifies a calendar date into its zodiac band. The scan is a
// linear interval search over (month, day); Capricorn's band wraps the year
// boundary and is matched by either of its halves.
func SignForDate(t time.Time) Sign {
	m, d := t.Month(), t.Day()
	for _, s := range signs {
		if s.StartMonth <= s.EndMonth {
			if afterOrOn(m, d, s.StartMonth, s.StartDay) && beforeOrOn(m, d, s.EndMonth, s.EndDay) {
				return s
			}
			continue
		}
		// Wrapping band: matches the tail of the year or the head.
		if afterOrOn(m, d, s.StartMonth, s.StartDay) || beforeOrOn(m, d, s.EndMonth, s.EndDay) {
			return s
		}
	}
	// Unreachable: the bands cover the full year.
	return signs[0]
}

func afterOrOn(m time.Month, d int, sm time.Month, sd int) bool {
	return m > sm || (m == sm && d >= sd)
}

func beforeOrOn(m time.Month, d int, em time.Month, ed int) bool {
	return m < em || (m == em && d <= ed)
}
