package interpret

import (
	"fmt"
	"strings"
	"time"

	"github.com/kehanet/go-arcana-backend/internal/astro"
	"github.com/kehanet/go-arcana-backend/internal/tarot"
)

// Prompt building is pure string formatting: structured inputs in, one
// instruction string out. Every builder numbers its instructions and asks
// for the exact upper-case headings ParseSections expects back, so parsing
// stays a dumb line scan rather than a guessing game.

// languageName spells the target language out for the model.
func languageName(lang string) string {
	if lang == "en" {
		return "English"
	}
	return "Turkish"
}

// HoroscopePeriod names the cadence a horoscope prompt covers.
type HoroscopePeriod string

const (
	PeriodDaily   HoroscopePeriod = "daily"
	PeriodWeekly  HoroscopePeriod = "weekly"
	PeriodMonthly HoroscopePeriod = "monthly"
)

// HoroscopePrompt builds the instruction string for one sign and period.
func HoroscopePrompt(sign astro.Sign, period HoroscopePeriod, ref time.Time, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an experienced astrologer. Write a %s horoscope in %s for the zodiac sign %s (%s).\n",
		period, languageName(lang), sign.Name, sign.NameTR)
	fmt.Fprintf(&b, "Sign attributes: element %s, quality %s, ruling planet %s.\n", sign.Element, sign.Quality, sign.Planet)
	switch period {
	case PeriodWeekly:
		year, week := ref.ISOWeek()
		fmt.Fprintf(&b, "The horoscope covers ISO week %d of %d.\n", week, year)
	case PeriodMonthly:
		fmt.Fprintf(&b, "The horoscope covers %s %d.\n", ref.Month(), ref.Year())
	default:
		fmt.Fprintf(&b, "The horoscope is for %s.\n", ref.Format("2 January 2006"))
	}
	b.WriteString("Instructions:\n")
	for i, key := range HoroscopeSections {
		fmt.Fprintf(&b, "%d. Write a section titled exactly %s on its own line, followed by 2-3 sentences.\n",
			i+1, Heading(lang, key))
	}
	fmt.Fprintf(&b, "%d. Use only the section titles above as headings, in upper case, with no other formatting.\n",
		len(HoroscopeSections)+1)
	return b.String()
}

// TarotPrompt builds the instruction string for a drawn spread.
func TarotPrompt(question string, spread tarot.Spread, cards []tarot.DrawnCard, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a seasoned tarot reader. Interpret a %s spread in %s.\n", spread.Title, languageName(lang))
	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintf(&b, "The querent asks: %q\n", q)
	}
	b.WriteString("Cards drawn:\n")
	for i, dc := range cards {
		orientation := "upright"
		if dc.Reversed {
			orientation = "reversed"
		}
		fmt.Fprintf(&b, "%d. %s — %s (%s): %s\n", i+1, dc.Position, dc.Card.Name, orientation, dc.Meaning())
	}
	b.WriteString("Instructions:\n")
	b.WriteString("1. Address each position in order, weaving the card meanings into one coherent reading.\n")
	b.WriteString("2. Close with practical guidance the querent can act on.\n")
	b.WriteString("3. Write flowing prose without headings or markdown.\n")
	return b.String()
}

// DailyCardPrompt builds the instruction string for the card-of-the-day.
func DailyCardPrompt(card tarot.DrawnCard, ref time.Time, lang string) string {
	orientation := "upright"
	if card.Reversed {
		orientation = "reversed"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "You are a seasoned tarot reader. The card of the day for %s is %s (%s), drawn %s.\n",
		ref.Format("2 January 2006"), card.Card.Name, card.Card.NameTR, orientation)
	fmt.Fprintf(&b, "Card meaning: %s. Keywords: %s.\n", card.Meaning(), strings.Join(card.Card.Keywords, ", "))
	fmt.Fprintf(&b, "Write 3-4 sentences in %s on what this card invites the reader to notice today. No headings.\n",
		languageName(lang))
	return b.String()
}

// CompatibilityPrompt builds the instruction string for a sign pair.
func CompatibilityPrompt(a, b astro.Sign, score int, lang string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an experienced astrologer. Write a compatibility reading in %s for %s (%s) and %s (%s).\n",
		languageName(lang), a.Name, a.NameTR, b.Name, b.NameTR)
	fmt.Fprintf(&sb, "%s is a %s %s sign ruled by %s; %s is a %s %s sign ruled by %s.\n",
		a.Name, a.Quality, a.Element, a.Planet, b.Name, b.Quality, b.Element, b.Planet)
	fmt.Fprintf(&sb, "Their computed harmony score is %d out of 100; let the tone reflect it without quoting the number.\n", score)
	sb.WriteString("Instructions:\n")
	for i, key := range []string{SectionGeneral, SectionLove, SectionCareer} {
		fmt.Fprintf(&sb, "%d. Write a section titled exactly %s on its own line, followed by 2-3 sentences.\n",
			i+1, Heading(lang, key))
	}
	sb.WriteString("4. Use only those upper-case section titles, nothing else.\n")
	return sb.String()
}

// BirthChartPrompt builds the instruction string for a natal summary.
func BirthChartPrompt(sun astro.Sign, birth time.Time, place, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an experienced astrologer. Write a natal chart summary in %s.\n", languageName(lang))
	fmt.Fprintf(&b, "Birth: %s", birth.Format("2 January 2006 15:04"))
	if p := strings.TrimSpace(place); p != "" {
		fmt.Fprintf(&b, " in %s", p)
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Sun sign: %s (%s), element %s, quality %s, ruling planet %s.\n",
		sun.Name, sun.NameTR, sun.Element, sun.Quality, sun.Planet)
	b.WriteString("Instructions:\n")
	b.WriteString("1. Describe the core personality the sun sign suggests, in 4-6 sentences.\n")
	b.WriteString("2. Mention strengths first, growth areas second.\n")
	b.WriteString("3. Write flowing prose without headings or markdown.\n")
	return b.String()
}

// BlogPrompt builds the instruction string for a blog draft on a topic.
func BlogPrompt(topic, lang string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the editor of an astrology and tarot blog. Write a blog post in %s about: %s\n",
		languageName(lang), strings.TrimSpace(topic))
	b.WriteString("Instructions:\n")
	b.WriteString("1. Open with the post title in upper case on the first line.\n")
	b.WriteString("2. Follow with 4-6 short paragraphs of body text.\n")
	b.WriteString("3. Keep the tone warm and grounded; no markdown, no bullet lists.\n")
	return b.String()
}
