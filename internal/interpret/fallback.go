package interpret

import (
	"fmt"
	"strings"

	"github.com/osteele/liquid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kehanet/go-arcana-backend/internal/astro"
	"github.com/kehanet/go-arcana-backend/internal/tarot"
)

// Fallbacks produces deterministic placeholder text from local data only.
// It is the last link of the provider chain: no network, no randomness.
//
// Templates are Liquid sources keyed by "<name>.<lang>" so site operators can
// override the wording at runtime (overrides come from the settings row);
// the compiled-in defaults below are used otherwise. A template that fails
// to render degrades to a plain formatted sentence, so fallback output is
// never empty.
type Fallbacks struct {
	engine    *liquid.Engine
	overrides map[string]string
}

// NewFallbacks builds a generator; overrides may be nil.
func NewFallbacks(overrides map[string]string) *Fallbacks {
	return &Fallbacks{engine: liquid.NewEngine(), overrides: overrides}
}

var defaultTemplates = map[string]string{
	"horoscope.general.tr": "{{ sign }} burcu için sakin bir dönem. {{ element_tr }} elementinin etkisiyle dengenizi korumanız kolaylaşıyor; {{ planet }} gezegeninin desteği yanınızda.",
	"horoscope.love.tr":    "{{ sign }} burcu aşk hayatında açık iletişime yönelmeli. Duygularınızı paylaşmak ilişkilerinizi güçlendirir.",
	"horoscope.career.tr":  "Kariyerde {{ sign }} burcunun {{ quality_tr }} doğası öne çıkıyor. Planlı ilerleyen adımlar karşılığını verir.",
	"horoscope.health.tr":  "{{ sign }} burcu için dinlenmeye zaman ayırmak önemli. Bedeninizin ritmini dinleyin.",
	"horoscope.money.tr":   "Maddi konularda {{ sign }} burcu temkinli davranmalı. Acele kararlar yerine birikime yönelin.",

	"horoscope.general.en": "A steady stretch for {{ sign }}. The {{ element }} element keeps you grounded, and {{ planet }} lends quiet support.",
	"horoscope.love.en":    "{{ sign }} benefits from speaking plainly in matters of the heart. Honest words strengthen your bonds.",
	"horoscope.career.en":  "At work the {{ quality }} nature of {{ sign }} comes forward. Deliberate steps pay off.",
	"horoscope.health.en":  "{{ sign }} should make room for rest. Listen to your body's rhythm.",
	"horoscope.money.en":   "In money matters {{ sign }} does well to stay cautious. Favor saving over sudden moves.",

	"tarot.reading.tr": "Açılımınızda {{ cards }} kartları yer alıyor. {{ first_card }} kartı {{ first_meaning }} temasına işaret ediyor. Kartların ortak mesajı: iç sesinize güvenin ve adımlarınızı acele etmeden atın.",
	"tarot.reading.en": "Your spread shows {{ cards }}. {{ first_card }} points toward {{ first_meaning }}. Taken together, the cards counsel trusting your instincts and moving without haste.",

	"tarot.daily.tr": "Günün kartı {{ card }}. Bu kart {{ meaning }} temasını taşıyor; bugün {{ keyword }} konusuna dikkat edin.",
	"tarot.daily.en": "Today's card is {{ card }}, carrying the theme of {{ meaning }}. Keep an eye on {{ keyword }} today.",

	"compatibility.general.tr": "{{ sign_a }} ile {{ sign_b }} arasında {{ element_a_tr }} ve {{ element_b_tr }} elementlerinin dengesi belirleyici. Farklılıklarınız birbirinizi tamamlayabilir.",
	"compatibility.love.tr":    "{{ sign_a }} ve {{ sign_b }} aşkta sabırlı olursa uyum güçlenir. Beklentileri açıkça konuşmak önemli.",
	"compatibility.career.tr":  "{{ sign_a }} ve {{ sign_b }} iş birliğinde rolleri netleştirirse verim artar.",
	"compatibility.general.en": "Between {{ sign_a }} and {{ sign_b }}, the balance of {{ element_a }} and {{ element_b }} sets the tone. Your differences can complete each other.",
	"compatibility.love.en":    "{{ sign_a }} and {{ sign_b }} grow closer with patience in love. Naming expectations openly matters.",
	"compatibility.career.en":  "When {{ sign_a }} and {{ sign_b }} define their roles, working together flows.",

	"birthchart.tr": "Güneş burcunuz {{ sign }}. {{ element_tr }} elementi ve {{ quality_tr }} niteliği kişiliğinize yön veriyor; {{ planet }} gezegeninin etkisi belirgin. Güçlü yanlarınızı sahiplenin, gelişim alanlarınıza nazik yaklaşın.",
	"birthchart.en": "Your sun sign is {{ sign }}. The {{ element }} element and {{ quality }} quality shape your character, with {{ planet }} as a guiding influence. Own your strengths and be gentle with your growth areas.",

	"blog.body.tr": "{{ topic }} üzerine söylenecek çok şey var. Bu yazı hazırlanırken bir aksaklık yaşandı; kısa süre içinde güncellenecek.",
	"blog.body.en": "There is much to say about {{ topic }}. This post hit a snag while being prepared and will be updated shortly.",
}

var elementTR = map[astro.Element]string{
	astro.Fire:  "ateş",
	astro.Earth: "toprak",
	astro.Air:   "hava",
	astro.Water: "su",
}

var qualityTR = map[astro.Quality]string{
	astro.Cardinal: "öncü",
	astro.Fixed:    "sabit",
	astro.Mutable:  "değişken",
}

// render resolves the template for name+lang (override first, then default)
// and renders it. Any failure degrades to plain, so the result is non-empty
// as long as plain is.
func (f *Fallbacks) render(name, lang, plain string, bindings map[string]any) string {
	key := name + "." + lang
	src, ok := f.overrides[key]
	if !ok || strings.TrimSpace(src) == "" {
		src, ok = defaultTemplates[key]
	}
	if !ok {
		return plain
	}
	out, err := f.engine.ParseAndRenderString(src, bindings)
	if err != nil || strings.TrimSpace(out) == "" {
		return plain
	}
	return strings.TrimSpace(out)
}

func signName(s astro.Sign, lang string) string {
	if lang == "en" {
		return s.Name
	}
	return s.NameTR
}

func signBindings(s astro.Sign, lang string) map[string]any {
	return map[string]any{
		"sign":       signName(s, lang),
		"element":    string(s.Element),
		"element_tr": elementTR[s.Element],
		"quality":    string(s.Quality),
		"quality_tr": qualityTR[s.Quality],
		"planet":     s.Planet,
	}
}

// HoroscopeDefault returns a per-key default function suitable for Complete.
func (f *Fallbacks) HoroscopeDefault(sign astro.Sign, lang string) func(key string) string {
	return func(key string) string {
		plain := fmt.Sprintf("%s: %s", Heading(lang, key), signName(sign, lang))
		return f.render("horoscope."+key, lang, plain, signBindings(sign, lang))
	}
}

// Tarot renders deterministic reading text from the drawn cards alone.
func (f *Fallbacks) Tarot(cards []tarot.DrawnCard, lang string) string {
	if len(cards) == 0 {
		return f.render("tarot.reading", lang, "The cards are silent today.", map[string]any{
			"cards": "", "first_card": "", "first_meaning": "",
		})
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = cardName(c.Card, lang)
	}
	first := cards[0]
	plain := fmt.Sprintf("%s: %s", cardName(first.Card, lang), first.Meaning())
	return f.render("tarot.reading", lang, plain, map[string]any{
		"cards":         strings.Join(names, ", "),
		"first_card":    cardName(first.Card, lang),
		"first_meaning": first.Meaning(),
	})
}

// DailyCard renders deterministic card-of-the-day text.
func (f *Fallbacks) DailyCard(card tarot.DrawnCard, lang string) string {
	keyword := ""
	if len(card.Card.Keywords) > 0 {
		keyword = card.Card.Keywords[0]
	}
	caser := cases.Title(localeFor(lang))
	plain := fmt.Sprintf("%s: %s", cardName(card.Card, lang), card.Meaning())
	return f.render("tarot.daily", lang, plain, map[string]any{
		"card":    cardName(card.Card, lang),
		"meaning": card.Meaning(),
		"keyword": caser.String(keyword),
	})
}

// CompatibilityDefault returns a per-key default function for the
// compatibility sections (general, love, career).
func (f *Fallbacks) CompatibilityDefault(a, b astro.Sign, lang string) func(key string) string {
	bindings := map[string]any{
		"sign_a":       signName(a, lang),
		"sign_b":       signName(b, lang),
		"element_a":    string(a.Element),
		"element_b":    string(b.Element),
		"element_a_tr": elementTR[a.Element],
		"element_b_tr": elementTR[b.Element],
	}
	return func(key string) string {
		plain := fmt.Sprintf("%s & %s", signName(a, lang), signName(b, lang))
		return f.render("compatibility."+key, lang, plain, bindings)
	}
}

// BirthChart renders deterministic natal summary text.
func (f *Fallbacks) BirthChart(sun astro.Sign, lang string) string {
	plain := fmt.Sprintf("Sun sign %s", signName(sun, lang))
	return f.render("birthchart", lang, plain, signBindings(sun, lang))
}

// BlogBody renders placeholder body text for a failed blog draft.
func (f *Fallbacks) BlogBody(topic, lang string) string {
	return f.render("blog.body", lang, topic, map[string]any{"topic": topic})
}

func cardName(c tarot.Card, lang string) string {
	if lang == "en" {
		return c.Name
	}
	return c.NameTR
}

// localeFor maps a content language code to its x/text tag; Turkish casing
// matters for keywords like "istanbul" -> "İstanbul".
func localeFor(lang string) language.Tag {
	if lang == "en" {
		return language.English
	}
	return language.Turkish
}
