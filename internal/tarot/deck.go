// Package tarot holds the static major arcana deck and the spread layouts
// offered by the reading API, plus the draw logic that picks unique cards
// with an orientation for each spread position.
package tarot

import "strings"

// Card is one major arcana card with bilingual names and the short meanings
// used both in prompts and in deterministic fallback text.
type Card struct {
	Number   int      `json:"number"`
	Name     string   `json:"name"`
	NameTR   string   `json:"name_tr"`
	Upright  string   `json:"upright"`
	Reversed string   `json:"reversed"`
	Keywords []string `json:"keywords"`
}

var deck = []Card{
	{0, "The Fool", "Deli", "new beginnings, spontaneity, a leap of faith", "recklessness, hesitation, a stalled start", []string{"beginnings", "freedom", "innocence"}},
	{1, "The Magician", "Büyücü", "willpower, resourcefulness, manifesting intent", "manipulation, scattered energy, untapped talent", []string{"will", "skill", "creation"}},
	{2, "The High Priestess", "Azize", "intuition, inner knowledge, stillness", "secrets withheld, ignoring instinct", []string{"intuition", "mystery", "wisdom"}},
	{3, "The Empress", "İmparatoriçe", "abundance, nurture, growth", "dependence, creative block, smothering", []string{"abundance", "nature", "care"}},
	{4, "The Emperor", "İmparator", "structure, authority, stability", "rigidity, domination, loss of control", []string{"order", "authority", "foundation"}},
	{5, "The Hierophant", "Aziz", "tradition, guidance, shared values", "dogma questioned, unconventional paths", []string{"tradition", "belief", "mentorship"}},
	{6, "The Lovers", "Aşıklar", "union, alignment, a heartfelt choice", "disharmony, misaligned values, avoidance", []string{"love", "choice", "harmony"}},
	{7, "The Chariot", "Savaş Arabası", "determination, momentum, disciplined victory", "scattered drive, loss of direction", []string{"victory", "drive", "control"}},
	{8, "Strength", "Güç", "quiet courage, patience, inner strength", "self-doubt, raw emotion untamed", []string{"courage", "patience", "compassion"}},
	{9, "The Hermit", "Ermiş", "introspection, solitude, inner guidance", "isolation, withdrawal, lost perspective", []string{"reflection", "solitude", "guidance"}},
	{10, "Wheel of Fortune", "Kader Çarkı", "turning points, cycles, fortune in motion", "resistance to change, a cycle repeating", []string{"fate", "cycles", "turning point"}},
	{11, "Justice", "Adalet", "fairness, truth, accountability", "imbalance, avoidance of consequences", []string{"justice", "truth", "balance"}},
	{12, "The Hanged Man", "Asılan Adam", "surrender, a new perspective, pause", "stalling, indecision, needless sacrifice", []string{"surrender", "perspective", "pause"}},
	{13, "Death", "Ölüm", "endings that clear the way, transformation", "clinging to the past, stalled change", []string{"transformation", "endings", "renewal"}},
	{14, "Temperance", "Denge", "moderation, patience, blending opposites", "excess, imbalance, impatience", []string{"balance", "moderation", "healing"}},
	{15, "The Devil", "Şeytan", "attachment, temptation, material bind", "release from chains, reclaiming power", []string{"shadow", "attachment", "desire"}},
	{16, "The Tower", "Kule", "sudden upheaval, revelation, collapse of the false", "disaster narrowly averted, feared change", []string{"upheaval", "revelation", "awakening"}},
	{17, "The Star", "Yıldız", "hope, renewal, quiet faith", "discouragement, dimmed faith", []string{"hope", "inspiration", "serenity"}},
	{18, "The Moon", "Ay", "illusion, dreams, the unconscious surfacing", "confusion lifting, fears released", []string{"illusion", "intuition", "dreams"}},
	{19, "The Sun", "Güneş", "joy, vitality, success in the open", "clouded optimism, delayed joy", []string{"joy", "success", "vitality"}},
	{20, "Judgement", "Mahkeme", "reckoning, awakening, a clear call", "self-judgement, ignoring the call", []string{"rebirth", "reckoning", "calling"}},
	{21, "The World", "Dünya", "completion, integration, arrival", "loose ends, an unfinished cycle", []string{"completion", "wholeness", "achievement"}},
}

// Deck returns the 22 major arcana in order. The slice is a copy.
func Deck() []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	return out
}

// CardByName resolves a card by its English or Turkish name
// (case-insensitive). Returns false when unknown.
func CardByName(name string) (Card, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range deck {
		if strings.ToLower(c.Name) == name || strings.ToLower(c.NameTR) == name {
			return c, true
		}
	}
	return Card{}, false
}
