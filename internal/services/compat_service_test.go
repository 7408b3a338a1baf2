package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kehanet/go-arcana-backend/internal/astro"
)

const providerCompat = "GENEL\nDengeleyici bir eşleşme.\n\nAŞK\nSabır kazandırır.\n\nKARİYER\nRolleri netleştirin."

func TestCompatibility_OrderInsensitive(t *testing.T) {
	db := newServiceDB(t)
	provider := &fakeAI{text: providerCompat}
	svc := NewCompatibilityService(db, provider, "tr")
	at := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	ab, err := svc.Compatibility(context.Background(), "aries", "libra", at, "tr")
	if err != nil {
		t.Fatalf("aries+libra: %v", err)
	}
	ba, err := svc.Compatibility(context.Background(), "libra", "aries", at, "tr")
	if err != nil {
		t.Fatalf("libra+aries: %v", err)
	}
	if ab.ID != ba.ID {
		t.Fatalf("pair ordering must not create a second row")
	}
	if ab.SignA != "aries" || ab.SignB != "libra" {
		t.Fatalf("canonical order: %s, %s", ab.SignA, ab.SignB)
	}
	if provider.calls != 1 {
		t.Fatalf("provider called %d times; want 1", provider.calls)
	}
	if ab.General != "Dengeleyici bir eşleşme." {
		t.Fatalf("general = %q", ab.General)
	}
}

func TestCompatibility_UnknownSign(t *testing.T) {
	svc := NewCompatibilityService(newServiceDB(t), &fakeAI{text: providerCompat}, "tr")
	if _, err := svc.Compatibility(context.Background(), "aries", "serpent", time.Now(), "tr"); !errors.Is(err, ErrUnknownSign) {
		t.Fatalf("expected ErrUnknownSign, got %v", err)
	}
}

func TestCompatibility_FallbackSectionsComplete(t *testing.T) {
	svc := NewCompatibilityService(newServiceDB(t), &fakeAI{err: errors.New("down")}, "tr")
	r, err := svc.Compatibility(context.Background(), "gemini", "pisces", time.Now().UTC(), "en")
	if err != nil {
		t.Fatalf("compat: %v", err)
	}
	if r.Source != "fallback" {
		t.Fatalf("source = %s", r.Source)
	}
	for key, body := range map[string]string{"general": r.General, "love": r.Love, "career": r.Career} {
		if strings.TrimSpace(body) == "" {
			t.Fatalf("fallback left %s empty", key)
		}
	}
}

func TestHarmonyScore_SymmetricAndBounded(t *testing.T) {
	signs := astro.Signs()
	for _, a := range signs {
		for _, b := range signs {
			s1 := HarmonyScore(a, b)
			s2 := HarmonyScore(b, a)
			if s1 != s2 {
				t.Fatalf("HarmonyScore(%s,%s)=%d but reversed=%d", a.Slug, b.Slug, s1, s2)
			}
			if s1 < 0 || s1 > 100 {
				t.Fatalf("score out of range: %s+%s=%d", a.Slug, b.Slug, s1)
			}
		}
	}
}

func TestHarmonyScore_ElementPairs(t *testing.T) {
	leo, _ := astro.SignBySlug("leo")         // fire, fixed
	aries, _ := astro.SignBySlug("aries")     // fire, cardinal
	libra, _ := astro.SignBySlug("libra")     // air, cardinal
	cancer, _ := astro.SignBySlug("cancer")   // water, cardinal
	scorpio, _ := astro.SignBySlug("scorpio") // water, fixed

	if HarmonyScore(leo, libra) <= HarmonyScore(leo, cancer) {
		t.Fatalf("fire+air should beat fire+water")
	}
	if HarmonyScore(aries, leo) == HarmonyScore(aries, scorpio) {
		t.Fatalf("distinct pairings should differ: %d vs %d",
			HarmonyScore(aries, leo), HarmonyScore(aries, scorpio))
	}
}
