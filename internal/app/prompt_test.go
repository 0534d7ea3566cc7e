package app_test

import (
	"strings"
	"testing"
	"time"

	"fitcoach/internal/app"
	"fitcoach/internal/domain"
)

func assertResourcesSection(t *testing.T, prompt string) {
	t.Helper()
	for _, want := range []string{"Helpful Resources:", "2-3", "markdown", "Do not include fake links", "Mayo Clinic", "Healthline"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestPlanPrompt(t *testing.T) {
	p := app.PlanPrompt(domain.UserProfile{
		Goal: "build muscle", Age: 28, Height: 181.5, Weight: 77,
		ActivityLevel: "high", DietPreference: "vegan",
	})
	for _, want := range []string{"Goal: build muscle", "Age: 28", "Height: 181.5 cm", "Weight: 77 kg", "Activity Level: high", "Diet Preference: vegan"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	assertResourcesSection(t, p)
}

func TestChatPrompt(t *testing.T) {
	p := app.ChatPrompt("how much protein?", "PLAN", "2026-01-01: 80kg", "Spanish")
	for _, want := range []string{`"how much protein?"`, "Latest Plan: PLAN", "2026-01-01: 80kg", "Respond helpfully in Spanish"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	assertResourcesSection(t, p)
}

func TestDailyPrompt(t *testing.T) {
	p := app.DailyPrompt("PLAN", "LOG")
	for _, want := range []string{"DAILY fitness and diet routine", "Plan:\nPLAN", "Recent Weight Log:\nLOG"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	assertResourcesSection(t, p)
}

func TestWeightLog(t *testing.T) {
	entries := []domain.ProgressEntry{
		{Weight: 80.5, Timestamp: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)},
		{Weight: 81, Timestamp: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	if got, want := app.WeightLog(entries), "2026-01-02: 80.5kg\n2026-01-01: 81kg"; got != want {
		t.Fatalf("WeightLog = %q; want %q", got, want)
	}
	if got := app.WeightLog(nil); got != "" {
		t.Fatalf("expected empty log, got %q", got)
	}
}
