package app

import (
	"fmt"
	"strconv"
	"strings"

	"fitcoach/internal/domain"
)

// TrustedSources are the only sources the model may link to.
var TrustedSources = []string{
	"Healthline",
	"Mayo Clinic",
	"WebMD",
	"YouTube",
	"official health sites (NIH, CDC, WHO, NHS)",
}

// resourcesInstruction is appended to every prompt. The model is asked not
// to invent links; nothing downstream verifies that it complied.
func resourcesInstruction() string {
	return "At the end of the response, include a section titled 'Helpful Resources:'\n" +
		"List 2-3 helpful, real, verified links in markdown format, like:\n" +
		"[Title](https://real-url.com)\n\n" +
		"Do not include fake links, invented URLs, or placeholders.\n" +
		"Only use working URLs from reputable sources like " + strings.Join(TrustedSources, ", ") + ".\n"
}

// PlanPrompt builds the prompt for a personalized fitness and diet plan.
func PlanPrompt(p domain.UserProfile) string {
	var b strings.Builder
	b.WriteString("Create a personalized fitness and diet plan for the following user:\n")
	fmt.Fprintf(&b, "Goal: %s\n", p.Goal)
	fmt.Fprintf(&b, "Age: %d\n", p.Age)
	fmt.Fprintf(&b, "Height: %s cm\n", formatNumber(p.Height))
	fmt.Fprintf(&b, "Weight: %s kg\n", formatNumber(p.Weight))
	fmt.Fprintf(&b, "Activity Level: %s\n", p.ActivityLevel)
	fmt.Fprintf(&b, "Diet Preference: %s\n\n", p.DietPreference)
	b.WriteString(resourcesInstruction())
	return b.String()
}

// ChatPrompt builds the coaching reply prompt for a free-form user message.
func ChatPrompt(message, planText, weightLog, language string) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI fitness coach. The user asked:\n")
	fmt.Fprintf(&b, "\"%s\"\n\n", message)
	b.WriteString("User Info:\n")
	fmt.Fprintf(&b, "- Latest Plan: %s\n", planText)
	b.WriteString("- Recent Weight Log:\n")
	b.WriteString(weightLog)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Respond helpfully in %s. Keep it friendly and brief.\n\n", language)
	b.WriteString(resourcesInstruction())
	return b.String()
}

// DailyPrompt builds the prompt for today's routine from the latest plan and
// recent weight logs.
func DailyPrompt(planText, weightLog string) string {
	var b strings.Builder
	b.WriteString("You are a smart AI fitness assistant.\n\n")
	b.WriteString("Based on this user's latest plan and recent weight logs, generate a personalized DAILY fitness and diet routine they should follow today.\n\n")
	b.WriteString("Plan:\n")
	b.WriteString(planText)
	b.WriteString("\n\nRecent Weight Log:\n")
	b.WriteString(weightLog)
	b.WriteString("\n\nInclude detailed workout and meals for the day.\n")
	b.WriteString(resourcesInstruction())
	return b.String()
}

// WeightLog renders entries one per line as "YYYY-MM-DD: <weight>kg".
func WeightLog(entries []domain.ProgressEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, domain.DayKey(e.Timestamp)+": "+formatNumber(e.Weight)+"kg")
	}
	return strings.Join(lines, "\n")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
