// Package domain contains the core business entities and interfaces.
package domain

import (
	"math"
	"strconv"
	"strings"
)

// UserProfile is the normalized fitness profile a plan is generated from.
type UserProfile struct {
	Goal           string  `json:"goal"`
	Age            int     `json:"age"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ActivityLevel  string  `json:"activityLevel"`
	DietPreference string  `json:"dietPreference"`
}

// ProfileInput is the raw profile payload. Numeric fields are kept as text
// because clients send them either as JSON numbers or as form strings.
type ProfileInput struct {
	Goal           string
	Age            string
	Height         string
	Weight         string
	ActivityLevel  string
	DietPreference string
	UserEmail      string
}

// ValidateProfile checks required fields and realistic ranges and returns the
// normalized profile.
func ValidateProfile(in ProfileInput) (UserProfile, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"goal", in.Goal},
		{"age", in.Age},
		{"height", in.Height},
		{"weight", in.Weight},
		{"activityLevel", in.ActivityLevel},
		{"dietPreference", in.DietPreference},
		{"userEmail", in.UserEmail},
	}
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return UserProfile{}, Invalid("Missing required fields: " + strings.Join(missing, ", "))
	}

	ageValue, err := ParseNumber(in.Age)
	if err != nil {
		return UserProfile{}, Invalid("Invalid numeric input.")
	}
	// Fractional ages truncate toward zero; huge values stay 0 and fail the range check.
	var age int
	if math.Abs(ageValue) < 1000 {
		age = int(ageValue)
	}
	height, err := ParseNumber(in.Height)
	if err != nil {
		return UserProfile{}, Invalid("Invalid numeric input.")
	}
	weight, err := ParseNumber(in.Weight)
	if err != nil {
		return UserProfile{}, Invalid("Invalid numeric input.")
	}

	if age <= 0 || age > 120 || height <= 50 || height > 300 || weight <= 20 || weight > 300 {
		return UserProfile{}, Invalid("Please enter realistic values.")
	}

	return UserProfile{
		Goal:           in.Goal,
		Age:            age,
		Height:         height,
		Weight:         weight,
		ActivityLevel:  in.ActivityLevel,
		DietPreference: in.DietPreference,
	}, nil
}

// ParseNumber parses a finite decimal number, ignoring surrounding spaces.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
