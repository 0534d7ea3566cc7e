package domain_test

import (
	"errors"
	"testing"

	"fitcoach/internal/domain"
)

func validInput() domain.ProfileInput {
	return domain.ProfileInput{
		Goal:           "lose fat",
		Age:            "30",
		Height:         "175",
		Weight:         "70",
		ActivityLevel:  "moderate",
		DietPreference: "vegetarian",
		UserEmail:      "a@example.com",
	}
}

func TestValidateProfile_Accepts(t *testing.T) {
	p, err := domain.ValidateProfile(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Age != 30 || p.Height != 175 || p.Weight != 70 {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.Goal != "lose fat" || p.DietPreference != "vegetarian" {
		t.Fatalf("text fields not carried: %+v", p)
	}
}

func TestValidateProfile_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProfileInput)
	}{
		{"age zero", func(in *domain.ProfileInput) { in.Age = "0" }},
		{"age 121", func(in *domain.ProfileInput) { in.Age = "121" }},
		{"age below one", func(in *domain.ProfileInput) { in.Age = "0.9" }},
		{"age huge", func(in *domain.ProfileInput) { in.Age = "1e300" }},
		{"height 49", func(in *domain.ProfileInput) { in.Height = "49" }},
		{"height 50", func(in *domain.ProfileInput) { in.Height = "50" }},
		{"height 301", func(in *domain.ProfileInput) { in.Height = "301" }},
		{"weight 19", func(in *domain.ProfileInput) { in.Weight = "19" }},
		{"weight 301", func(in *domain.ProfileInput) { in.Weight = "301" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := domain.ValidateProfile(in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Msg != "Please enter realistic values." {
				t.Fatalf("unexpected message: %q", ve.Msg)
			}
		})
	}
}

func TestValidateProfile_Boundaries(t *testing.T) {
	in := validInput()
	in.Age, in.Height, in.Weight = "120", "300", "300"
	if _, err := domain.ValidateProfile(in); err != nil {
		t.Fatalf("upper bounds should be accepted: %v", err)
	}
	in.Age, in.Height, in.Weight = "1", "50.5", "20.5"
	if _, err := domain.ValidateProfile(in); err != nil {
		t.Fatalf("lower bounds should be accepted: %v", err)
	}
}

func TestValidateProfile_NonNumeric(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProfileInput)
	}{
		{"age text", func(in *domain.ProfileInput) { in.Age = "thirty" }},
		{"height text", func(in *domain.ProfileInput) { in.Height = "tall" }},
		{"weight NaN", func(in *domain.ProfileInput) { in.Weight = "NaN" }},
		{"weight Inf", func(in *domain.ProfileInput) { in.Weight = "+Inf" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := domain.ValidateProfile(in)
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Msg != "Invalid numeric input." {
				t.Fatalf("expected invalid numeric error, got %v", err)
			}
		})
	}
}

func TestValidateProfile_Missing(t *testing.T) {
	in := validInput()
	in.Goal = ""
	in.UserEmail = ""
	_, err := domain.ValidateProfile(in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Msg != "Missing required fields: goal, userEmail" {
		t.Fatalf("unexpected message: %q", ve.Msg)
	}
}

func TestValidateProfile_TrimsNumbers(t *testing.T) {
	in := validInput()
	in.Age = " 42 "
	p, err := domain.ValidateProfile(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Age != 42 {
		t.Fatalf("expected 42, got %d", p.Age)
	}
}

func TestValidateProfile_AgeNumberForms(t *testing.T) {
	tests := []struct {
		age  string
		want int
	}{
		{"30", 30},
		{"30.0", 30},
		{"3e1", 30},
		{"30.7", 30},
	}
	for _, tc := range tests {
		t.Run(tc.age, func(t *testing.T) {
			in := validInput()
			in.Age = tc.age
			p, err := domain.ValidateProfile(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Age != tc.want {
				t.Fatalf("age = %d; want %d", p.Age, tc.want)
			}
		})
	}
}
