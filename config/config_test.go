package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContentDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("ValidateYAMLContent: %v", err)
	}

	if cfg.Week.TargetHours != 40 {
		t.Errorf("target hours = %v, want 40", cfg.Week.TargetHours)
	}
	if cfg.Week.DefaultLunchMinutes != 60 {
		t.Errorf("default lunch = %v, want 60", cfg.Week.DefaultLunchMinutes)
	}
	if cfg.Serve.Port != 8080 {
		t.Errorf("port = %v, want 8080", cfg.Serve.Port)
	}

	opts, err := cfg.CalcOptions()
	if err != nil {
		t.Fatalf("CalcOptions: %v", err)
	}
	if opts.FridayDefaultStart.Hour != 8 || opts.FridayDefaultStart.Minute != 0 {
		t.Errorf("friday default start = %+v, want 8:00", opts.FridayDefaultStart)
	}
}

func TestValidateYAMLContentOverrides(t *testing.T) {
	t.Parallel()

	content := []byte(`
week:
  target_hours: 36
  default_lunch_minutes: 30
  friday_default_start: "9:00"
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("ValidateYAMLContent: %v", err)
	}
	if cfg.Week.TargetHours != 36 {
		t.Errorf("target hours = %v, want 36", cfg.Week.TargetHours)
	}
	if cfg.Week.DefaultLunchMinutes != 30 {
		t.Errorf("default lunch = %v, want 30", cfg.Week.DefaultLunchMinutes)
	}
	// Unset values fall back to defaults.
	if cfg.Week.AssumedDayHours != 8 {
		t.Errorf("assumed day hours = %v, want 8", cfg.Week.AssumedDayHours)
	}
}

func TestValidateYAMLContentRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "negative target",
			content: `
week:
  target_hours: -5
`,
		},
		{
			name: "bad friday start",
			content: `
week:
  friday_default_start: "13 PM"
`,
		},
		{
			name: "port out of range",
			content: `
serve:
  port: 70000
`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ValidateYAMLContent([]byte(tc.content))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "validation failed") {
				t.Fatalf("error = %v", err)
			}
		})
	}
}
