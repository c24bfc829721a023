// Package scriptgen produces templated production scripts for the content
// studio. Output is deterministic text assembled from the request; there is
// no model call behind it.
package scriptgen

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// ErrInvalidOption is returned when type, duration or tone is not one of the
// enumerated values.
var ErrInvalidOption = errors.New("invalid script option")

// Script types
var scriptTypes = map[string]bool{
	"commercial":  true,
	"documentary": true,
	"tutorial":    true,
	"social":      true,
	"corporate":   true,
}

var durations = map[string]bool{
	"30s": true, "60s": true, "90s": true, "2min": true, "5min": true,
}

var tones = map[string]bool{
	"professional": true,
	"casual":       true,
	"energetic":    true,
	"emotional":    true,
	"humorous":     true,
}

// Request describes the script to generate. Empty Type, Duration and Tone
// fall back to commercial/60s/professional.
type Request struct {
	Prompt         string `json:"prompt"`
	Type           string `json:"type"`
	Duration       string `json:"duration"`
	Tone           string `json:"tone"`
	TargetAudience string `json:"target_audience,omitempty"`
	BrandName      string `json:"brand_name,omitempty"`
}

// Metadata describes a generated script
type Metadata struct {
	Type              string    `json:"type"`
	Duration          string    `json:"duration"`
	Tone              string    `json:"tone"`
	WordCount         int       `json:"word_count"`
	EstimatedDuration string    `json:"estimated_duration"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// Result is a generated script with its metadata
type Result struct {
	Script   string   `json:"script"`
	Metadata Metadata `json:"metadata"`
}

type templateData struct {
	Prompt string
	Brand  string
}

// Script bodies keyed by type then tone. Types and tones without a dedicated
// body fall back to commercial/professional.
var scriptTemplates = map[string]map[string]*template.Template{
	"commercial": {
		"professional": mustParse("commercial_professional", `[OPENING SHOT: Product close-up]

NARRATOR (professional): Introducing {{or .Brand "our revolutionary product"}} - the solution you've been waiting for.

[WIDE SHOT: Happy customers using product]

NARRATOR: {{.Prompt}}

[PRODUCT DEMONSTRATION]

NARRATOR: Experience the difference. Choose {{or .Brand "excellence"}}.

[CLOSING SHOT: Logo and tagline]

TAGLINE: {{or .Brand "Your Brand"}} - Where Innovation Meets Quality.`),
		"casual": mustParse("commercial_casual", `[OPENING: Person using product naturally]

PERSON: Hey, have you tried {{or .Brand "this amazing product"}}?

[QUICK CUTS: Various people enjoying product]

PERSON: {{.Prompt}}

[PRODUCT SHOWCASE]

PERSON: Seriously, you need to check this out.

[CLOSING: Social media style]

TEXT: {{or .Brand "Your Brand"}} - Try it today!`),
		"energetic": mustParse("commercial_energetic", `[FAST-PACED MONTAGE]

NARRATOR (excited): {{or .Brand "This product"}} is about to change everything!

[QUICK CUTS: Action shots, people celebrating]

NARRATOR: {{.Prompt}}

[DRAMATIC PRODUCT REVEAL]

NARRATOR: Don't wait! Get {{or .Brand "it"}} now!

[ENERGETIC CLOSING]

TAGLINE: {{or .Brand "Your Brand"}} - Power Up Your Life!`),
	},
	"documentary": {
		"professional": mustParse("documentary_professional", `[ESTABLISHING SHOT: Relevant location]

NARRATOR: In a world where {{.Prompt}}, we find ourselves at a crossroads.

[INTERVIEW SHOTS: Expert talking]

EXPERT: The impact of this issue cannot be overstated.

[ARCHIVAL FOOTAGE]

NARRATOR: Through careful examination, we discover the truth behind {{.Prompt}}.

[CLOSING SHOT: Thoughtful conclusion]

NARRATOR: The story continues, and so do we.`),
		"emotional": mustParse("documentary_emotional", `[INTIMATE SHOT: Subject's face]

NARRATOR (soft): Every story has a beginning, and this one starts with {{.Prompt}}.

[PERSONAL MOMENTS]

SUBJECT: It changed everything for me.

[EMOTIONAL JOURNEY]

NARRATOR: Sometimes the smallest moments create the biggest impact.

[HOPEFUL CLOSING]

NARRATOR: This is just the beginning.`),
	},
	"tutorial": {
		"professional": mustParse("tutorial_professional", `[INTRO: Host in clean setting]

HOST: Welcome to today's tutorial. I'm going to show you how to {{.Prompt}}.

[STEP 1: Clear demonstration]

HOST: First, we start with the basics. {{.Prompt}}

[STEP 2: Detailed explanation]

HOST: Next, we move to the advanced techniques.

[STEP 3: Final result]

HOST: And there you have it! You've successfully learned to {{.Prompt}}.

[OUTRO: Call to action]

HOST: Don't forget to subscribe for more tutorials like this.`),
		"casual": mustParse("tutorial_casual", `[INTRO: Host in relaxed setting]

HOST: Hey everyone! Today I'm going to teach you how to {{.Prompt}}.

[DEMONSTRATION: Step by step]

HOST: So first thing's first - {{.Prompt}}

[INTERACTIVE ELEMENTS]

HOST: Pretty cool, right? Now let's try the next part.

[FINAL RESULT]

HOST: And that's how you {{.Prompt}}! Easy peasy.

[CLOSING: Personal touch]

HOST: Thanks for watching, and I'll see you in the next one!`),
	},
}

func mustParse(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

// Generate renders the script for the request. Unknown enum values fail with
// ErrInvalidOption before anything is rendered.
func Generate(req Request) (*Result, error) {
	if req.Prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidOption)
	}
	if req.Type == "" {
		req.Type = "commercial"
	} else if !scriptTypes[req.Type] {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidOption, req.Type)
	}
	if req.Duration == "" {
		req.Duration = "60s"
	} else if !durations[req.Duration] {
		return nil, fmt.Errorf("%w: duration %q", ErrInvalidOption, req.Duration)
	}
	if req.Tone == "" {
		req.Tone = "professional"
	} else if !tones[req.Tone] {
		return nil, fmt.Errorf("%w: tone %q", ErrInvalidOption, req.Tone)
	}

	byTone, ok := scriptTemplates[req.Type]
	if !ok {
		byTone = scriptTemplates["commercial"]
	}
	tmpl, ok := byTone[req.Tone]
	if !ok {
		tmpl = byTone["professional"]
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, templateData{Prompt: req.Prompt, Brand: req.BrandName}); err != nil {
		return nil, err
	}
	script := b.String()

	return &Result{
		Script: script,
		Metadata: Metadata{
			Type:              req.Type,
			Duration:          req.Duration,
			Tone:              req.Tone,
			WordCount:         len(strings.Fields(script)),
			EstimatedDuration: req.Duration,
			GeneratedAt:       time.Now().UTC(),
		},
	}, nil
}
