package domain

import "fmt"

// DefaultStyle is the style a fresh brief starts with.
const DefaultStyle = "Modern"

// Brief is the structured description of a website project the client
// builds up before handoff. All fields are optional until submission.
type Brief struct {
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Budget      string `json:"budget"`
	Style       string `json:"style"`
	Description string `json:"description"`
}

// NewBrief returns an empty brief with the default style applied.
func NewBrief() Brief {
	return Brief{Style: DefaultStyle}
}

// Merge overlays the non-empty fields of other onto the brief.
func (b Brief) Merge(other Brief) Brief {
	if other.CompanyName != "" {
		b.CompanyName = other.CompanyName
	}
	if other.Industry != "" {
		b.Industry = other.Industry
	}
	if other.Budget != "" {
		b.Budget = other.Budget
	}
	if other.Style != "" {
		b.Style = other.Style
	}
	if other.Description != "" {
		b.Description = other.Description
	}
	return b
}

// Text renders the compact single-line form used as an opening chat turn.
func (b Brief) Text() string {
	return fmt.Sprintf("Brief • %s — %s | %s | %s — %s",
		orDefault(b.CompanyName, "Untitled"),
		orDash(b.Industry),
		orDash(b.Budget),
		orDash(b.Style),
		orDash(b.Description),
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDash(s string) string {
	return orDefault(s, "—")
}
