// Package api defines the wire contract between the TruthLens client and the
// backend: domain records and the JSON request/response shapes. Both sides
// import this package so the contract cannot drift.
package api

import (
	"errors"
	"time"
)

// ErrUnknownSource is returned when a report names a source outside the
// ReportSource enum.
var ErrUnknownSource = errors.New("unknown report source")

// User identifies an authenticated session subject. Created on successful
// login or registration, never mutated afterwards.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ReportSource names the channel a suspicious link or message arrived through.
type ReportSource string

const (
	SourceWhatsApp  ReportSource = "whatsapp"
	SourceInstagram ReportSource = "instagram"
	SourceFacebook  ReportSource = "facebook"
	SourceSMS       ReportSource = "sms"
	SourceWeb       ReportSource = "web"
)

// Valid reports whether s is one of the known sources.
func (s ReportSource) Valid() bool {
	switch s {
	case SourceWhatsApp, SourceInstagram, SourceFacebook, SourceSMS, SourceWeb:
		return true
	}
	return false
}

// Report is a user-submitted suspicious link/message. URL and Message are
// individually optional; at least one must be present (enforced by the
// client's validation layer and re-checked by the server).
type Report struct {
	Source  ReportSource `json:"source"`
	URL     string       `json:"url,omitempty"`
	Message string       `json:"message,omitempty"`
}

// ReportReceipt acknowledges an accepted report.
type ReportReceipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Verdict is the outcome of an image authenticity analysis.
type Verdict string

const (
	VerdictAuthentic    Verdict = "authentic"
	VerdictManipulated  Verdict = "manipulated"
	VerdictInconclusive Verdict = "inconclusive"
)

// AnalysisReport is the result of analyzing a submitted image.
type AnalysisReport struct {
	ID         string    `json:"id"`
	Verdict    Verdict   `json:"verdict"`
	Confidence float64   `json:"confidence"`
	SHA256     string    `json:"sha256"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}
