package contact

import (
	"strings"
	"unicode"

	"zevro/internal/pkg/sanitize"
)

// SubmitRequest is the raw contact form payload
type SubmitRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=100,letters_spaces"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone" validate:"required,intl_phone"`
	City        string     `json:"city" validate:"required,min=2,max=100"`
	EnquiryType string     `json:"enquiryType" validate:"required,oneof=franchise contact general"`
	Message     string     `json:"message" validate:"required,min=10,max=1000"`
	UTM         *UTMParams `json:"utm"`
}

// UTMParams is the optional attribution block on a submission
type UTMParams struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Term     string `json:"term"`
	Content  string `json:"content"`
}

// WhatsAppConfig is echoed back to the browser so it can open the chat
// channel after submitting; it is configuration, not derived data.
type WhatsAppConfig struct {
	Number         string `json:"number"`
	DefaultMessage string `json:"defaultMessage"`
}

// normalized returns a copy with tags stripped from the free-text fields,
// whitespace trimmed, the email lowercased and internal whitespace removed
// from the phone. Validation runs on this form, and it is what gets stored.
func (r SubmitRequest) normalized() SubmitRequest {
	out := r
	out.Name = strings.TrimSpace(sanitize.StripTags(r.Name))
	out.Email = strings.ToLower(strings.TrimSpace(r.Email))
	out.Phone = stripSpaces(r.Phone)
	out.City = strings.TrimSpace(sanitize.StripTags(r.City))
	out.EnquiryType = strings.TrimSpace(r.EnquiryType)
	out.Message = strings.TrimSpace(sanitize.StripTags(r.Message))
	if r.UTM != nil {
		utm := UTMParams{
			Source:   strings.TrimSpace(r.UTM.Source),
			Medium:   strings.TrimSpace(r.UTM.Medium),
			Campaign: strings.TrimSpace(r.UTM.Campaign),
			Term:     strings.TrimSpace(r.UTM.Term),
			Content:  strings.TrimSpace(r.UTM.Content),
		}
		out.UTM = &utm
	}
	return out
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
