package entity

import (
	"time"

	"github.com/google/uuid"
)

// Market is a coarse business-region classification used for lead routing.
type Market string

// Supported target markets.
const (
	MarketAfrica Market = "africa"
	MarketChina  Market = "china"
	MarketIndia  Market = "india"
	MarketRussia Market = "russia"
)

// SocialMediaSet holds one handle or URL per supported platform. An empty
// string means the platform was not detected.
type SocialMediaSet struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	WeChat    string `json:"wechat,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// Empty reports whether no platform carries a value.
func (s *SocialMediaSet) Empty() bool {
	if s == nil {
		return true
	}
	return s.LinkedIn == "" && s.Twitter == "" && s.Facebook == "" &&
		s.Instagram == "" && s.WhatsApp == "" && s.YouTube == "" &&
		s.WeChat == "" && s.GitHub == ""
}

// LocationGuess is a best-effort geographic classification of a scanned payload.
type LocationGuess struct {
	Country     string   `json:"country"`
	City        string   `json:"city,omitempty"`
	MarketFocus []Market `json:"market_focus,omitempty"`
}

// ContactRecord is the central entity produced by the intelligence pipeline.
// RawData and ScannedAt are immutable after assembly; the remaining fields may
// be edited by the owning application until the record is deleted.
type ContactRecord struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Role          string          `json:"role"`
	Company       string          `json:"company"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	PhoneE164     string          `json:"phone_e164,omitempty"`
	Website       string          `json:"website,omitempty"`
	Category      string          `json:"category"`
	Image         string          `json:"image,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Tags          []string        `json:"tags"`
	SocialMedia   *SocialMediaSet `json:"social_media,omitempty"`
	Location      *LocationGuess  `json:"location,omitempty"`
	TargetMarkets []Market        `json:"target_markets,omitempty"`
	Score         int             `json:"score"`
	RawData       string          `json:"raw_data"`
	ScannedAt     time.Time       `json:"scanned_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
