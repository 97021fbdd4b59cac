package pipeline

import (
	"regexp"
	"strings"

	"github.com/zoomka/contact-intel/api/internal/entity"
)

// DefaultMarkets is the business-policy fallback applied when a payload has no
// recognizable market signal. Lead routing expects at least one market, and
// the product's primary focus is Africa.
var DefaultMarkets = []entity.Market{entity.MarketAfrica}

var (
	chinaPattern  = regexp.MustCompile(`(?i)china|chinese|beijing|shanghai|shenzhen|hong\s*kong`)
	indiaPattern  = regexp.MustCompile(`(?i)india|indian|mumbai|delhi|bangalore`)
	russiaPattern = regexp.MustCompile(`(?i)russia|russian|moscow|saint\s*petersburg`)
	cityPattern   = regexp.MustCompile(`(?i)(?:based in|located in|from)\s+([A-Za-z\s]+),?`)

	africaMarketPattern = regexp.MustCompile(`africa|african|import.*africa|export.*africa`)
	chinaMarketPattern  = regexp.MustCompile(`china|chinese|manufactur.*china|sourc.*china`)
	indiaMarketPattern  = regexp.MustCompile(`india|indian|outsourc.*india|tech.*india`)
	russiaMarketPattern = regexp.MustCompile(`russia|russian|energy.*russia|commodit.*russia`)
)

// africanCountries is checked first and in this order; the first substring
// match wins.
var africanCountries = []string{
	// North Africa
	"Algeria", "Egypt", "Libya", "Morocco", "Sudan", "Tunisia", "Western Sahara",
	// West Africa
	"Benin", "Burkina Faso", "Cape Verde", "Ivory Coast", "Gambia", "Ghana", "Guinea",
	"Guinea-Bissau", "Liberia", "Mali", "Mauritania", "Niger", "Nigeria", "Senegal",
	"Sierra Leone", "Togo",
	// Central Africa
	"Angola", "Cameroon", "Central African Republic", "Chad", "Congo",
	"Democratic Republic of the Congo", "Equatorial Guinea", "Gabon", "São Tomé and Príncipe",
	// East Africa
	"Burundi", "Comoros", "Djibouti", "Eritrea", "Ethiopia", "Kenya", "Madagascar",
	"Malawi", "Mauritius", "Mozambique", "Rwanda", "Seychelles", "Somalia", "South Sudan",
	"Tanzania", "Uganda", "Zambia", "Zimbabwe",
	// Southern Africa
	"Botswana", "Eswatini", "Lesotho", "Namibia", "South Africa",
}

// ExtractLocation guesses a country, an optional city and the matching market
// focus from the raw payload. The African country list takes priority; the
// China, India and Russia keyword groups never overwrite an earlier country
// guess but still contribute their market tag. Returns nil when no country
// was recognized.
func ExtractLocation(raw string) *entity.LocationGuess {
	location := &entity.LocationGuess{}
	lowered := strings.ToLower(raw)

	for _, country := range africanCountries {
		if strings.Contains(lowered, strings.ToLower(country)) {
			location.Country = country
			location.MarketFocus = append(location.MarketFocus, entity.MarketAfrica)
			break
		}
	}

	if chinaPattern.MatchString(raw) {
		if location.Country == "" {
			location.Country = "China"
		}
		location.MarketFocus = append(location.MarketFocus, entity.MarketChina)
	}
	if indiaPattern.MatchString(raw) {
		if location.Country == "" {
			location.Country = "India"
		}
		location.MarketFocus = append(location.MarketFocus, entity.MarketIndia)
	}
	if russiaPattern.MatchString(raw) {
		if location.Country == "" {
			location.Country = "Russia"
		}
		location.MarketFocus = append(location.MarketFocus, entity.MarketRussia)
	}

	if m := cityPattern.FindStringSubmatch(raw); m != nil {
		location.City = strings.TrimSpace(m[1])
	}

	if location.Country == "" {
		return nil
	}
	return location
}

// DetectMarkets scans the lower-cased payload for per-region business intent
// phrases and returns the matching markets in a fixed order. With zero
// matches it returns DefaultMarkets, never an empty list.
func DetectMarkets(raw string) []entity.Market {
	lowered := strings.ToLower(raw)

	var markets []entity.Market
	if africaMarketPattern.MatchString(lowered) {
		markets = append(markets, entity.MarketAfrica)
	}
	if chinaMarketPattern.MatchString(lowered) {
		markets = append(markets, entity.MarketChina)
	}
	if indiaMarketPattern.MatchString(lowered) {
		markets = append(markets, entity.MarketIndia)
	}
	if russiaMarketPattern.MatchString(lowered) {
		markets = append(markets, entity.MarketRussia)
	}

	if len(markets) == 0 {
		return append([]entity.Market(nil), DefaultMarkets...)
	}
	return markets
}
