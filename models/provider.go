package models

import (
	"strconv"
	"strings"
	"time"
)

// PriceEntry is a single parsed element of a provider's price list. Source
// data mixes plain values ("1500") and range tokens ("1000-2000") in the same
// field; entries are parsed once at ingestion so the search price filter never
// re-parses raw strings per query.
type PriceEntry struct {
	Min     float64 `bson:"min" json:"min"`
	Max     float64 `bson:"max" json:"max"`
	IsRange bool    `bson:"isRange" json:"isRange"`
}

// ParsePriceEntry parses a raw price string into a PriceEntry. It returns
// ok=false for strings that are neither a plain number nor a "min-max" token;
// such entries are skipped, not treated as errors.
func ParsePriceEntry(raw string) (PriceEntry, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PriceEntry{}, false
	}
	if lo, hi, found := strings.Cut(s, "-"); found {
		min, err1 := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		max, err2 := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err1 != nil || err2 != nil {
			return PriceEntry{}, false
		}
		return PriceEntry{Min: min, Max: max, IsRange: true}, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return PriceEntry{}, false
	}
	return PriceEntry{Min: v, Max: v}, true
}

// ParsePriceList parses every element of a raw price list, dropping the ones
// that do not parse.
func ParsePriceList(raw []string) []PriceEntry {
	var entries []PriceEntry
	for _, r := range raw {
		if e, ok := ParsePriceEntry(r); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Review is a customer review attached to a provider. Submitting one
// recomputes the provider's stored rating average.
type Review struct {
	Rating    float64   `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment   string    `bson:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Provider is a listed local business. The category document is denormalized
// onto the provider at write time; a rename of the category is picked up on
// the next provider update, which is acceptable staleness for a directory.
type Provider struct {
	ID             string       `bson:"id" json:"id"`
	Name           string       `bson:"name" json:"name"`
	Description    string       `bson:"description" json:"description,omitempty"`
	CategoryID     string       `bson:"categoryId" json:"categoryId"`
	Category       *Category    `bson:"category,omitempty" json:"category,omitempty"`
	Subcategory    string       `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	Address        string       `bson:"address" json:"address,omitempty"`
	Phone          string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Whatsapp       string       `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Email          string       `bson:"email,omitempty" json:"email,omitempty"`
	OperatingHours string       `bson:"operatingHours,omitempty" json:"operatingHours,omitempty"`
	Photos         []string     `bson:"photos,omitempty" json:"photos,omitempty"`
	Services       []string     `bson:"services,omitempty" json:"services,omitempty"`
	Prices         []string     `bson:"prices,omitempty" json:"prices,omitempty"`
	PriceEntries   []PriceEntry `bson:"priceEntries,omitempty" json:"-"`
	RatingAverage  float64      `bson:"ratingAverage" json:"ratingAverage"`
	RatingCount    int          `bson:"ratingCount" json:"ratingCount"`
	Reviews        []Review     `bson:"reviews,omitempty" json:"reviews,omitempty"`
	IsActive       bool         `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time    `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ParsedPrices returns the ingested price entries, falling back to parsing the
// raw list for documents written before price parsing existed.
func (p *Provider) ParsedPrices() []PriceEntry {
	if len(p.PriceEntries) > 0 {
		return p.PriceEntries
	}
	return ParsePriceList(p.Prices)
}

// NormalizePrices refreshes the parsed price entries from the raw list.
func (p *Provider) NormalizePrices() {
	p.PriceEntries = ParsePriceList(p.Prices)
}
