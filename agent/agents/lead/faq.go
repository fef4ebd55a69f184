package lead

import (
	"strings"

	catalogx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/catalog"
)

// CompanyName is the product the SDR persona represents.
const CompanyName = "Tata Neu"

// FAQEntry is one pre-approved answer. The agent never answers product
// questions from anywhere else.
type FAQEntry struct {
	Key    string
	Answer string
}

var seedFAQ = []FAQEntry{
	{
		Key:    "what_it_does",
		Answer: "Tata Neu is a super-app that brings together the Tata Group's brand ecosystem—including shopping (e.g., BigBasket, Croma), travel (e.g., Air India), financial services, and payments—into a single platform.",
	},
	{
		Key:    "target_audience",
		Answer: "Our platform is primarily for consumers in India who want a unified loyalty and shopping experience across various retail, travel, and financial services under the trusted Tata brand.",
	},
	{
		Key:    "pricing_basics",
		Answer: "The Tata Neu app itself is free to download and use. Its value comes from earning and spending 'NeuCoins,' which are rewarded on purchases across all partner brands. Financial products offered through the app, like loans or credit cards, have their own specific pricing and fees.",
	},
	{
		Key:    "key_benefits",
		Answer: "The main benefit is the unified loyalty program (NeuPass) and seamless integration across all Tata brands, offering better rewards and a smoother checkout experience for users.",
	},
	{
		Key:    "free_tier",
		Answer: "There is no separate 'tier' since the app is free. The value is derived from user activity and rewards. We do offer promotional benefits that are effectively free perks.",
	},
}

// NewFAQCatalog loads the pre-approved answer set.
func NewFAQCatalog() *catalogx.Catalog[FAQEntry] {
	return catalogx.MustNew(seedFAQ, func(e FAQEntry) string { return e.Key })
}

// resolveTopic matches a spoken topic phrase against FAQ keys. Unlike the
// token lookup used for names and concepts, topics match by containment in
// either direction ("pricing" hits "pricing_basics", "neu pricing basics
// overview" hits too), scanning keys in declared order.
func resolveTopic(faq *catalogx.Catalog[FAQEntry], topic string) (FAQEntry, bool) {
	normalized := catalogx.NormalizeKey(topic)
	if normalized == "" {
		return FAQEntry{}, false
	}
	for _, key := range faq.Keys() {
		if strings.Contains(key, normalized) || strings.Contains(normalized, key) {
			entry, _ := faq.Get(key)
			return entry, true
		}
	}
	return FAQEntry{}, false
}
