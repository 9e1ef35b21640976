package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/business"
	"git.home.luguber.info/inful/sitegen/internal/config"
)

// FAQEntry is one question of data/faq.json.
type FAQEntry struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type faqDocument struct {
	FAQs []FAQEntry `json:"faqs"`
}

// FAQ writes data/faq.json: six fixed questions answered from the record.
type FAQ struct{}

func (FAQ) Name() string { return "faq" }

func (FAQ) Path(p config.PathsConfig) string { return filepath.Join(p.DataDir, "faq.json") }

func (f FAQ) Emit(ctx *Context) (Result, error) {
	return writeJSON(f.Name(), f.Path(ctx.Paths), faqDocument{FAQs: BuildFAQ(ctx)})
}

// BuildFAQ returns the FAQ entries for the record.
func BuildFAQ(ctx *Context) []FAQEntry {
	rec := ctx.Record
	phone := rec.Field(business.KeyContact, "PHONE")
	email := rec.Field(business.KeyContact, "EMAIL")
	areas := strings.Join(head(rec.LocationLabels(), 4), ", ")
	hours := rec.FieldOr(business.KeyHours, "MONDAY", ctx.Defaults.HoursSummary)

	return []FAQEntry{
		{
			ID:       1,
			Category: "General",
			Question: "What areas do you serve?",
			Answer:   fmt.Sprintf("We proudly serve %s, along with surrounding areas. Our professional services are available throughout these communities.", areas),
		},
		{
			ID:       2,
			Category: "General",
			Question: "How can I contact you?",
			Answer:   fmt.Sprintf("You can reach us at %s or email us at %s. We&apos;re available %s.", phone, email, hours),
		},
		{
			ID:       3,
			Category: "Services",
			Question: "What services do you offer?",
			Answer:   fmt.Sprintf("We offer %s. Contact us for a free consultation to discuss your specific needs.", strings.Join(rec.CoreServiceNames(), ", ")),
		},
		{
			ID:       4,
			Category: "Services",
			Question: "Do you provide free estimates?",
			Answer:   fmt.Sprintf("Yes, we provide completely free, no-obligation estimates for all our services. Contact us at %s to schedule your estimate.", phone),
		},
		{
			ID:       5,
			Category: "Pricing",
			Question: "How much do your services cost?",
			Answer:   "Pricing varies depending on the scope of work, materials needed, and specific requirements. We provide transparent, upfront pricing with no hidden fees. Contact us for a free estimate.",
		},
		{
			ID:       6,
			Category: "Scheduling",
			Question: "How quickly can you start a project?",
			Answer:   fmt.Sprintf("We offer same-day service for emergency repairs. For installations and larger projects, we typically can schedule within a few days. Call %s to check current availability.", phone),
		},
	}
}
