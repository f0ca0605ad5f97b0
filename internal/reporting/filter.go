package reporting

import (
	"time"

	"github.com/Jishnu-21/Channel-Partner-Lead-Manager/internal/leads"
)

// FilterByDateRange restricts leads to an inclusive created-at window. A nil
// bound is unbounded; with both bounds nil the input is returned unchanged,
// including records without a usable creation time. Once any bound is active,
// only validly-dated records are considered.
func FilterByDateRange(items []leads.Lead, start, end *time.Time) []leads.Lead {
	if start == nil && end == nil {
		return items
	}

	filtered := make([]leads.Lead, 0, len(items))
	for _, lead := range items {
		if lead.CreatedAt.IsZero() {
			continue
		}
		if start != nil && lead.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && lead.CreatedAt.After(*end) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

// FilterByPartner keeps only leads submitted under the given partner code.
// An empty code means "all partners".
func FilterByPartner(items []leads.Lead, code string) []leads.Lead {
	if code == "" {
		return items
	}
	filtered := make([]leads.Lead, 0, len(items))
	for _, lead := range items {
		if lead.PartnerCode == code {
			filtered = append(filtered, lead)
		}
	}
	return filtered
}
