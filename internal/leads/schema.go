package leads

import (
	"regexp"
	"strings"
)

var contactNumberRe = regexp.MustCompile(`^[0-9]{10}$`)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ResolveResult enumerates missing or malformed fields in a stable order:
// always-required fields first, then mode-specific fields, then per-service
// lead-time fields in selection order.
type ResolveResult struct {
	Errors []FieldError `json:"errors,omitempty"`
}

func (r ResolveResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r ResolveResult) Map() map[string]string {
	if len(r.Errors) == 0 {
		return nil
	}
	m := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Reason
		}
	}
	return m
}

func (r *ResolveResult) add(field, reason string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Reason: reason})
}

// leadTimeFields maps a selected service to the deadline field it requires.
var leadTimeFields = map[string]string{
	ServiceWebsiteDevelopment: "website_development_days",
	ServiceBranding:           "branding_days",
	ServiceSocialMedia:        "social_media_days",
}

// ResolveRequiredFields decides, for the current offering mode and service
// selection, which fields must be populated before a lead can be finalized.
// It is a pure function: calling it twice with the same request yields the
// same result, and it never mutates the request.
func ResolveRequiredFields(req SubmitRequest) ResolveResult {
	var res ResolveResult

	// Always required, independent of offering mode. Order here defines the
	// order of reported errors.
	if strings.TrimSpace(req.ContactNumber) == "" {
		res.add("contact_number", "contact number is required")
	} else if !contactNumberRe.MatchString(req.ContactNumber) {
		res.add("contact_number", "contact number must be exactly 10 digits")
	}
	if strings.TrimSpace(req.ClientEmail) == "" {
		res.add("client_email", "client email is required")
	}
	if strings.TrimSpace(req.BDAEmail) == "" {
		res.add("bda_email", "BDA email is required")
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		res.add("company_name", "company name is required")
	}
	if strings.TrimSpace(req.ClientName) == "" {
		res.add("client_name", "client name is required")
	}
	if strings.TrimSpace(req.ClientDesignation) == "" {
		res.add("client_designation", "client designation is required")
	}
	if strings.TrimSpace(req.CompanyOffering) == "" {
		res.add("company_offering", "company's business description is required")
	}
	if req.TotalServiceFees <= 0 {
		res.add("total_service_fees", "total service fees charged is required")
	}
	if strings.TrimSpace(req.PaymentStatus) == "" {
		res.add("payment_status", "payment status is required")
	}
	if strings.TrimSpace(req.ServicePromised) == "" {
		res.add("service_promised", "service promised is required")
	}

	if req.PaymentStatus == PaymentPartial {
		if req.PendingAmount <= 0 {
			res.add("pending_amount", "pending amount is required for partial payments")
		}
		if strings.TrimSpace(req.PendingDueDate) == "" {
			res.add("pending_due_date", "pending amount due date is required for partial payments")
		}
	}

	// Mode-specific fields.
	switch req.Offering.Mode {
	case ModePackage:
		if strings.TrimSpace(req.Offering.PackageTier) == "" {
			res.add("package_tier", "package tier is required")
		}
	case ModeServices:
		if len(req.Offering.Services) == 0 {
			res.add("services", "at least one service must be selected")
		}
		for _, svc := range req.Offering.Services {
			field, ok := leadTimeFields[svc]
			if !ok {
				continue
			}
			if leadTimeDays(req.Offering, svc) <= 0 {
				res.add(field, "lead time in days is required for "+svc)
			}
		}
	default:
		res.add("offering_mode", `offering mode must be "package" or "services"`)
	}

	return res
}

func leadTimeDays(o Offering, service string) int {
	switch service {
	case ServiceWebsiteDevelopment:
		return o.WebsiteDevelopmentDays
	case ServiceBranding:
		return o.BrandingDays
	case ServiceSocialMedia:
		return o.SocialMediaDays
	}
	return 0
}
