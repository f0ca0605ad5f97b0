package leads

import (
	"reflect"
	"testing"
)

func validServicesRequest() SubmitRequest {
	return SubmitRequest{
		PartnerCode:       "CP1",
		LeadSource:        "Referral",
		BDAEmail:          "bda@example.com",
		CompanyName:       "Acme Traders",
		ClientName:        "Ravi Kumar",
		ClientEmail:       "ravi@acme.example",
		ClientDesignation: "Director",
		ContactNumber:     "9876543210",
		CompanyOffering:   "Wholesale distribution",
		Offering: Offering{
			Mode:                   ModeServices,
			Services:               []string{ServiceWebsiteDevelopment},
			WebsitePlatform:        "Shopify",
			WebsiteDevelopmentDays: 21,
		},
		TotalServiceFees: 118000,
		PaymentStatus:    PaymentFullInAdvance,
		ServicePromised:  "Launch in three weeks",
	}
}

func errorFields(res ResolveResult) []string {
	fields := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestResolveValidRequest(t *testing.T) {
	res := ResolveRequiredFields(validServicesRequest())
	if !res.Valid() {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if res.Map() != nil {
		t.Fatalf("expected nil map for valid result, got %v", res.Map())
	}
}

func TestResolveAlwaysRequiredFields(t *testing.T) {
	req := validServicesRequest()
	req.ContactNumber = ""
	req.ClientEmail = "   "
	req.CompanyName = ""
	req.TotalServiceFees = 0

	res := ResolveRequiredFields(req)
	want := []string{"contact_number", "client_email", "company_name", "total_service_fees"}
	if got := errorFields(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("error fields = %v, want %v", got, want)
	}
}

func TestResolveContactNumberFormat(t *testing.T) {
	req := validServicesRequest()
	req.ContactNumber = "12345"

	res := ResolveRequiredFields(req)
	if len(res.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", res.Errors)
	}
	if res.Errors[0].Field != "contact_number" {
		t.Fatalf("field = %q, want contact_number", res.Errors[0].Field)
	}
	if res.Errors[0].Reason != "contact number must be exactly 10 digits" {
		t.Fatalf("unexpected reason %q", res.Errors[0].Reason)
	}
}

func TestResolvePartialPaymentRequiresPendingFields(t *testing.T) {
	req := validServicesRequest()
	req.PaymentStatus = PaymentPartial
	req.PendingAmount = 0
	req.PendingDueDate = ""

	res := ResolveRequiredFields(req)
	want := []string{"pending_amount", "pending_due_date"}
	if got := errorFields(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("error fields = %v, want %v", got, want)
	}

	req.PendingAmount = 50000
	req.PendingDueDate = "2026-09-15"
	if res := ResolveRequiredFields(req); !res.Valid() {
		t.Fatalf("expected valid once pending fields set, got %v", res.Errors)
	}
}

func TestResolvePackageModeRequiresTier(t *testing.T) {
	req := validServicesRequest()
	req.Offering = Offering{Mode: ModePackage, PackageName: "Growth"}

	res := ResolveRequiredFields(req)
	want := []string{"package_tier"}
	if got := errorFields(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("error fields = %v, want %v", got, want)
	}

	req.Offering.PackageTier = "Gold"
	if res := ResolveRequiredFields(req); !res.Valid() {
		t.Fatalf("expected valid with tier set, got %v", res.Errors)
	}
}

func TestResolveServicesModeRequiresSelection(t *testing.T) {
	req := validServicesRequest()
	req.Offering = Offering{Mode: ModeServices}

	res := ResolveRequiredFields(req)
	want := []string{"services"}
	if got := errorFields(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("error fields = %v, want %v", got, want)
	}
}

func TestResolveLeadTimePerSelectedService(t *testing.T) {
	req := validServicesRequest()
	req.Offering = Offering{
		Mode:     ModeServices,
		Services: []string{ServiceSocialMedia, ServiceWebsiteDevelopment},
	}

	res := ResolveRequiredFields(req)
	want := []string{"social_media_days", "website_development_days"}
	if got := errorFields(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("error fields = %v, want %v (selection order)", got, want)
	}

	req.Offering.SocialMediaDays = 30
	res = ResolveRequiredFields(req)
	want = []string{"website_development_days"}
	if got := errorFields(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("error fields = %v, want %v", got, want)
	}
}

func TestResolveUnknownModeRejected(t *testing.T) {
	req := validServicesRequest()
	req.Offering = Offering{Mode: "bundle"}

	res := ResolveRequiredFields(req)
	want := []string{"offering_mode"}
	if got := errorFields(res); !reflect.DeepEqual(got, want) {
		t.Fatalf("error fields = %v, want %v", got, want)
	}
}

func TestResolveIsPure(t *testing.T) {
	req := validServicesRequest()
	req.ContactNumber = ""

	first := ResolveRequiredFields(req)
	second := ResolveRequiredFields(req)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolver not deterministic: %v vs %v", first, second)
	}
}
