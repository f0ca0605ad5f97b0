package leads

import "testing"

func TestNormalizedClearsPackageFieldsInServicesMode(t *testing.T) {
	o := Offering{
		Mode:                   ModeServices,
		PackageName:            "Growth",
		PackageTier:            "Gold",
		Services:               []string{ServiceWebsiteDevelopment},
		WebsitePlatform:        "Shopify",
		WebsiteDevelopmentDays: 21,
	}

	got := o.Normalized()
	if got.PackageName != "" || got.PackageTier != "" {
		t.Fatalf("package fields survived mode switch: %+v", got)
	}
	if got.WebsitePlatform != "Shopify" || got.WebsiteDevelopmentDays != 21 {
		t.Fatalf("website fields should be untouched: %+v", got)
	}
}

func TestNormalizedClearsServiceFieldsInPackageMode(t *testing.T) {
	o := Offering{
		Mode:            ModePackage,
		PackageTier:     "Silver",
		Services:        []string{ServiceSocialMedia},
		SocialPlatforms: []string{"Instagram"},
		SocialMediaDays: 30,
	}

	got := o.Normalized()
	if got.Services != nil || got.SocialPlatforms != nil || got.SocialMediaDays != 0 {
		t.Fatalf("service fields survived mode switch: %+v", got)
	}
	if got.PackageTier != "Silver" {
		t.Fatalf("package tier should be untouched: %+v", got)
	}
}

func TestNormalizedClearsDeselectedServiceDetails(t *testing.T) {
	o := Offering{
		Mode:                 ModeServices,
		Services:             []string{ServiceWebsiteDevelopment},
		SocialPlatforms:      []string{"Instagram"},
		SocialMediaDays:      30,
		BrandingRequirements: []string{"Logo"},
		BrandingDays:         14,
		WebsitePlatform:      "WordPress",
	}

	got := o.Normalized()
	if got.SocialPlatforms != nil || got.SocialMediaDays != 0 {
		t.Fatalf("social fields survived deselection: %+v", got)
	}
	if got.BrandingRequirements != nil || got.BrandingDays != 0 {
		t.Fatalf("branding fields survived deselection: %+v", got)
	}
	if got.WebsitePlatform != "WordPress" {
		t.Fatalf("selected service fields should survive: %+v", got)
	}
}

func TestNormalizedDoesNotMutateReceiver(t *testing.T) {
	o := Offering{Mode: ModeServices, PackageTier: "Gold"}
	_ = o.Normalized()
	if o.PackageTier != "Gold" {
		t.Fatalf("receiver mutated: %+v", o)
	}
}
