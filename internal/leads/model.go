package leads

import "time"

const (
	ModePackage  = "package"
	ModeServices = "services"
)

// Services that carry their own lead-time commitment when selected.
const (
	ServiceWebsiteDevelopment = "Website Development"
	ServiceBranding           = "Branding"
	ServiceSocialMedia        = "Social Media Management"
)

const (
	PaymentFullInAdvance = "Full In Advance"
	PaymentPartial       = "Partial Payment"
	PaymentNotDone       = "Not Done"
)

// Offering is the package-XOR-services half of a lead. Mode decides which
// fields apply; Normalized clears whatever the current mode and service
// selection do not cover, so stale sub-selections never survive a switch.
type Offering struct {
	Mode string `bson:"mode" json:"mode"`

	PackageName string `bson:"package_name,omitempty" json:"package_name,omitempty"`
	PackageTier string `bson:"package_tier,omitempty" json:"package_tier,omitempty"`

	Services             []string `bson:"services,omitempty" json:"services,omitempty"`
	SocialPlatforms      []string `bson:"social_platforms,omitempty" json:"social_platforms,omitempty"`
	BrandingRequirements []string `bson:"branding_requirements,omitempty" json:"branding_requirements,omitempty"`
	WebsitePlatform      string   `bson:"website_platform,omitempty" json:"website_platform,omitempty"`

	WebsiteDevelopmentDays int `bson:"website_development_days,omitempty" json:"website_development_days,omitempty"`
	BrandingDays           int `bson:"branding_days,omitempty" json:"branding_days,omitempty"`
	SocialMediaDays        int `bson:"social_media_days,omitempty" json:"social_media_days,omitempty"`
}

func (o Offering) HasService(name string) bool {
	for _, s := range o.Services {
		if s == name {
			return true
		}
	}
	return false
}

// Normalized returns a copy with every field that the current mode or service
// selection does not cover reset to its zero value.
func (o Offering) Normalized() Offering {
	out := o

	if out.Mode != ModePackage {
		out.PackageName = ""
		out.PackageTier = ""
	}

	if out.Mode != ModeServices {
		out.Services = nil
	}

	if !out.HasService(ServiceSocialMedia) {
		out.SocialPlatforms = nil
		out.SocialMediaDays = 0
	}
	if !out.HasService(ServiceBranding) {
		out.BrandingRequirements = nil
		out.BrandingDays = 0
	}
	if !out.HasService(ServiceWebsiteDevelopment) {
		out.WebsitePlatform = ""
		out.WebsiteDevelopmentDays = 0
	}

	return out
}

type Lead struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	PartnerCode string `bson:"partner_code" json:"partner_code"`
	LeadSource  string `bson:"lead_source" json:"lead_source"`
	Industry    string `bson:"industry,omitempty" json:"industry,omitempty"`

	BDAEmail          string `bson:"bda_email" json:"bda_email"`
	CompanyName       string `bson:"company_name" json:"company_name"`
	ClientName        string `bson:"client_name" json:"client_name"`
	ClientEmail       string `bson:"client_email" json:"client_email"`
	ClientDesignation string `bson:"client_designation" json:"client_designation"`
	ContactNumber     string `bson:"contact_number" json:"contact_number"`
	AlternateContact  string `bson:"alternate_contact,omitempty" json:"alternate_contact,omitempty"`
	CompanyOffering   string `bson:"company_offering" json:"company_offering"`

	Offering Offering `bson:"offering" json:"offering"`

	TotalServiceFees float64 `bson:"total_service_fees" json:"total_service_fees"`
	GSTBill          bool    `bson:"gst_bill" json:"gst_bill"`
	AmountWithoutGST float64 `bson:"amount_without_gst" json:"amount_without_gst"`
	PaymentStatus    string  `bson:"payment_status" json:"payment_status"`
	AmountReceived   float64 `bson:"amount_received" json:"amount_received"`
	PendingAmount    float64 `bson:"pending_amount" json:"pending_amount"`
	PendingDueDate   string  `bson:"pending_due_date,omitempty" json:"pending_due_date,omitempty"`
	PaymentProofRef  string  `bson:"payment_proof_ref,omitempty" json:"payment_proof_ref,omitempty"`

	CustomerDeadline string `bson:"customer_deadline,omitempty" json:"customer_deadline,omitempty"`

	ServicePromised      string `bson:"service_promised" json:"service_promised"`
	ImportantInformation string `bson:"important_information,omitempty" json:"important_information,omitempty"`
}

// SubmitRequest is the intake payload for both create and full edit. The
// conditional required-field contract lives in ResolveRequiredFields; the
// validate tags only cover shape-level constraints.
type SubmitRequest struct {
	PartnerCode string `json:"partner_code" validate:"required"`
	LeadSource  string `json:"lead_source" validate:"required,oneof='Social Media' Referral Website Advertisement Event"`
	Industry    string `json:"industry"`

	BDAEmail          string `json:"bda_email" validate:"omitempty,email"`
	CompanyName       string `json:"company_name"`
	ClientName        string `json:"client_name"`
	ClientEmail       string `json:"client_email" validate:"omitempty,email"`
	ClientDesignation string `json:"client_designation"`
	ContactNumber     string `json:"contact_number"`
	AlternateContact  string `json:"alternate_contact"`
	CompanyOffering   string `json:"company_offering"`

	Offering Offering `json:"offering"`

	TotalServiceFees float64 `json:"total_service_fees" validate:"gte=0"`
	GSTBill          bool    `json:"gst_bill"`
	AmountWithoutGST float64 `json:"amount_without_gst" validate:"gte=0"`
	PaymentStatus    string  `json:"payment_status" validate:"omitempty,paymentstatus"`
	AmountReceived   float64 `json:"amount_received" validate:"gte=0"`
	PendingAmount    float64 `json:"pending_amount" validate:"gte=0"`
	PendingDueDate   string  `json:"pending_due_date" validate:"omitempty,date"`
	PaymentProofRef  string  `json:"payment_proof_ref"`

	CustomerDeadline string `json:"customer_deadline" validate:"omitempty,date"`

	ServicePromised      string `json:"service_promised"`
	ImportantInformation string `json:"important_information"`
}

type ListFilter struct {
	PartnerCode string
	LeadSource  string
	CompanyName string
	PackageTier string
}
