package leads

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("lead not found")
	ErrDuplicate = errors.New("lead already exists with the same details")
)

// ValidationError carries the resolver output for a rejected submission.
type ValidationError struct {
	Result ResolveResult
}

func (e *ValidationError) Error() string {
	return "lead validation failed"
}

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req SubmitRequest) (Lead, error) {
	req.Offering = req.Offering.Normalized()

	if res := ResolveRequiredFields(req); !res.Valid() {
		return Lead{}, &ValidationError{Result: res}
	}

	now := time.Now().In(s.location)
	lead := leadFromRequest(req)
	lead.ID = primitive.NewObjectID().Hex()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	dup, err := s.repo.ExistsDuplicate(ctx, lead)
	if err != nil {
		return Lead{}, err
	}
	if dup {
		return Lead{}, ErrDuplicate
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

// Update replaces every mutable field of a lead. The creation timestamp is
// never part of the update document.
func (s *Service) Update(ctx context.Context, id string, req SubmitRequest) (Lead, error) {
	req.Offering = req.Offering.Normalized()

	if res := ResolveRequiredFields(req); !res.Valid() {
		return Lead{}, &ValidationError{Result: res}
	}

	set := bson.M{
		"partner_code":          strings.TrimSpace(req.PartnerCode),
		"lead_source":           strings.TrimSpace(req.LeadSource),
		"industry":              strings.TrimSpace(req.Industry),
		"bda_email":             strings.TrimSpace(req.BDAEmail),
		"company_name":          strings.TrimSpace(req.CompanyName),
		"client_name":           strings.TrimSpace(req.ClientName),
		"client_email":          strings.TrimSpace(req.ClientEmail),
		"client_designation":    strings.TrimSpace(req.ClientDesignation),
		"contact_number":        strings.TrimSpace(req.ContactNumber),
		"alternate_contact":     strings.TrimSpace(req.AlternateContact),
		"company_offering":      strings.TrimSpace(req.CompanyOffering),
		"offering":              req.Offering,
		"total_service_fees":    req.TotalServiceFees,
		"gst_bill":              req.GSTBill,
		"amount_without_gst":    req.AmountWithoutGST,
		"payment_status":        req.PaymentStatus,
		"amount_received":       req.AmountReceived,
		"pending_amount":        req.PendingAmount,
		"pending_due_date":      req.PendingDueDate,
		"payment_proof_ref":     req.PaymentProofRef,
		"customer_deadline":     req.CustomerDeadline,
		"service_promised":      strings.TrimSpace(req.ServicePromised),
		"important_information": req.ImportantInformation,
		"updated_at":            time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Lead{}, ErrNotFound
		}
		return Lead{}, err
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id string) (Lead, error) {
	lead, err := s.repo.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Lead{}, ErrNotFound
		}
		return Lead{}, err
	}
	return lead, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Lead, int64, error) {
	filter.PartnerCode = strings.TrimSpace(filter.PartnerCode)
	filter.LeadSource = strings.TrimSpace(filter.LeadSource)
	filter.CompanyName = strings.TrimSpace(filter.CompanyName)
	filter.PackageTier = strings.TrimSpace(filter.PackageTier)

	items, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *Service) ListByBDA(ctx context.Context, email string) ([]Lead, error) {
	return s.repo.ListByBDA(ctx, strings.TrimSpace(email))
}

func leadFromRequest(req SubmitRequest) Lead {
	return Lead{
		PartnerCode:          strings.TrimSpace(req.PartnerCode),
		LeadSource:           strings.TrimSpace(req.LeadSource),
		Industry:             strings.TrimSpace(req.Industry),
		BDAEmail:             strings.TrimSpace(req.BDAEmail),
		CompanyName:          strings.TrimSpace(req.CompanyName),
		ClientName:           strings.TrimSpace(req.ClientName),
		ClientEmail:          strings.TrimSpace(req.ClientEmail),
		ClientDesignation:    strings.TrimSpace(req.ClientDesignation),
		ContactNumber:        strings.TrimSpace(req.ContactNumber),
		AlternateContact:     strings.TrimSpace(req.AlternateContact),
		CompanyOffering:      strings.TrimSpace(req.CompanyOffering),
		Offering:             req.Offering,
		TotalServiceFees:     req.TotalServiceFees,
		GSTBill:              req.GSTBill,
		AmountWithoutGST:     req.AmountWithoutGST,
		PaymentStatus:        req.PaymentStatus,
		AmountReceived:       req.AmountReceived,
		PendingAmount:        req.PendingAmount,
		PendingDueDate:       req.PendingDueDate,
		PaymentProofRef:      req.PaymentProofRef,
		CustomerDeadline:     req.CustomerDeadline,
		ServicePromised:      strings.TrimSpace(req.ServicePromised),
		ImportantInformation: req.ImportantInformation,
	}
}
