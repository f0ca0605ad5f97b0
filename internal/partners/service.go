package partners

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrDuplicateCode = errors.New("partner code already exists")

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

func (s *Service) Create(ctx context.Context, req CreateRequest) (Partner, error) {
	partner := Partner{
		ID:        primitive.NewObjectID().Hex(),
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, partner); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Partner{}, ErrDuplicateCode
		}
		return Partner{}, err
	}
	return partner, nil
}

func (s *Service) List(ctx context.Context) ([]Partner, error) {
	return s.repo.List(ctx)
}

// ListCodes seeds the dashboard's partner filter. Report series never use
// this catalog; they derive their columns from the lead data itself.
func (s *Service) ListCodes(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(items))
	for _, p := range items {
		codes = append(codes, p.Code)
	}
	return codes, nil
}
