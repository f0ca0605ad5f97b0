package leads

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, lead Lead) error
	Update(ctx context.Context, id string, set bson.M) (Lead, error)
	FindByID(ctx context.Context, id string) (Lead, error)
	List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Lead, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	ListByBDA(ctx context.Context, email string) ([]Lead, error)
	FetchAll(ctx context.Context) ([]Lead, error)
	ExistsDuplicate(ctx context.Context, lead Lead) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, lead Lead) error {
	_, err := r.col.InsertOne(ctx, lead)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (Lead, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated Lead
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Lead{}, err
	}
	return updated, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (Lead, error) {
	var lead Lead
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&lead); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func listQuery(filter ListFilter) bson.M {
	query := bson.M{}
	if filter.PartnerCode != "" {
		query["partner_code"] = filter.PartnerCode
	}
	if filter.LeadSource != "" {
		query["lead_source"] = filter.LeadSource
	}
	if filter.CompanyName != "" {
		query["company_name"] = filter.CompanyName
	}
	if filter.PackageTier != "" {
		query["offering.package_tier"] = filter.PackageTier
	}
	return query
}

func (r *MongoRepository) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Lead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, listQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeLeads(ctx, cursor)
}

func (r *MongoRepository) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return r.col.CountDocuments(ctx, listQuery(filter))
}

func (r *MongoRepository) ListByBDA(ctx context.Context, email string) ([]Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"bda_email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeLeads(ctx, cursor)
}

// FetchAll returns the full lead snapshot used by the reporting layer. One
// request-response call, no pagination: the dashboard aggregates in memory.
func (r *MongoRepository) FetchAll(ctx context.Context) ([]Lead, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeLeads(ctx, cursor)
}

func (r *MongoRepository) ExistsDuplicate(ctx context.Context, lead Lead) (bool, error) {
	query := bson.M{
		"partner_code":   lead.PartnerCode,
		"company_name":   lead.CompanyName,
		"client_name":    lead.ClientName,
		"contact_number": lead.ContactNumber,
		"offering.mode":  lead.Offering.Mode,
	}
	count, err := r.col.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func decodeLeads(ctx context.Context, cursor *mongo.Cursor) ([]Lead, error) {
	items := make([]Lead, 0)
	for cursor.Next(ctx) {
		var lead Lead
		if err := cursor.Decode(&lead); err != nil {
			return nil, err
		}
		items = append(items, lead)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
