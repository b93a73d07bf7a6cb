package repository

//go:generate mockgen -source=lead.go -destination=../../../tests/mock/repository/lead_mock.go -package=repositorymock

import (
	"context"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/infra"
	"rovera-leads/internal/infra/repository/converter"
	"rovera-leads/internal/pkg/mongoconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// LeadWriteCollection is the write side of *mongo.Collection used here.
type LeadWriteCollection interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
}

type LeadRepository struct {
	coll LeadWriteCollection
}

func NewLeadRepository(coll LeadWriteCollection) *LeadRepository {
	return &LeadRepository{coll: coll}
}

// Insert stores the lead and returns the generated id in hex form.
func (r *LeadRepository) Insert(ctx context.Context, l *lead.Lead) (string, error) {
	res, err := r.coll.InsertOne(ctx, converter.LeadToDocument(l))
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert lead", err)
	}
	id := mongoconv.ObjectIDHex(res.InsertedID)
	if id == "" {
		return "", infra.WrapRepoErr("unexpected inserted id type", nil)
	}
	return id, nil
}

func (r *LeadRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := mongoconv.ParseObjectID(id)
	if err != nil {
		return infra.WrapRepoErr("invalid lead id", err, infra.KindInvalidID)
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return infra.WrapRepoErr("failed to delete lead", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("lead not found", nil, infra.KindNotFound)
	}
	return nil
}
