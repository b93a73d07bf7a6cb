//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"rovera-leads/internal/infra/repository/converter"
	"rovera-leads/tests/common/builder"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ResetDB empties the leads collection but keeps its indexes.
func ResetDB(coll *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := coll.DeleteMany(ctx, bson.D{})
	return err
}

// InsertLead stores the builder's document directly, bypassing validation.
func InsertLead(t *testing.T, coll *mongo.Collection, b *builder.LeadBuilder) converter.LeadDocument {
	t.Helper()

	doc := b.BuildDocument()
	_, err := coll.InsertOne(context.Background(), doc)
	require.NoError(t, err, "Failed to insert lead fixture")
	return doc
}

// SeedLeads inserts n leads owned by userEmail, one minute apart, oldest first.
func SeedLeads(t *testing.T, coll *mongo.Collection, userEmail string, n int) []converter.LeadDocument {
	t.Helper()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	docs := make([]converter.LeadDocument, 0, n)
	for i := range n {
		b := builder.NewLeadBuilder().
			WithUserEmail(userEmail).
			WithCreatedAt(base.Add(time.Duration(i) * time.Minute))
		docs = append(docs, InsertLead(t, coll, b))
	}
	return docs
}

func CountLeads(t *testing.T, coll *mongo.Collection) int64 {
	t.Helper()

	n, err := coll.CountDocuments(context.Background(), bson.D{})
	require.NoError(t, err)
	return n
}
