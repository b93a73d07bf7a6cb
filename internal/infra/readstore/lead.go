package readstore

//go:generate mockgen -source=lead.go -destination=../../../tests/mock/readstore/lead_mock.go -package=readstoremock

import (
	"context"
	"regexp"
	"strings"

	"rovera-leads/internal/domain/lead"
	"rovera-leads/internal/infra"
	"rovera-leads/internal/infra/repository/converter"
	"rovera-leads/internal/pkg/mongoconv"
	"rovera-leads/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"
)

// LeadViewCollection is the read side of *mongo.Collection used here.
type LeadViewCollection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// newest first; _id breaks ties between equal timestamps
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

// digits plus the punctuation a phone mask adds
var phoneLike = regexp.MustCompile(`^[\d\s()+.-]+$`)

type LeadReadStore struct {
	coll LeadViewCollection
}

func NewLeadReadStore(coll LeadViewCollection) *LeadReadStore {
	return &LeadReadStore{coll: coll}
}

func (r *LeadReadStore) FindLatestByUserEmail(ctx context.Context, userEmail string) (*queries.LeadView, error) {
	filter := bson.D{{Key: "userEmail", Value: strings.ToLower(strings.TrimSpace(userEmail))}}
	opts := options.FindOne().SetSort(newestFirst)

	var doc converter.LeadDocument
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if mongoconv.IsNoDocuments(err) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest lead by user", err)
	}
	return converter.DocumentToView(doc), nil
}

// Search returns one page of matching leads and the total match count.
// The page and the count are fetched concurrently.
func (r *LeadReadStore) Search(ctx context.Context, q queries.LeadSearch) ([]*queries.LeadView, int64, error) {
	filter := BuildSearchFilter(q.Search)

	var (
		docs  []converter.LeadDocument
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opts := options.Find().SetSort(newestFirst).SetSkip(q.Skip).SetLimit(q.Limit)
		cur, err := r.coll.Find(gctx, filter, opts)
		if err != nil {
			return infra.WrapRepoErr("failed to find leads", err)
		}
		if err := cur.All(gctx, &docs); err != nil {
			return infra.WrapRepoErr("failed to decode leads", err)
		}
		return nil
	})
	g.Go(func() error {
		n, err := r.coll.CountDocuments(gctx, filter)
		if err != nil {
			return infra.WrapRepoErr("failed to count leads", err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	views := make([]*queries.LeadView, 0, len(docs))
	for _, d := range docs {
		views = append(views, converter.DocumentToView(d))
	}
	return views, total, nil
}

// BuildSearchFilter matches the text, case-insensitively, anywhere in nome,
// email or telefone. Phones are stored as digits, so a masked search such as
// "(11) 9" is also tried against its digits; text with letters is not.
// Blank text matches everything.
func BuildSearchFilter(text string) bson.D {
	text = strings.TrimSpace(text)
	if text == "" {
		return bson.D{}
	}

	pattern := mongoconv.ContainsFold(text)
	or := bson.A{
		bson.D{{Key: "nome", Value: pattern}},
		bson.D{{Key: "email", Value: pattern}},
		bson.D{{Key: "telefone", Value: pattern}},
	}
	if digits := lead.OnlyDigits(text); digits != "" && digits != text && phoneLike.MatchString(text) {
		or = append(or, bson.D{{Key: "telefone", Value: mongoconv.ContainsFold(digits)}})
	}
	return bson.D{{Key: "$or", Value: or}}
}
