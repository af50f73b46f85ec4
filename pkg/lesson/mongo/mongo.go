// Package mongo implements the lesson repository on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"afterschool/pkg/lesson"
)

// Collection is the lessons collection name.
const Collection = "lessons"

// Repository persists lessons in MongoDB.
type Repository struct {
	col *mongo.Collection
}

// New creates a MongoDB-backed lesson repository on the given database.
func New(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(Collection)}
}

// lessonDoc is the stored document shape. The _id is a native ObjectID and is
// rendered as its hex form on the domain type.
type lessonDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Subject  string             `bson:"subject"`
	Location string             `bson:"location"`
	Price    float64            `bson:"price"`
	Spaces   int                `bson:"spaces"`
	Icon     string             `bson:"icon"`
}

func (d lessonDoc) toDomain() lesson.Lesson {
	return lesson.Lesson{
		ID:       d.ID.Hex(),
		Subject:  d.Subject,
		Location: d.Location,
		Price:    d.Price,
		Spaces:   d.Spaces,
		Icon:     d.Icon,
	}
}

// FindAll returns every lesson in store-native order.
func (r *Repository) FindAll(ctx context.Context) ([]lesson.Lesson, error) {
	return r.find(ctx, bson.M{})
}

// Search returns the lessons matching the filter. The four OR clauses mirror
// lesson.Filter.Matches: regex metacharacters in the term are escaped so the
// clauses stay plain substring matches, and the numeric price field is
// coerced to its string form server-side before matching.
func (r *Repository) Search(ctx context.Context, f lesson.Filter) ([]lesson.Lesson, error) {
	if f.Empty() {
		return r.find(ctx, bson.M{})
	}
	pattern := regexp.QuoteMeta(f.Term)
	return r.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"subject": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"$expr": bson.M{"$regexMatch": bson.M{
				"input":   bson.M{"$toString": "$price"},
				"regex":   pattern,
				"options": "i",
			}}},
			bson.M{"spaces": f.Spaces},
		},
	})
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]lesson.Lesson, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find lessons: %w", err)
	}
	defer cur.Close(ctx)

	var docs []lessonDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}
	out := make([]lesson.Lesson, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// UpdateSpaces sets the spaces field of the identified lesson. A malformed id
// fails before any query is issued; the caller sees it as a store failure,
// not a not-found.
func (r *Repository) UpdateSpaces(ctx context.Context, id string, spaces int) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("parse lesson id %q: %w", id, err)
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"spaces": spaces}},
	)
	if err != nil {
		return 0, fmt.Errorf("update lesson %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return 0, lesson.ErrNotFound
	}
	return res.ModifiedCount, nil
}

// ReplaceAll clears the collection and inserts the given lessons. Used by the
// seed command only.
func (r *Repository) ReplaceAll(ctx context.Context, lessons []lesson.Lesson) (int, error) {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clear lessons: %w", err)
	}
	docs := make([]interface{}, 0, len(lessons))
	for _, l := range lessons {
		docs = append(docs, lessonDoc{
			Subject:  l.Subject,
			Location: l.Location,
			Price:    l.Price,
			Spaces:   l.Spaces,
			Icon:     l.Icon,
		})
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert lessons: %w", err)
	}
	return len(res.InsertedIDs), nil
}
