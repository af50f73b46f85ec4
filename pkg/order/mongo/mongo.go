// Package mongo implements the order repository on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"afterschool/pkg/order"
)

// Collection is the orders collection name.
const Collection = "orders"

// Repository persists orders in MongoDB.
type Repository struct {
	col *mongo.Collection
}

// New creates a MongoDB-backed order repository on the given database.
func New(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(Collection)}
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	LessonIDs []string           `bson:"lessonIds"`
	Spaces    int                `bson:"spaces"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Insert persists the order and returns the generated ObjectID in hex form.
func (r *Repository) Insert(ctx context.Context, o order.Order) (string, error) {
	res, err := r.col.InsertOne(ctx, orderDoc{
		Name:      o.Name,
		Phone:     o.Phone,
		LessonIDs: o.LessonIDs,
		Spaces:    o.Spaces,
		CreatedAt: o.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
