package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cemerttu/backend-store-master/models"
)

// MongoContactRepository implements ContactRepository on a mongo collection.
type MongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a contact repository backed by the
// "contacts" collection.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{collection: db.Collection("contacts")}
}

func (r *MongoContactRepository) Insert(ctx context.Context, m *models.Contact) error {
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, m)
	return err
}
