package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// CollectionOrgs holds one document per organization; the admin
	// credential is embedded so that the pair is created and destroyed
	// in a single document operation
	CollectionOrgs = "organizations"

	defaultQueryTimeout = 3 * time.Second
)

type Org struct {
	Id                string     `bson:"_id" json:"id"`
	Name              string     `bson:"name" json:"name"`
	AdminEmail        string     `bson:"adminEmail" json:"adminEmail"`
	AdminPasswordHash string     `bson:"adminPasswordHash" json:"-"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// InitOrgsCollectionV1 ensures the unique index on the admin email so
// that uniqueness is enforced by the store and not by application code.
func InitOrgsCollectionV1(db *mongo.Database) error {
	if db == nil {
		return errorNoDatabaseConnection
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	if _, err := db.Collection(CollectionOrgs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "adminEmail", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create unique index on adminEmail: %w", err)
	}
	return nil
}
