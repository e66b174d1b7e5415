package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteOrgV1Opts struct {
	Db *mongo.Database

	// Id identifies the organization to delete
	Id string
}

// DeleteOrgV1 removes the organization document; since the admin
// credential is embedded in the same document, the pair is destroyed
// atomically and no orphan credential can remain.
func DeleteOrgV1(opts DeleteOrgV1Opts) error {
	if opts.Db == nil {
		return errorNoDatabaseConnection
	}
	if opts.Id == "" {
		return errorInputValidationFailed
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	res, err := opts.Db.Collection(CollectionOrgs).DeleteOne(ctx, bson.M{"_id": opts.Id})
	if err != nil {
		return fmt.Errorf("failed to delete org[%s]: %w", opts.Id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("failed to delete org[%s]: %w", opts.Id, ErrorNotFound)
	}
	return nil
}
