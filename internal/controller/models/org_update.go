package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateOrgV1Opts struct {
	Db *mongo.Database

	// Id identifies the organization to update
	Id string

	// Name when non-nil replaces the organization's name
	Name *string

	// AdminEmail when non-nil replaces the admin's email; subject to
	// the store's uniqueness constraint
	AdminEmail *string

	// AdminPasswordHash when non-nil replaces the admin's password
	// hash
	AdminPasswordHash *string
}

// UpdateOrgV1 applies a partial update; only the supplied fields
// change. Returns the updated document.
func UpdateOrgV1(opts UpdateOrgV1Opts) (*Org, error) {
	if opts.Db == nil {
		return nil, errorNoDatabaseConnection
	}
	if opts.Id == "" {
		return nil, errorInputValidationFailed
	}
	if opts.Name == nil && opts.AdminEmail == nil && opts.AdminPasswordHash == nil {
		return nil, errorInputValidationFailed
	}

	patch := bson.M{"updatedAt": time.Now()}
	if opts.Name != nil {
		patch["name"] = *opts.Name
	}
	if opts.AdminEmail != nil {
		patch["adminEmail"] = *opts.AdminEmail
	}
	if opts.AdminPasswordHash != nil {
		patch["adminPasswordHash"] = *opts.AdminPasswordHash
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	var org Org
	if err := opts.Db.Collection(CollectionOrgs).FindOneAndUpdate(
		ctx,
		bson.M{"_id": opts.Id},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to update org[%s]: %w", opts.Id, ErrorNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to update org[%s]: %w", opts.Id, ErrorDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to update org[%s]: %w", opts.Id, err)
	}
	return &org, nil
}
