package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GetOrgV1Opts struct {
	Db *mongo.Database

	// Id when specified retrieves the organization by its identifier
	Id *string

	// AdminEmail when specified retrieves the organization by its
	// admin's email address
	AdminEmail *string
}

func GetOrgV1(opts GetOrgV1Opts) (*Org, error) {
	if opts.Db == nil {
		return nil, errorNoDatabaseConnection
	}

	filter := bson.M{}
	if opts.Id != nil {
		filter["_id"] = *opts.Id
	}
	if opts.AdminEmail != nil {
		filter["adminEmail"] = *opts.AdminEmail
	}
	if len(filter) == 0 {
		return nil, errorInputValidationFailed
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	var org Org
	if err := opts.Db.Collection(CollectionOrgs).FindOne(ctx, filter).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to find org: %w", ErrorNotFound)
		}
		return nil, fmt.Errorf("failed to find org: %w", err)
	}
	return &org, nil
}
