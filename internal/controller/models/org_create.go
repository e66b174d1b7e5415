package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateOrgV1Opts struct {
	Db *mongo.Database

	// Name defines the name of the organization as displayed to users
	Name string

	// AdminEmail is the login identity of the organization's admin;
	// this has to be unique across all organizations
	AdminEmail string

	// AdminPasswordHash is the encoded hash of the admin's password,
	// never the plaintext password
	AdminPasswordHash string
}

func CreateOrgV1(opts CreateOrgV1Opts) (string, error) {
	if opts.Db == nil {
		return "", errorNoDatabaseConnection
	}
	if opts.Name == "" || opts.AdminEmail == "" || opts.AdminPasswordHash == "" {
		return "", errorInputValidationFailed
	}

	orgUuid := uuid.NewString()

	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	if _, err := opts.Db.Collection(CollectionOrgs).InsertOne(ctx, Org{
		Id:                orgUuid,
		Name:              opts.Name,
		AdminEmail:        opts.AdminEmail,
		AdminPasswordHash: opts.AdminPasswordHash,
		CreatedAt:         time.Now(),
	}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("failed to insert org: %w", ErrorDuplicateEntry)
		}
		return "", fmt.Errorf("failed to insert org: %w", err)
	}

	return orgUuid, nil
}
