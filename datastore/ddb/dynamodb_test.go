//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"

	"github.com/suparena/polyregistry/datastore"
	"github.com/suparena/polyregistry/datastore/testmodels"
	"github.com/suparena/polyregistry/errors"
)

func getTestStore(t *testing.T) *Store {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	awsDDBTableName := os.Getenv("AWS_DDB_TABLE")
	region := os.Getenv("AWS_REGION")

	if awsAccessKey == "" || awsSecretKey == "" || awsDDBTableName == "" || region == "" {
		t.Skip("AWS environment not configured")
	}

	kinds := datastore.NewKindRegistry()
	if err := datastore.RegisterKind[testmodels.UserProfile](kinds, testmodels.UserProfileKind); err != nil {
		t.Fatalf("Failed to register UserProfile: %v", err)
	}
	if err := datastore.RegisterKind[testmodels.AuditEvent](kinds, testmodels.AuditEventKind); err != nil {
		t.Fatalf("Failed to register AuditEvent: %v", err)
	}

	store, err := NewStoreWithCredentials(awsAccessKey, awsSecretKey, region, awsDDBTableName, kinds)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestStorePut(t *testing.T) {
	store := getTestStore(t)

	now := strfmt.DateTime(time.Now().UTC())
	profile := &testmodels.UserProfile{
		ID:          aws.String("it-user-1"),
		DisplayName: aws.String("Integration User"),
		Tags:        []string{"integration"},
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	if err := store.Put(context.Background(), profile); err != nil {
		t.Error(err)
	}
}

func TestStoreGetOne(t *testing.T) {
	store := getTestStore(t)

	h, err := store.GetOne(context.Background(), testmodels.UserProfileKind, "it-user-1")
	if err != nil {
		t.Fatal(err)
	}

	profile, ok := h.Value().(*testmodels.UserProfile)
	if !ok {
		t.Fatalf("Expected *UserProfile, got %T", h.Value())
	}
	t.Logf("User profile: %v", profile)
}

func TestStoreGetOneMissing(t *testing.T) {
	store := getTestStore(t)

	_, err := store.GetOne(context.Background(), testmodels.UserProfileKind, "no-such-user")
	if !errors.IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := getTestStore(t)

	if err := store.Delete(context.Background(), testmodels.UserProfileKind, "it-user-1"); err != nil {
		t.Error(err)
	}

	t.Logf("User profile deleted")
}
