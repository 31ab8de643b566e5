/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyregistry_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/polyregistry/datastore"
	"github.com/suparena/polyregistry/datastore/mock"
	"github.com/suparena/polyregistry/datastore/testmodels"
	"github.com/suparena/polyregistry/manifest"
)

const registrationManifest = `
families:
  - name: entity
    types:
      - name: UserProfile
      - name: AuditEvent
`

// Full flow: explicit registration pass, manifest verification, then
// polymorphic storage round trips through the shared envelope.
func TestRegistrationLifecycle(t *testing.T) {
	kinds := datastore.NewKindRegistry()
	if err := datastore.RegisterKind[testmodels.UserProfile](kinds, testmodels.UserProfileKind); err != nil {
		t.Fatalf("Failed to register UserProfile: %v", err)
	}
	if err := datastore.RegisterKind[testmodels.AuditEvent](kinds, testmodels.AuditEventKind); err != nil {
		t.Fatalf("Failed to register AuditEvent: %v", err)
	}

	m, err := manifest.Parse([]byte(registrationManifest))
	if err != nil {
		t.Fatalf("Failed to parse manifest: %v", err)
	}
	fam, ok := m.Family("entity")
	if !ok {
		t.Fatal("Expected entity family in manifest")
	}
	if err := fam.Verify(kinds.Names()); err != nil {
		t.Fatalf("Manifest verification failed: %v", err)
	}

	store := mock.New(kinds)
	ctx := context.Background()

	now := strfmt.DateTime(time.Now().UTC())
	for i := 0; i < 5; i++ {
		profile := &testmodels.UserProfile{
			ID:          aws.String(fmt.Sprintf("u-%d", i)),
			DisplayName: aws.String(fmt.Sprintf("User %d", i)),
			CreatedAt:   &now,
			UpdatedAt:   &now,
		}
		if err := store.Put(ctx, profile); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	var count int
	for result := range store.Stream(ctx, nil) {
		if result.Error != nil {
			t.Fatalf("Stream error: %v", result.Error)
		}
		clone, err := result.Item.Clone()
		if err != nil {
			t.Fatalf("Clone failed: %v", err)
		}
		if clone.Name() != testmodels.UserProfileKind {
			t.Errorf("Expected clone kind %q, got %q", testmodels.UserProfileKind, clone.Name())
		}
		count++
	}
	if count != 5 {
		t.Fatalf("Expected 5 streamed entities, got %d", count)
	}
}
