package services

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/skuwatch/go-price-backend/internal/domain"
)

func TestCredentialService_IssueAndVerify_RoundTrip(t *testing.T) {
	db := newServiceDB(t)
	svc := NewCredentialService(db, bcrypt.MinCost) // keep the test fast
	ctx := context.Background()

	userID, secret, err := svc.Issue(ctx)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if userID == "" || secret == "" {
		t.Fatalf("expected non-empty credential pair, got (%q, %q)", userID, secret)
	}

	if !svc.Verify(ctx, secret) {
		t.Fatalf("freshly issued secret must verify")
	}
	if svc.Verify(ctx, "not-the-secret") {
		t.Fatalf("wrong secret must not verify")
	}
	if svc.Verify(ctx, "") {
		t.Fatalf("empty secret must not verify")
	}
}

func TestCredentialService_Issue_StoresHashOnly(t *testing.T) {
	db := newServiceDB(t)
	svc := NewCredentialService(db, bcrypt.MinCost)

	userID, secret, err := svc.Issue(context.Background())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var row domain.APIKey
	if err := db.First(&row, "user_id = ?", userID).Error; err != nil {
		t.Fatalf("readback: %v", err)
	}
	if row.KeyHash == secret || strings.Contains(row.KeyHash, secret) {
		t.Fatalf("plaintext secret leaked into storage: %q", row.KeyHash)
	}
	if !strings.HasPrefix(row.KeyHash, "$2") {
		t.Fatalf("stored value is not a bcrypt hash: %q", row.KeyHash)
	}
}

func TestCredentialService_Verify_ChecksAllCredentials(t *testing.T) {
	db := newServiceDB(t)
	svc := NewCredentialService(db, bcrypt.MinCost)
	ctx := context.Background()

	// Issue several credentials; every one of them must authorize, not just
	// whichever row happens to come back first.
	secrets := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		_, s, err := svc.Issue(ctx)
		if err != nil {
			t.Fatalf("Issue %d: %v", i, err)
		}
		secrets = append(secrets, s)
	}
	for i, s := range secrets {
		if !svc.Verify(ctx, s) {
			t.Fatalf("secret %d did not verify", i)
		}
	}
}

func TestCredentialService_Verify_FailsClosedOnStorageError(t *testing.T) {
	db := newServiceDB(t)
	svc := NewCredentialService(db, bcrypt.MinCost)
	ctx := context.Background()

	_, secret, err := svc.Issue(ctx)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Break the store: every subsequent query errors.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	_ = sqlDB.Close()

	if svc.Verify(ctx, secret) {
		t.Fatalf("verification must deny when storage is unavailable")
	}
}

func TestNewCredentialService_CostOutOfRange_FallsBack(t *testing.T) {
	db := newServiceDB(t)
	if svc := NewCredentialService(db, 99); svc.Cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", svc.Cost)
	}
	if svc := NewCredentialService(db, 0); svc.Cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost for 0, got %d", svc.Cost)
	}
}
