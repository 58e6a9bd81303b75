// Package services – CredentialService
//
// This file implements API key issuance and verification. A credential is a
// random secret whose bcrypt hash is the only thing persisted server-side;
// the plaintext is handed to the caller exactly once at issuance and can
// never be retrieved again.
//
// Verification deliberately fails closed: an absent or empty secret, a
// storage error, or a hash mismatch all resolve to "not authorized" without
// distinguishing between them.
package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skuwatch/go-price-backend/internal/domain"
	"github.com/skuwatch/go-price-backend/internal/repo"
)

// CredentialRepo defines the repository contract required by CredentialService.
type CredentialRepo interface {
	// CreateAPIKey persists a (userID, keyHash) credential row.
	CreateAPIKey(ctx context.Context, db *gorm.DB, userID, keyHash string) (*domain.APIKey, error)

	// ListAPIKeys returns all stored credentials in a deterministic order.
	ListAPIKeys(ctx context.Context, db *gorm.DB) ([]domain.APIKey, error)
}

// credentialRepo adapts the repository free functions to CredentialRepo.
type credentialRepo struct{}

func (credentialRepo) CreateAPIKey(ctx context.Context, db *gorm.DB, userID, keyHash string) (*domain.APIKey, error) {
	return repo.CreateAPIKey(ctx, db, userID, keyHash)
}

func (credentialRepo) ListAPIKeys(ctx context.Context, db *gorm.DB) ([]domain.APIKey, error) {
	return repo.ListAPIKeys(ctx, db)
}

// CredentialService issues and verifies API keys. Multiple independent
// credentials may coexist; any previously issued secret authorizes a caller.
type CredentialService struct {
	// DB is the database handle used for credential operations.
	DB *gorm.DB
	// Repo is the credential repository used by this service.
	Repo CredentialRepo
	// Cost is the bcrypt work factor applied at issuance. Verification uses
	// the factor embedded in each stored hash.
	Cost int
}

// NewCredentialService constructs a CredentialService with the given bcrypt
// cost. Costs outside bcrypt's supported range fall back to the default.
func NewCredentialService(db *gorm.DB, cost int) *CredentialService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialService{DB: db, Repo: credentialRepo{}, Cost: cost}
}

// Issue generates a new credential: a random user id and a random secret,
// both UUIDv4. Only the bcrypt hash of the secret is persisted. The plaintext
// secret is returned to the caller exactly once and is not logged.
func (s *CredentialService) Issue(ctx context.Context) (userID, plaintext string, err error) {
	userID = uuid.NewString()
	plaintext = uuid.NewString()

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.Cost)
	if err != nil {
		return "", "", err
	}
	if _, err := s.Repo.CreateAPIKey(ctx, s.DB, userID, string(hash)); err != nil {
		return "", "", err
	}
	return userID, plaintext, nil
}

// Verify reports whether presented matches any issued credential.
//
// Behavior:
//   - An empty presented value is rejected immediately.
//   - Every stored hash is checked (scanned in user_id order) and any match
//     accepts; requests carry no public identifier alongside the secret, so
//     checking a single arbitrary row would be a correctness defect.
//   - Storage errors resolve to false (fail closed), never to a panic or an
//     error the access gate would have to interpret.
//
// The comparison uses bcrypt's constant-time primitive per hash. Neither the
// presented secret nor the stored hashes are cached beyond this call.
func (s *CredentialService) Verify(ctx context.Context, presented string) bool {
	if presented == "" {
		return false
	}
	keys, err := s.Repo.ListAPIKeys(ctx, s.DB)
	if err != nil {
		log.Error().Err(err).Msg("credential lookup failed; denying")
		return false
	}
	for _, k := range keys {
		if bcrypt.CompareHashAndPassword([]byte(k.KeyHash), []byte(presented)) == nil {
			return true
		}
	}
	return false
}
