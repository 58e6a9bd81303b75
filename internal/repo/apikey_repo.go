// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the APIKey
// model. Only the bcrypt hash of an issued key is ever stored; comparing a
// presented secret against these hashes is the credential service's job.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/skuwatch/go-price-backend/internal/domain"
)

// CreateAPIKey inserts a credential row mapping userID to the bcrypt hash of
// its secret. On success, it returns the persisted row. On failure, it
// returns a DB error.
func CreateAPIKey(ctx context.Context, db *gorm.DB, userID, keyHash string) (*domain.APIKey, error) {
	k := &domain.APIKey{
		UserID:    userID,
		KeyHash:   keyHash,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(k).Error; err != nil {
		return nil, err
	}
	return k, nil
}

// ListAPIKeys returns every stored credential ordered by user_id so that
// verification scans are deterministic and order-independent of insertion.
// It returns an empty slice when no credentials exist. On DB error, it
// returns the error.
func ListAPIKeys(ctx context.Context, db *gorm.DB) ([]domain.APIKey, error) {
	var out []domain.APIKey
	err := db.WithContext(ctx).
		Order("user_id asc").
		Find(&out).Error
	return out, err
}
