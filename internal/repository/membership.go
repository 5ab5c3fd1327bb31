package repository

import (
	"context"

	"foodgram-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type membershipRecord[T any] interface {
	*T
	models.MembershipRecord
}

// MembershipRepository stores (user, target) pairs for one membership table.
// The pair is unique; Add is an upsert and Remove is delete-if-present.
type MembershipRepository[T any, P membershipRecord[T]] struct {
	db *gorm.DB
}

var (
	_ MembershipRepositoryInterface = (*MembershipRepository[models.Favorite, *models.Favorite])(nil)
	_ MembershipRepositoryInterface = (*MembershipRepository[models.ShoppingCartEntry, *models.ShoppingCartEntry])(nil)
	_ MembershipRepositoryInterface = (*MembershipRepository[models.Subscription, *models.Subscription])(nil)
)

// NewFavoriteRepository creates a membership repository over favorites
func NewFavoriteRepository(db *gorm.DB) *MembershipRepository[models.Favorite, *models.Favorite] {
	return &MembershipRepository[models.Favorite, *models.Favorite]{db: db}
}

// NewShoppingCartRepository creates a membership repository over shopping cart entries
func NewShoppingCartRepository(db *gorm.DB) *MembershipRepository[models.ShoppingCartEntry, *models.ShoppingCartEntry] {
	return &MembershipRepository[models.ShoppingCartEntry, *models.ShoppingCartEntry]{db: db}
}

// NewSubscriptionRepository creates a membership repository over subscriptions
func NewSubscriptionRepository(db *gorm.DB) *MembershipRepository[models.Subscription, *models.Subscription] {
	return &MembershipRepository[models.Subscription, *models.Subscription]{db: db}
}

func (r *MembershipRepository[T, P]) targetColumn() string {
	return P(new(T)).TargetColumn()
}

// Add inserts the pair unless it already exists and returns the stored row.
// Concurrent adds of the same pair both succeed: the unique index rejects the
// second insert and ON CONFLICT DO NOTHING absorbs it.
func (r *MembershipRepository[T, P]) Add(ctx context.Context, userID, targetID uint) (*models.Membership, error) {
	var stored T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := new(T)
		P(row).Bind(userID, targetID)
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND "+r.targetColumn()+" = ?", userID, targetID).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	m := P(&stored).Membership()
	return &m, nil
}

// Remove deletes the pair; removing an absent pair is not an error
func (r *MembershipRepository[T, P]) Remove(ctx context.Context, userID, targetID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND "+r.targetColumn()+" = ?", userID, targetID).
		Delete(new(T)).Error
}

// Exists reports whether the pair is stored
func (r *MembershipRepository[T, P]) Exists(ctx context.Context, userID, targetID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ? AND "+r.targetColumn()+" = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListTargets returns the user's targets, most recently added first
func (r *MembershipRepository[T, P]) ListTargets(ctx context.Context, userID uint) ([]uint, error) {
	targets := []uint{}
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Pluck(r.targetColumn(), &targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

// FilterTargets returns the subset of targetIDs the user holds
func (r *MembershipRepository[T, P]) FilterTargets(ctx context.Context, userID uint, targetIDs []uint) ([]uint, error) {
	held := []uint{}
	if len(targetIDs) == 0 {
		return held, nil
	}
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("user_id = ? AND "+r.targetColumn()+" IN ?", userID, targetIDs).
		Pluck(r.targetColumn(), &held).Error
	if err != nil {
		return nil, err
	}
	return held, nil
}
