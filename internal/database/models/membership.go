package models

import (
	"time"
)

// Membership is the uniform view of a (user, target) join row regardless of
// which relation it belongs to.
type Membership struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	TargetID  uint      `json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MembershipRecord is implemented by the join models tracked as memberships.
type MembershipRecord interface {
	TableName() string
	TargetColumn() string
	Bind(userID, targetID uint)
	Membership() Membership
}

// Favorite marks a recipe as favorited by a user.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_favorites_user_recipe;not null"`
	RecipeID  uint      `json:"recipe_id" gorm:"uniqueIndex:idx_favorites_user_recipe;not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Favorite
func (Favorite) TableName() string {
	return "favorites"
}

func (Favorite) TargetColumn() string {
	return "recipe_id"
}

func (f *Favorite) Bind(userID, targetID uint) {
	f.UserID = userID
	f.RecipeID = targetID
}

func (f *Favorite) Membership() Membership {
	return Membership{ID: f.ID, UserID: f.UserID, TargetID: f.RecipeID, CreatedAt: f.CreatedAt}
}

// ShoppingCartEntry puts a recipe into a user's shopping cart.
type ShoppingCartEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_shopping_cart_entries_user_recipe;not null"`
	RecipeID  uint      `json:"recipe_id" gorm:"uniqueIndex:idx_shopping_cart_entries_user_recipe;not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User   User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShoppingCartEntry
func (ShoppingCartEntry) TableName() string {
	return "shopping_cart_entries"
}

func (ShoppingCartEntry) TargetColumn() string {
	return "recipe_id"
}

func (e *ShoppingCartEntry) Bind(userID, targetID uint) {
	e.UserID = userID
	e.RecipeID = targetID
}

func (e *ShoppingCartEntry) Membership() Membership {
	return Membership{ID: e.ID, UserID: e.UserID, TargetID: e.RecipeID, CreatedAt: e.CreatedAt}
}

// Subscription subscribes a user to an author. UserID never equals AuthorID.
type Subscription struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_subscriptions_user_author;not null"`
	AuthorID  uint      `json:"author_id" gorm:"uniqueIndex:idx_subscriptions_user_author;not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User   User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

func (Subscription) TargetColumn() string {
	return "author_id"
}

func (s *Subscription) Bind(userID, targetID uint) {
	s.UserID = userID
	s.AuthorID = targetID
}

func (s *Subscription) Membership() Membership {
	return Membership{ID: s.ID, UserID: s.UserID, TargetID: s.AuthorID, CreatedAt: s.CreatedAt}
}
