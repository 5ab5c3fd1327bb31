package models

// User is an account known to the identity provider. Credentials live there;
// this table only holds what recipes and memberships reference.
type User struct {
	BaseModel
	Email     string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:254" validate:"required,email,max=254"`
	Username  string `json:"username" gorm:"uniqueIndex:idx_users_username;not null;size:150" validate:"required,min=1,max=150"`
	FirstName string `json:"first_name" gorm:"not null;size:150" validate:"max=150"`
	LastName  string `json:"last_name" gorm:"not null;size:150" validate:"max=150"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
