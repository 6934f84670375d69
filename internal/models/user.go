package models

import (
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/query"
	"golang.org/x/crypto/bcrypt"
)

// User is an account that can create tasks, be contracted to them, or both.
// The password hash is opaque and never leaves the store.
type User struct {
	ID           uint   `gorm:"primarykey"`
	Login        string `gorm:"type:varchar(128);uniqueIndex;not null"`
	FirstName    string `gorm:"type:varchar(128);not null"`
	LastName     string `gorm:"type:varchar(128);not null"`
	PasswordHash []byte `gorm:"type:varbinary(128);not null"`
	IsCreator    bool
	IsContractor bool
	IsAdmin      bool
}

// NewUserFromMap constructs a user from validated fields. The password is
// hashed with bcrypt; unknown fields are ignored.
func NewUserFromMap(fields map[string]any) (*User, error) {
	if err := requireFields(fields, "login", "first_name", "last_name", "password"); err != nil {
		return nil, err
	}

	password, _ := stringField(fields, "password")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{PasswordHash: hash}
	user.Login, _ = stringField(fields, "login")
	user.FirstName, _ = stringField(fields, "first_name")
	user.LastName, _ = stringField(fields, "last_name")

	if v, ok := boolField(fields, "is_creator"); ok {
		user.IsCreator = v
	}
	if v, ok := boolField(fields, "is_contractor"); ok {
		user.IsContractor = v
	}
	if v, ok := boolField(fields, "is_admin"); ok {
		user.IsAdmin = v
	}

	return user, nil
}

// UpdateFromMap merges mutable fields into the user. The password hash is not
// part of the whitelist and cannot be changed here.
func (u *User) UpdateFromMap(fields map[string]any) {
	if v, ok := stringField(fields, "login"); ok {
		u.Login = v
	}
	if v, ok := stringField(fields, "first_name"); ok {
		u.FirstName = v
	}
	if v, ok := stringField(fields, "last_name"); ok {
		u.LastName = v
	}
	if v, ok := boolField(fields, "is_creator"); ok {
		u.IsCreator = v
	}
	if v, ok := boolField(fields, "is_contractor"); ok {
		u.IsContractor = v
	}
	if v, ok := boolField(fields, "is_admin"); ok {
		u.IsAdmin = v
	}
}

// ToMap serializes the client-visible fields. The password hash is never
// included.
func (u User) ToMap() map[string]any {
	return map[string]any{
		"id":            u.ID,
		"login":         u.Login,
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"is_creator":    u.IsCreator,
		"is_contractor": u.IsContractor,
		"is_admin":      u.IsAdmin,
	}
}

// UserDescriptor exposes the filterable user fields to the query builder.
func UserDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &User{},
		Columns: map[string]string{
			"id":            "id",
			"login":         "login",
			"first_name":    "first_name",
			"last_name":     "last_name",
			"is_creator":    "is_creator",
			"is_contractor": "is_contractor",
			"is_admin":      "is_admin",
		},
	}
}
