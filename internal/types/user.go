package types

import (
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
)

const (
  RoleAdmin       = "admin"
  RoleContributor = "contributor"
)

type User struct {
  gorm.Model
  ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Username      string          `gorm:"uniqueIndex;not null;column:username" json:"username"`
  Email         string          `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Password      string          `gorm:"not null;column:password" json:"-"`
  Role          string          `gorm:"not null;column:role" json:"role"`
  CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
  return "user"
}
