// Package userrepo persists accounts.
package userrepo

import (
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the database row for one account.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string `gorm:"uniqueIndex"`
	Role      int
	PartnerID *uuid.UUID `gorm:"type:uuid;index"`
	PushToken string
	IsActive  bool
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	var partnerID *uuid.UUID
	if id := u.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return UserDTO{
		ID:        u.ID().Bytes(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Role:      int(u.Role()),
		PartnerID: partnerID,
		PushToken: u.PushToken(),
		IsActive:  u.IsActive(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if pErr != nil {
			return nil, pErr
		}
		partnerID = &pID
	}

	return user.RestoreUser(
		id, dto.Name, dto.Phone, user.Role(dto.Role),
		partnerID, dto.PushToken, dto.IsActive,
	)
}
