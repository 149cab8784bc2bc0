package privacy

import (
	"gamehub-app/internal/domain/users"
	"time"
)

const (
	RequestTypeAccountDeletion = "account_deletion"
	RequestTypeDataDeletion    = "data_deletion"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// DataErasureRequest tracks a GDPR erasure demand from a user until an admin
// resolves it (account deletion or anonymization). The user reference is
// nulled rather than cascaded so the request survives as an audit record
// after the account is gone.
type DataErasureRequest struct {
	ID          uint        `gorm:"primaryKey"`
	UserID      *uint       `gorm:"index"`
	User        *users.User `gorm:"constraint:OnDelete:SET NULL"`
	RequestType string      `gorm:"type:varchar(30);not null"`
	Details     *string     `gorm:"type:text"`
	Status      string      `gorm:"type:varchar(20);not null;default:'pending'"`
	AdminNotes  *string     `gorm:"type:text"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
