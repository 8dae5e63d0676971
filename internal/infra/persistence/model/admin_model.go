package model

import "time"

// AdminSingletonID is the primary key of the only admin credential row.
const AdminSingletonID = 1

// AdminCredentialModel mirrors the 'admin_credentials' table, which holds one row.
type AdminCredentialModel struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminCredentialModel) TableName() string {
	return "admin_credentials"
}
