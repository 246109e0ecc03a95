package domain

import "time"

// Transaction types
const (
	TypeInflow  = "I" // Money entering the account
	TypeOutflow = "O" // Money leaving the account
)

// Transaction Model. The stored amount sign always matches the type:
// inflows are non-negative, outflows non-positive. The account foreign key
// restricts account deletion while entries exist.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Amount      Amount    `gorm:"type:decimal(13,2);not null" json:"amount"`
	Type        string    `gorm:"type:char(1);not null" json:"type"`
	AccID       uint      `gorm:"not null" json:"acc_id"`
	Account     Account   `gorm:"foreignKey:AccID;constraint:OnDelete:RESTRICT" json:"-"`
	TransferID  *uint     `json:"transfer_id"` // Originating transfer, if any
	Status      bool      `gorm:"default:false" json:"status"` // Settlement flag, true for transfer legs
}
