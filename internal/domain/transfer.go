package domain

import "time"

// Transfer Model. A committed transfer always has exactly two transactions
// tagged with its id: an outflow on the origin account and an inflow on the
// destination, both carrying the transfer's magnitude. The amount here is
// the unsigned magnitude.
type Transfer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Amount      Amount    `gorm:"type:decimal(13,2);not null" json:"amount"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	AccOriID    uint      `gorm:"not null" json:"acc_ori_id"`
	AccDestID   uint      `gorm:"not null" json:"acc_dest_id"`
}
