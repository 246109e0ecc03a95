package domain

// Account Model. The composite index keeps names unique per owning user,
// not globally.
type Account struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null;uniqueIndex:idx_account_name_user" json:"name"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_account_name_user" json:"user_id"`
}
