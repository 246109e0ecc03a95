package service

import (
	"errors"

	"gorm.io/gorm" // GORM ORM library

	"finledger/internal/domain" // Domain models
)

// AccountService owns account lifecycle rules: per-user name uniqueness and
// deletion only while no transaction references the account.
type AccountService struct {
	db *gorm.DB
}

// NewAccountService builds a stateless service over the given store handle
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// AccountInput carries the caller-editable account fields
type AccountInput struct {
	Name string `json:"name"`
}

// Create inserts an account owned by userID. The duplicate-name check runs
// in the same transaction as the insert, with the composite unique index as
// backstop, so two concurrent requests cannot both succeed: the loser's
// constraint violation surfaces as the same conflict the check would raise.
func (s *AccountService) Create(userID uint, in AccountInput) (*domain.Account, error) {
	if in.Name == "" {
		return nil, &ValidationError{"Nome é um atributo obrigatório"}
	}
	acc := domain.Account{Name: in.Name, UserID: userID}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkDuplicateName(tx, userID, in.Name, 0); err != nil {
			return err
		}
		return tx.Create(&acc).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &ConflictError{"Já existe uma conta com esse nome"}
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// List returns every account owned by userID
func (s *AccountService) List(userID uint) ([]domain.Account, error) {
	var accs []domain.Account
	if err := s.db.Where("user_id = ?", userID).Find(&accs).Error; err != nil {
		return nil, err
	}
	return accs, nil
}

// GetByID returns the account after the ownership check
func (s *AccountService) GetByID(userID, id uint) (*domain.Account, error) {
	return s.getOwned(s.db, userID, id)
}

// Update renames the account, re-applying the ownership and duplicate-name
// checks inside one transaction.
func (s *AccountService) Update(userID, id uint, in AccountInput) (*domain.Account, error) {
	if in.Name == "" {
		return nil, &ValidationError{"Nome é um atributo obrigatório"}
	}
	var acc *domain.Account
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		acc, err = s.getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		if err := s.checkDuplicateName(tx, userID, in.Name, id); err != nil {
			return err
		}
		acc.Name = in.Name
		return tx.Save(acc).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &ConflictError{"Já existe uma conta com esse nome"}
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Delete removes the account unless any transaction still references it.
// The restriction check and the delete share one transaction snapshot, and
// the restrict foreign key backstops any entry posted in between.
func (s *AccountService) Delete(userID, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		acc, err := s.getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&domain.Transaction{}).Where("acc_id = ?", acc.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &ConflictError{"Essa conta possui transações associadas"}
		}
		return tx.Delete(acc).Error
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ConflictError{"Essa conta possui transações associadas"}
	}
	return err
}

// getOwned loads an account and verifies it belongs to userID
func (s *AccountService) getOwned(tx *gorm.DB, userID, id uint) (*domain.Account, error) {
	var acc domain.Account
	if err := tx.First(&acc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"Conta não encontrada"}
		}
		return nil, err
	}
	if acc.UserID != userID {
		return nil, &ForbiddenError{msgNotOwner}
	}
	return &acc, nil
}

// checkDuplicateName rejects a name already used by another account of the
// same user. exceptID skips the row being renamed.
func (s *AccountService) checkDuplicateName(tx *gorm.DB, userID uint, name string, exceptID uint) error {
	var count int64
	err := tx.Model(&domain.Account{}).
		Where("name = ? AND user_id = ? AND id <> ?", name, userID, exceptID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{"Já existe uma conta com esse nome"}
	}
	return nil
}
