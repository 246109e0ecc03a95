package service

import (
	"errors"
	"time"

	"gorm.io/gorm" // GORM ORM library

	"finledger/internal/domain" // Domain models
)

// TransactionService owns single-account ledger entries: required-field
// validation, the type/sign convention and ownership resolved through the
// owning account.
type TransactionService struct {
	db *gorm.DB
}

// NewTransactionService builds a stateless service over the given store handle
func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// TransactionInput carries the caller-supplied transaction fields. Pointer
// fields distinguish an absent value from a zero value.
type TransactionInput struct {
	Description string         `json:"description"`
	Date        *time.Time     `json:"date"`
	Amount      *domain.Amount `json:"amount"`
	Type        string         `json:"type"`
	AccID       uint           `json:"acc_id"`
	TransferID  *uint          `json:"-"` // Set only when posting transfer legs
	Status      bool           `json:"-"` // Set only when posting transfer legs
}

// validateTransaction enforces the required fields, one message per field
func validateTransaction(in TransactionInput) error {
	switch {
	case in.Description == "":
		return &ValidationError{"Descrição é um atributo obrigatório"}
	case in.Amount == nil:
		return &ValidationError{"Valor é um atributo obrigatório"}
	case in.Date == nil:
		return &ValidationError{"Data é um atributo obrigatório"}
	case in.AccID == 0:
		return &ValidationError{"Conta é um atributo obrigatório"}
	case in.Type == "":
		return &ValidationError{"Tipo é um atributo obrigatório"}
	case in.Type != domain.TypeInflow && in.Type != domain.TypeOutflow:
		return &ValidationError{"Tipo inválido"}
	}
	return nil
}

// normalizeAmount discards the caller-supplied sign: only the magnitude is
// kept, stored positive for inflows and negative for outflows.
func normalizeAmount(a domain.Amount, typ string) domain.Amount {
	if typ == domain.TypeOutflow {
		return a.Abs().Neg()
	}
	return a.Abs()
}

// Create validates, normalizes and inserts a transaction on an account
// owned by userID. Check and insert share one transaction snapshot.
func (s *TransactionService) Create(userID uint, in TransactionInput) (*domain.Transaction, error) {
	var t *domain.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		t, err = s.create(tx, userID, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// create runs the full create path inside an existing transaction
func (s *TransactionService) create(tx *gorm.DB, userID uint, in TransactionInput) (*domain.Transaction, error) {
	if err := validateTransaction(in); err != nil {
		return nil, err
	}
	if err := s.checkAccountOwner(tx, userID, in.AccID); err != nil {
		return nil, err
	}
	return s.insert(tx, in)
}

// insert validates, normalizes and writes the row. Ownership of the target
// account is the caller's responsibility: transfer legs credit accounts the
// caller does not own.
func (s *TransactionService) insert(tx *gorm.DB, in TransactionInput) (*domain.Transaction, error) {
	if err := validateTransaction(in); err != nil {
		return nil, err
	}
	t := domain.Transaction{
		Description: in.Description,
		Date:        *in.Date,
		Amount:      normalizeAmount(*in.Amount, in.Type),
		Type:        in.Type,
		AccID:       in.AccID,
		TransferID:  in.TransferID,
		Status:      in.Status,
	}
	if err := tx.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns the transactions whose owning account belongs to userID,
// joined through accounts (ownership has a single source of truth).
func (s *TransactionService) List(userID uint) ([]domain.Transaction, error) {
	var ts []domain.Transaction
	err := s.db.
		Joins("JOIN accounts ON accounts.id = transactions.acc_id").
		Where("accounts.user_id = ?", userID).
		Find(&ts).Error
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// GetByID returns the transaction after the transitive ownership check
func (s *TransactionService) GetByID(userID, id uint) (*domain.Transaction, error) {
	return s.getOwned(s.db, userID, id)
}

// Update mutates the allowed fields and re-normalizes the amount sign
// whenever amount or type changed.
func (s *TransactionService) Update(userID, id uint, in TransactionInput) (*domain.Transaction, error) {
	var t *domain.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		t, err = s.getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		if in.Description != "" {
			t.Description = in.Description
		}
		if in.Date != nil {
			t.Date = *in.Date
		}
		if in.AccID != 0 && in.AccID != t.AccID {
			// Moving the entry to another account re-runs the ownership check
			if err := s.checkAccountOwner(tx, userID, in.AccID); err != nil {
				return err
			}
			t.AccID = in.AccID
		}
		if in.Type != "" {
			if in.Type != domain.TypeInflow && in.Type != domain.TypeOutflow {
				return &ValidationError{"Tipo inválido"}
			}
			t.Type = in.Type
		}
		if in.Amount != nil {
			t.Amount = *in.Amount
		}
		t.Amount = normalizeAmount(t.Amount, t.Type)
		return tx.Save(t).Error
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the transaction after the ownership check. Account-level
// restrictions live at the account-delete boundary, not here.
func (s *TransactionService) Delete(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		t, err := s.getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		return tx.Delete(t).Error
	})
}

// getOwned loads a transaction and verifies its account belongs to userID
func (s *TransactionService) getOwned(tx *gorm.DB, userID, id uint) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := tx.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"Transação não encontrada"}
		}
		return nil, err
	}
	if err := s.checkAccountOwner(tx, userID, t.AccID); err != nil {
		return nil, err
	}
	return &t, nil
}

// checkAccountOwner verifies accID exists and belongs to userID
func (s *TransactionService) checkAccountOwner(tx *gorm.DB, userID, accID uint) error {
	var acc domain.Account
	if err := tx.First(&acc, accID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{"Conta não encontrada"}
		}
		return err
	}
	if acc.UserID != userID {
		return &ForbiddenError{msgNotOwner}
	}
	return nil
}
