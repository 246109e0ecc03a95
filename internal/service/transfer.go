package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm" // GORM ORM library

	"finledger/internal/domain" // Domain models
)

// TransferService orchestrates transfers between two accounts of the same
// user. Posting writes the transfer row plus its two transaction legs in a
// single store transaction: either all three rows commit or none do.
type TransferService struct {
	db           *gorm.DB
	transactions *TransactionService
}

// NewTransferService builds a stateless service over the given store handle
func NewTransferService(db *gorm.DB, transactions *TransactionService) *TransferService {
	return &TransferService{db: db, transactions: transactions}
}

// TransferInput carries the caller-supplied transfer fields. Pointer fields
// distinguish an absent value from a zero value.
type TransferInput struct {
	Description string         `json:"description"`
	Date        *time.Time     `json:"date"`
	Amount      *domain.Amount `json:"amount"`
	AccOriID    uint           `json:"acc_ori_id"`
	AccDestID   uint           `json:"acc_dest_id"`
}

// validateTransfer enforces the required fields, one message per field
func validateTransfer(in TransferInput) error {
	switch {
	case in.Description == "":
		return &ValidationError{"Descrição é um atributo obrigatório"}
	case in.Amount == nil:
		return &ValidationError{"Valor é um atributo obrigatório"}
	case in.Date == nil:
		return &ValidationError{"Data é um atributo obrigatório"}
	case in.AccOriID == 0:
		return &ValidationError{"Conta de origem é obrigatória"}
	case in.AccDestID == 0:
		return &ValidationError{"Conta de destino é obrigatória"}
	case in.AccOriID == in.AccDestID:
		return &ValidationError{"Conta de origem deve ser diferente da conta de destino"}
	}
	return nil
}

// Create validates the input and posts the transfer atomically: transfer
// row, outbound leg and inbound leg commit together or not at all.
func (s *TransferService) Create(userID uint, in TransferInput) (*domain.Transfer, error) {
	if err := validateTransfer(in); err != nil {
		return nil, err
	}
	tr := domain.Transfer{
		Description: in.Description,
		Date:        *in.Date,
		Amount:      in.Amount.Abs(),
		UserID:      userID,
		AccOriID:    in.AccOriID,
		AccDestID:   in.AccDestID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkOrigin(tx, userID, in.AccOriID); err != nil {
			return err
		}
		if err := tx.Create(&tr).Error; err != nil {
			return err
		}
		return s.postLegs(tx, &tr)
	})
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// List returns every transfer owned by userID
func (s *TransferService) List(userID uint) ([]domain.Transfer, error) {
	var trs []domain.Transfer
	if err := s.db.Where("user_id = ?", userID).Find(&trs).Error; err != nil {
		return nil, err
	}
	return trs, nil
}

// GetByID returns the transfer after the ownership check
func (s *TransferService) GetByID(userID, id uint) (*domain.Transfer, error) {
	return s.getOwned(s.db, userID, id)
}

// Update re-validates the merged fields and atomically replaces both legs:
// the old transactions are deleted and two fresh ones posted with the
// updated amount, descriptions and accounts, keeping the same transfer id.
func (s *TransferService) Update(userID, id uint, in TransferInput) (*domain.Transfer, error) {
	if err := validateTransfer(in); err != nil {
		return nil, err
	}
	var tr *domain.Transfer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		tr, err = s.getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		if err := s.checkOrigin(tx, userID, in.AccOriID); err != nil {
			return err
		}
		tr.Description = in.Description
		tr.Date = *in.Date
		tr.Amount = in.Amount.Abs()
		tr.AccOriID = in.AccOriID
		tr.AccDestID = in.AccDestID
		if err := tx.Save(tr).Error; err != nil {
			return err
		}
		if err := s.deleteLegs(tx, tr.ID); err != nil {
			return err
		}
		return s.postLegs(tx, tr)
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// Delete removes the transfer and cascades both legs in one transaction, so
// no transaction row can survive its transfer. The removed transfer is
// returned so callers still know which accounts it touched.
func (s *TransferService) Delete(userID, id uint) (*domain.Transfer, error) {
	var tr *domain.Transfer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		tr, err = s.getOwned(tx, userID, id)
		if err != nil {
			return err
		}
		if err := s.deleteLegs(tx, tr.ID); err != nil {
			return err
		}
		return tx.Delete(tr).Error
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// AccountOwner resolves the owner of an account. A transfer may credit an
// account held by another user, and that user's caches are affected too.
func (s *TransferService) AccountOwner(accID uint) (uint, error) {
	var acc domain.Account
	if err := s.db.First(&acc, accID).Error; err != nil {
		return 0, err
	}
	return acc.UserID, nil
}

// postLegs writes the outbound and inbound legs for tr. Both carry the
// transfer id and are flagged settled. The destination account is
// deliberately not checked against the caller, so a transfer can credit an
// account held by another user.
func (s *TransferService) postLegs(tx *gorm.DB, tr *domain.Transfer) error {
	magnitude := tr.Amount.Abs()
	date := tr.Date
	legs := []TransactionInput{
		{
			Description: fmt.Sprintf("Transfer to acc #%d", tr.AccDestID),
			Date:        &date,
			Amount:      &magnitude,
			Type:        domain.TypeOutflow,
			AccID:       tr.AccOriID,
			TransferID:  &tr.ID,
			Status:      true,
		},
		{
			Description: fmt.Sprintf("Transfer from acc #%d", tr.AccOriID),
			Date:        &date,
			Amount:      &magnitude,
			Type:        domain.TypeInflow,
			AccID:       tr.AccDestID,
			TransferID:  &tr.ID,
			Status:      true,
		},
	}
	for i := range legs {
		if _, err := s.transactions.insert(tx, legs[i]); err != nil {
			return err
		}
	}
	return nil
}

// deleteLegs removes every transaction tagged with the transfer id
func (s *TransferService) deleteLegs(tx *gorm.DB, transferID uint) error {
	return tx.Where("transfer_id = ?", transferID).Delete(&domain.Transaction{}).Error
}

// checkOrigin verifies the origin account exists and belongs to the caller
func (s *TransferService) checkOrigin(tx *gorm.DB, userID, accID uint) error {
	var acc domain.Account
	err := tx.First(&acc, accID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err != nil || acc.UserID != userID {
		return &ForbiddenError{fmt.Sprintf("Conta de origem #%d não pertence ao usuário", accID)}
	}
	return nil
}

// getOwned loads a transfer and verifies it belongs to userID
func (s *TransferService) getOwned(tx *gorm.DB, userID, id uint) (*domain.Transfer, error) {
	var tr domain.Transfer
	if err := tx.First(&tr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"Transferência não encontrada"}
		}
		return nil, err
	}
	if tr.UserID != userID {
		return nil, &ForbiddenError{msgNotOwner}
	}
	return &tr, nil
}
