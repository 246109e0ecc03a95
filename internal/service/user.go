package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library

	"finledger/internal/domain" // Domain models
)

// UserService owns user signup rules: required fields, unique email and
// password hashing.
type UserService struct {
	db *gorm.DB
}

// NewUserService builds a stateless service over the given store handle
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserInput carries the caller-supplied signup fields
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create hashes the password and inserts the user. The duplicate-email
// check runs in the same transaction as the insert, with the unique index
// as backstop against a concurrent signup for the same email.
func (s *UserService) Create(in UserInput) (*domain.User, error) {
	switch {
	case in.Name == "":
		return nil, &ValidationError{"Nome é um atributo obrigatório"}
	case in.Email == "":
		return nil, &ValidationError{"Email é um atributo obrigatório"}
	case in.Password == "":
		return nil, &ValidationError{"Senha é um atributo obrigatório"}
	}
	// Hash before opening the transaction: bcrypt is slow
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{Name: in.Name, Email: in.Email, Password: string(hash)}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &ConflictError{"Já existe um usuário com esse email"}
		}
		return tx.Create(&user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &ConflictError{"Já existe um usuário com esse email"}
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user. Password hashes never leave the domain model.
func (s *UserService) List() ([]domain.User, error) {
	var users []domain.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail resolves a user for signin
func (s *UserService) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{"Usuário não encontrado"}
		}
		return nil, err
	}
	return &user, nil
}
