package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password comparison

	"finledger/internal/service" // Ledger services
	"finledger/internal/utils"   // JWT utility functions
)

// SigninRequest carries the login credentials
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// SignupHandler creates a user account. The response never includes the
// password hash.
func SignupHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in service.UserInput
		if err := bindJSON(c, &in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.Create(in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// SigninHandler authenticates by email and password and returns a JWT.
// Wrong email and wrong password are indistinguishable to the caller.
func SigninHandler(users *service.UserService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SigninRequest
		if err := bindJSON(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.FindByEmail(req.Email)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Usuário ou senha inválido"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Usuário ou senha inválido"})
			return
		}
		token, err := utils.GenerateJWT(user.ID, user.Name, user.Email, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
