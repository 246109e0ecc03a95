package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finledger/internal/domain"
	"finledger/internal/service"
)

// ---- test environment ----

// testEnv wires real services over an isolated in-memory database, so the
// handlers are exercised against real transactional behavior.
type testEnv struct {
	db           *gorm.DB
	users        *service.UserService
	accounts     *service.AccountService
	transactions *service.TransactionService
	transfers    *service.TransferService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // An in-memory SQLite database exists per connection
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Account{}, &domain.Transaction{}, &domain.Transfer{}))
	transactions := service.NewTransactionService(db)
	return &testEnv{
		db:           db,
		users:        service.NewUserService(db),
		accounts:     service.NewAccountService(db),
		transactions: transactions,
		transfers:    service.NewTransferService(db, transactions),
	}
}

// fakeAuth injects the user id the way the JWT middleware would
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// router mounts every ledger route behind a fake identity, caching disabled
func (e *testEnv) router(userID uint) *gin.Engine {
	return e.routerWithCache(userID, nil)
}

// routerWithCache mounts the same routes over a Redis client, for tests that
// observe cache behavior
func (e *testEnv) routerWithCache(userID uint, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1", fakeAuth(userID))

	v1.GET("/users", ListUsersHandler(e.users))
	v1.POST("/users", CreateUserHandler(e.users))

	v1.POST("/accounts", CreateAccountHandler(e.accounts, rdb))
	v1.GET("/accounts", ListAccountsHandler(e.accounts, rdb))
	v1.GET("/accounts/:id", GetAccountHandler(e.accounts))
	v1.PUT("/accounts/:id", UpdateAccountHandler(e.accounts, rdb))
	v1.DELETE("/accounts/:id", DeleteAccountHandler(e.accounts, rdb))

	v1.POST("/transactions", CreateTransactionHandler(e.transactions, rdb))
	v1.GET("/transactions", ListTransactionsHandler(e.transactions, rdb))
	v1.GET("/transactions/:id", GetTransactionHandler(e.transactions))
	v1.PUT("/transactions/:id", UpdateTransactionHandler(e.transactions, rdb))
	v1.DELETE("/transactions/:id", DeleteTransactionHandler(e.transactions, rdb))

	v1.POST("/transfers", CreateTransferHandler(e.transfers, rdb))
	v1.GET("/transfers", ListTransfersHandler(e.transfers))
	v1.GET("/transfers/:id", GetTransferHandler(e.transfers))
	v1.PUT("/transfers/:id", UpdateTransferHandler(e.transfers, rdb))
	v1.DELETE("/transfers/:id", DeleteTransferHandler(e.transfers, rdb))

	return r
}

// ---- fixtures ----

func (e *testEnv) seedUser(t *testing.T, name, email string) *domain.User {
	t.Helper()
	user := domain.User{Name: name, Email: email, Password: "irrelevant-hash"}
	require.NoError(t, e.db.Create(&user).Error)
	return &user
}

func (e *testEnv) seedAccount(t *testing.T, userID uint, name string) *domain.Account {
	t.Helper()
	acc := domain.Account{Name: name, UserID: userID}
	require.NoError(t, e.db.Create(&acc).Error)
	return &acc
}

// ---- request helpers ----

func doRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func testTime() time.Time {
	return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
}

func testDate() string {
	return testTime().Format(time.RFC3339)
}
