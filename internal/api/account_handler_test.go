package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finledger/internal/domain"
)

func TestCreateAccountEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	r := env.router(user.ID)

	w := doRequest(t, r, http.MethodPost, "/v1/accounts", map[string]any{"name": "Acc #1"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Acc #1", decodeBody(t, w)["name"])
}

func TestCreateAccountEndpointWithoutName(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	r := env.router(user.ID)

	// An empty body must still produce the field-specific message
	w := doRequest(t, r, http.MethodPost, "/v1/accounts", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nome é um atributo obrigatório", decodeBody(t, w)["error"])
}

func TestCreateAccountEndpointDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	env.seedAccount(t, user.ID, "Acc duplicada")
	r := env.router(user.ID)

	w := doRequest(t, r, http.MethodPost, "/v1/accounts", map[string]any{"name": "Acc duplicada"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Já existe uma conta com esse nome", decodeBody(t, w)["error"])
}

func TestGetAccountEndpointOfAnotherUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	user2 := env.seedUser(t, "User #2", "user2@email.com")
	other := env.seedAccount(t, user2.ID, "Acc user #2")
	r := env.router(user.ID)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/v1/accounts/%d", other.ID), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Este recurso não pertence ao usuário", decodeBody(t, w)["error"])
}

func TestUpdateAccountEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	acc := env.seedAccount(t, user.ID, "Acc to update")
	r := env.router(user.ID)

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/v1/accounts/%d", acc.ID), map[string]any{"name": "Acc updated"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acc updated", decodeBody(t, w)["name"])
}

func TestDeleteAccountEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	acc := env.seedAccount(t, user.ID, "Acc to delete")
	r := env.router(user.ID)

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/v1/accounts/%d", acc.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteAccountEndpointWithTransactions(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	acc := env.seedAccount(t, user.ID, "Acc with transaction")
	row := domain.Transaction{Description: "not removable", Date: testTime(), Amount: domain.NewAmount(100), Type: domain.TypeInflow, AccID: acc.ID}
	require.NoError(t, env.db.Create(&row).Error)
	r := env.router(user.ID)

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/v1/accounts/%d", acc.ID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Essa conta possui transações associadas", decodeBody(t, w)["error"])
}

func TestListAccountsEndpointScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "User #1", "user1@email.com")
	user2 := env.seedUser(t, "User #2", "user2@email.com")
	env.seedAccount(t, user.ID, "Acc User #1")
	env.seedAccount(t, user2.ID, "Acc User #2")
	r := env.router(user.ID)

	w := doRequest(t, r, http.MethodGet, "/v1/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Acc User #1", list[0]["name"])
}
