package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/ecommerce-api/schemas"
)

const validPassword = "Str0ng#Pass"

func accountBody(username string, customerID uint) map[string]interface{} {
	return map[string]interface{}{"username": username, "password": validPassword, "customer_id": customerID}
}

func TestCreateAndGetAccount(t *testing.T) {
	r := setupRouter(t)
	customerID := createID(t, r, "/customers", customerBody("acct@example.com"))

	id := createID(t, r, "/customeraccounts", accountBody("janedoe01", customerID))

	code, resp := doRequest(t, r, http.MethodGet, path("/customeraccounts/%d", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(resp.Data), "password")

	var got schemas.CustomerAccountView
	decode(t, resp.Data, &got)
	assert.Equal(t, "janedoe01", got.Username)
	assert.Equal(t, customerID, got.CustomerID)
	require.NotNil(t, got.Customer)
	assert.Equal(t, "acct@example.com", got.Customer.Email)

	code, resp = doRequest(t, r, http.MethodGet, "/customeraccounts", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(resp.Data), validPassword)
}

func TestCreateAccount_PasswordRules(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", validPassword, true},
		{"too short", "Sh0#t", false},
		{"no uppercase", "str0ng#pass", false},
		{"no lowercase", "STR0NG#PASS", false},
		{"no digit", "Strong#Pass", false},
		{"no special", "Str0ngPass1", false},
		{"lowercase only", "abcdefgh", false},
		{"minimal valid", "Abcdef1!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t)
			customerID := createID(t, r, "/customers", customerBody("pw@example.com"))

			body := map[string]interface{}{"username": "janedoe01", "password": tt.password, "customer_id": customerID}
			code, resp := doRequest(t, r, http.MethodPost, "/customeraccounts", body)
			if tt.ok {
				assert.Equal(t, http.StatusCreated, code)
				return
			}
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, resp.Errors, "password")
		})
	}
}

func TestCreateAccount_ShortUsername(t *testing.T) {
	r := setupRouter(t)
	customerID := createID(t, r, "/customers", customerBody("short@example.com"))

	code, resp := doRequest(t, r, http.MethodPost, "/customeraccounts", accountBody("jane", customerID))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Errors, "username")
}

func TestCreateAccount_UnknownCustomer(t *testing.T) {
	r := setupRouter(t)

	code, resp := doRequest(t, r, http.MethodPost, "/customeraccounts", accountBody("orphan001", 42))
	assert.NotEqual(t, http.StatusCreated, code)
	assert.False(t, resp.Status)
}

func TestCreateAccount_DuplicateUsername(t *testing.T) {
	r := setupRouter(t)
	first := createID(t, r, "/customers", customerBody("one@example.com"))
	second := createID(t, r, "/customers", customerBody("two@example.com"))
	createID(t, r, "/customeraccounts", accountBody("sharedname", first))

	code, _ := doRequest(t, r, http.MethodPost, "/customeraccounts", accountBody("sharedname", second))
	assert.Equal(t, http.StatusConflict, code)
}

func TestUpdateAndDeleteAccount(t *testing.T) {
	r := setupRouter(t)
	customerID := createID(t, r, "/customers", customerBody("upd@example.com"))
	id := createID(t, r, "/customeraccounts", accountBody("janedoe01", customerID))

	code, resp := doRequest(t, r, http.MethodPut, path("/customeraccounts/%d", id), accountBody("janedoe02", customerID))
	require.Equal(t, http.StatusOK, code, resp.Message)
	assert.Equal(t, "Customer account updated successfully", resp.Message)

	_, resp = doRequest(t, r, http.MethodGet, path("/customeraccounts/%d", id), nil)
	var got schemas.CustomerAccountView
	decode(t, resp.Data, &got)
	assert.Equal(t, "janedoe02", got.Username)

	code, _ = doRequest(t, r, http.MethodDelete, path("/customeraccounts/%d", id), nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, r, http.MethodDelete, path("/customeraccounts/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doRequest(t, r, http.MethodGet, path("/customers/%d", customerID), nil)
	assert.Equal(t, http.StatusOK, code)
}
