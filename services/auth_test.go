package services

import (
	"testing"

	util "MediFlow360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidateLoginInput(t *testing.T) {
	err := ValidateLoginInput(map[string]interface{}{"password": "secret"})
	require.Error(t, err)
	assert.Equal(t, util.PLEASE_PROVIDE_EMAIL_OR_PHONE, err.Error())

	err = ValidateLoginInput(map[string]interface{}{"email": "a@b.com"})
	require.Error(t, err)
	assert.Equal(t, util.PASSWORD_NOT_PROVIDED, err.Error())

	err = ValidateLoginInput(map[string]interface{}{"email": "  ", "password": "secret"})
	require.Error(t, err)
	assert.Equal(t, util.EMAIL_NOT_PROVIDED, err.Error())

	assert.NoError(t, ValidateLoginInput(map[string]interface{}{"email": "a@b.com", "password": "secret"}))
	assert.NoError(t, ValidateLoginInput(map[string]interface{}{"phoneNo": "9876543210", "password": "secret"}))
}

func TestBuildLoginFilter(t *testing.T) {
	filter := BuildLoginFilter(map[string]interface{}{"email": "Asha@Example.COM"})
	assert.Equal(t, "asha@example.com", filter["email"])
	assert.NotContains(t, filter, "phoneNo")

	filter = BuildLoginFilter(map[string]interface{}{"phoneNo": "9876543210"})
	assert.Equal(t, "9876543210", filter["phoneNo"])
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}
