package seed

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testN = 1 << 4

func TestScryptVault_SealOpen(t *testing.T) {
	v, err := NewScryptVault(testN)
	require.NoError(t, err)

	phrase, err := GeneratePhrase(12)
	require.NoError(t, err)

	handle, err := v.Seal(phrase, []byte("1234"))
	require.NoError(t, err)

	got, err := v.Open(handle, []byte("1234"))
	require.NoError(t, err)
	assert.Equal(t, phrase, got)

	other, err := v.Seal(phrase, []byte("1234"))
	require.NoError(t, err)
	assert.NotEqual(t, handle, other, "every seal uses a fresh salt and nonce")
}

func TestScryptVault_WrongPin(t *testing.T) {
	v, err := NewScryptVault(testN)
	require.NoError(t, err)

	handle, err := v.Seal("some phrase", []byte("1234"))
	require.NoError(t, err)

	_, err = v.Open(handle, []byte("4321"))
	assert.True(t, errors.Is(err, ErrWrongPin))
}

func TestScryptVault_OpensOtherCost(t *testing.T) {
	low, err := NewScryptVault(testN)
	require.NoError(t, err)
	high, err := NewScryptVault(testN << 1)
	require.NoError(t, err)

	handle, err := low.Seal("phrase", []byte("pin"))
	require.NoError(t, err)

	got, err := high.Open(handle, []byte("pin"))
	require.NoError(t, err)
	assert.Equal(t, "phrase", got)
}

func TestScryptVault_InvalidHandle(t *testing.T) {
	v, err := NewScryptVault(testN)
	require.NoError(t, err)

	for _, handle := range []string{
		"%%%",
		base64.StdEncoding.EncodeToString([]byte("{")),
		base64.StdEncoding.EncodeToString([]byte(`{"v":9}`)),
		base64.StdEncoding.EncodeToString([]byte(`{"v":1,"n":16,"r":8,"p":1,"salt":"AA==","nonce":"AA=="}`)),
	} {
		_, err := v.Open(handle, []byte("pin"))
		assert.True(t, errors.Is(err, ErrInvalidHandle), "handle %q: %v", handle, err)
	}
}

func TestNewScryptVault_RejectsCost(t *testing.T) {
	for _, n := range []int{0, 1, 3, 1000} {
		_, err := NewScryptVault(n)
		assert.Error(t, err, "n=%d", n)
	}
}

func TestGeneratePhrase(t *testing.T) {
	for _, words := range []int{12, 15, 18, 21, 24} {
		phrase, err := GeneratePhrase(words)
		require.NoError(t, err)
		assert.Len(t, strings.Fields(phrase), words)

		normalized, err := NormalizePhrase("  " + strings.ToUpper(phrase) + "\n")
		require.NoError(t, err)
		assert.Equal(t, phrase, normalized)
	}

	_, err := GeneratePhrase(13)
	assert.Error(t, err)
}

func TestNormalizePhrase_Invalid(t *testing.T) {
	_, err := NormalizePhrase("abandon abandon abandon")
	assert.True(t, errors.Is(err, ErrInvalidPhrase))
}
