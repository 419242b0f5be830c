package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := NewEncryptor("test-secret")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("sk-very-secret-key")
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "sk-very-secret-key")

	plaintext, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "sk-very-secret-key", plaintext)
}

func TestEncrypt_UniqueNonces(t *testing.T) {
	enc, err := NewEncryptor("test-secret")
	require.NoError(t, err)

	a, err := enc.Encrypt("same input")
	require.NoError(t, err)
	b, err := enc.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecrypt_WrongKey(t *testing.T) {
	enc1, err := NewEncryptor("key-one")
	require.NoError(t, err)
	enc2, err := NewEncryptor("key-two")
	require.NoError(t, err)

	ciphertext, err := enc1.Encrypt("secret")
	require.NoError(t, err)

	_, err = enc2.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestDecrypt_MalformedInput(t *testing.T) {
	enc, err := NewEncryptor("test-secret")
	require.NoError(t, err)

	_, err = enc.Decrypt("not-base64!!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = enc.Decrypt("c2hvcnQ=")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestNewEncryptor_EmptySecret(t *testing.T) {
	_, err := NewEncryptor("")
	assert.Error(t, err)
}
