package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcrypt_HashAndVerify(t *testing.T) {
	b := NewBcrypt()

	h, err := b.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", h)

	require.True(t, b.Verify("secret1", h))
	require.False(t, b.Verify("wrong", h))
}

func TestBcrypt_SaltedHashesDiffer(t *testing.T) {
	b := NewBcrypt()

	h1, err := b.Hash("secret1")
	require.NoError(t, err)
	h2, err := b.Hash("secret1")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, b.Verify("secret1", h1))
	require.True(t, b.Verify("secret1", h2))
}

func TestBcrypt_EmptyPassword(t *testing.T) {
	b := NewBcrypt()

	_, err := b.Hash("")
	require.ErrorIs(t, err, ErrEmptyPassword)
}

func TestBcrypt_MalformedHash(t *testing.T) {
	b := NewBcrypt()

	require.False(t, b.Verify("secret1", "not-a-bcrypt-hash"))
	require.False(t, b.Verify("secret1", ""))
}
