package cryptox

import (
	"crypto/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, chacha20poly1305.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey(t)

	type payload struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}

	in := payload{Access: "T1", Refresh: "R1"}

	sealed, err := Seal(in, key)
	require.NoError(t, err)

	var out payload
	require.NoError(t, Open(sealed, key, &out))
	require.Equal(t, in, out)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	sealed, err := Seal(map[string]string{"a": "b"}, testKey(t))
	require.NoError(t, err)

	var out map[string]string
	require.Error(t, Open(sealed, testKey(t), &out))
}

func TestOpen_TruncatedCiphertext(t *testing.T) {
	var out any
	err := Open([]byte{1, 2, 3}, testKey(t), &out)
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestLoadOrCreateKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.key")

	k1, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Len(t, k1, chacha20poly1305.KeySize)

	k2, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}
