package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSignInRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)

	_, err = store.Current()
	require.ErrorIs(t, err, ErrNoSession)

	sess, err := store.SignIn("tok-123", "lifter@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sess.Token)
	assert.NotEmpty(t, sess.ClientID)

	// A fresh store reads the same session back from disk.
	reopened, err := Open(dir)
	require.NoError(t, err)
	got, err := reopened.Current()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got.Token)
	assert.Equal(t, "lifter@example.com", got.Email)
	assert.Equal(t, sess.ClientID, got.ClientID)
}

func TestStoreClientIDSurvivesRelogin(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	first, err := store.SignIn("tok-1", "")
	require.NoError(t, err)
	second, err := store.SignIn("tok-2", "")
	require.NoError(t, err)

	assert.Equal(t, first.ClientID, second.ClientID)
	assert.Equal(t, "tok-2", second.Token)
}

func TestStoreSignOut(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	_, err = store.SignIn("tok", "")
	require.NoError(t, err)
	require.NoError(t, store.SignOut())

	_, err = store.Current()
	require.ErrorIs(t, err, ErrNoSession)

	// Signing out twice is fine.
	require.NoError(t, store.SignOut())

	reopened, err := Open(dir)
	require.NoError(t, err)
	_, err = reopened.Current()
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStoreRejectsEmptyToken(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = store.SignIn("   ", "x@example.com")
	require.Error(t, err)
}
