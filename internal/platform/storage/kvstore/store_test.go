package kvstore_test

import (
	"errors"
	"testing"

	"github.com/acmebank/acmebank/internal/apperrors"
	"github.com/acmebank/acmebank/internal/platform/storage/kvstore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileYieldsEmptyStore(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := kvstore.Open(fs, "data/bank.json")
	require.NoError(t, err)

	var out []string
	found, err := store.Get("users", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetGetRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := kvstore.Open(fs, "bank.json")
	require.NoError(t, err)

	type record struct {
		Name    string `json:"name"`
		Balance int64  `json:"balance"`
	}

	err = store.Update(func(tx *kvstore.Tx) error {
		return tx.Set("users", []record{{Name: "Ada", Balance: 100}})
	})
	require.NoError(t, err)

	var out []record
	found, err := store.Get("users", &out)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, out, 1)
	assert.Equal(t, record{Name: "Ada", Balance: 100}, out[0])
}

func TestStateSurvivesReopen(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := kvstore.Open(fs, "bank.json")
	require.NoError(t, err)

	require.NoError(t, store.Update(func(tx *kvstore.Tx) error {
		return tx.Set("currentUser", map[string]string{"accountID": "abc"})
	}))

	reopened, err := kvstore.Open(fs, "bank.json")
	require.NoError(t, err)

	var out map[string]string
	found, err := reopened.Get("currentUser", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", out["accountID"])
}

func TestUpdateErrorDiscardsAllStagedWrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := kvstore.Open(fs, "bank.json")
	require.NoError(t, err)

	require.NoError(t, store.Update(func(tx *kvstore.Tx) error {
		return tx.Set("users", []string{"first"})
	}))

	boom := errors.New("boom")
	err = store.Update(func(tx *kvstore.Tx) error {
		if err := tx.Set("users", []string{"second"}); err != nil {
			return err
		}
		if err := tx.Set("transactions", []string{"t1"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var users []string
	_, err = store.Get("users", &users)
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, users)

	var txns []string
	found, err := store.Get("transactions", &txns)
	require.NoError(t, err)
	assert.False(t, found, "second staged write must not leak")
}

func TestDeleteRemovesKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := kvstore.Open(fs, "bank.json")
	require.NoError(t, err)

	require.NoError(t, store.Update(func(tx *kvstore.Tx) error {
		return tx.Set("resetUser", map[string]string{"ticketID": "t-1"})
	}))
	require.NoError(t, store.Update(func(tx *kvstore.Tx) error {
		tx.Delete("resetUser")
		return nil
	}))

	var out map[string]string
	found, err := store.Get("resetUser", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpenCorruptFileIsStorageFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bank.json", []byte("{not json"), 0o644))

	_, err := kvstore.Open(fs, "bank.json")
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
}
