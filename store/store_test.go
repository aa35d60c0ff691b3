package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Sessions {
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	return NewSessions(db)
}

func TestSessionLifecycle(t *testing.T) {
	require := require.New(t)
	sessions := openTest(t)

	// logged out
	require.Empty(sessions.Token())
	current, err := sessions.Current()
	require.NoError(err)
	require.Nil(current)

	require.NoError(sessions.Set("roadtrip", 7))
	require.Equal("roadtrip", sessions.Token())
	current, err = sessions.Current()
	require.NoError(err)
	require.Equal(7, current.UserID)
	require.NotEmpty(current.DeviceID)

	// re-login keeps the device id
	deviceID := current.DeviceID
	require.NoError(sessions.Set("roadtrip-2", 7))
	current, err = sessions.Current()
	require.NoError(err)
	require.Equal("roadtrip-2", current.Token)
	require.Equal(deviceID, current.DeviceID)
}

func TestSessionClearIsIdempotent(t *testing.T) {
	require := require.New(t)
	sessions := openTest(t)

	require.NoError(sessions.Set("roadtrip", 7))
	require.NoError(sessions.Clear())
	require.NoError(sessions.Clear())
	require.Empty(sessions.Token())
}

func TestSnapshots(t *testing.T) {
	require := require.New(t)
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(err)
	snaps := NewSnapshots(db)

	missing, err := snaps.Get("type%5B0%5D=new_expense")
	require.NoError(err)
	require.Nil(missing)

	require.NoError(snaps.Put("type%5B0%5D=new_expense", []byte(`[]`)))
	require.NoError(snaps.Put("type%5B0%5D=new_expense", []byte(`[{"id":1}]`)))

	snap, err := snaps.Get("type%5B0%5D=new_expense")
	require.NoError(err)
	require.Equal([]byte(`[{"id":1}]`), snap.Body)
}

func TestAvatars(t *testing.T) {
	require := require.New(t)
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(err)
	avatars := NewAvatars(db)

	miss, err := avatars.Lookup("deadbeef")
	require.NoError(err)
	require.Nil(miss)

	require.NoError(avatars.Put("deadbeef", "https://gravatar.example/a", "/tmp/a.png"))
	hit, err := avatars.Lookup("deadbeef")
	require.NoError(err)
	require.Equal("/tmp/a.png", hit.Path)
}
