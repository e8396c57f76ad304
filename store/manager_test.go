package store

import (
	"testing"

	"carwash-backend/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerLoginRegistersStore(t *testing.T) {
	gw := newFakeGateway()
	m := NewManager(gw, nil)

	st := m.Login(gw.user.Email, "secret")
	require.NotNil(t, st.User())

	assert.Same(t, st, m.Get(gw.user.ID))
}

func TestManagerLoginFailureRegistersNothing(t *testing.T) {
	gw := newFakeGateway()
	gw.signInErr = gateway.ErrInvalidCredentials
	m := NewManager(gw, nil)

	st := m.Login(gw.user.Email, "wrong")
	assert.Nil(t, st.User())
	assert.Nil(t, m.Get(gw.user.ID))
}

func TestManagerEnsureRebuildsAfterRestart(t *testing.T) {
	gw := newFakeGateway()
	m := NewManager(gw, nil)

	// No login happened in this process; a valid token arrives anyway.
	st, err := m.Ensure(gw.user.ID)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.True(t, st.IsAuthenticated())
	assert.True(t, st.IsInitialized())

	// The rebuilt store is reused afterwards.
	again, err := m.Ensure(gw.user.ID)
	require.NoError(t, err)
	assert.Same(t, st, again)
}

func TestManagerEnsureUnknownUser(t *testing.T) {
	gw := newFakeGateway()
	m := NewManager(gw, nil)

	st, err := m.Ensure(uuid.New())
	assert.ErrorIs(t, err, gateway.ErrNotFound)
	assert.Nil(t, st)
}

func TestManagerLogoutForgetsStore(t *testing.T) {
	gw := newFakeGateway()
	m := NewManager(gw, nil)

	st := m.Login(gw.user.Email, "secret")
	require.NotNil(t, st.User())

	m.Logout(gw.user.ID)

	assert.Nil(t, m.Get(gw.user.ID))
	assert.False(t, st.IsAuthenticated())

	// Idempotent when no store exists.
	m.Logout(gw.user.ID)
}

func TestManagerEach(t *testing.T) {
	gw := newFakeGateway()
	m := NewManager(gw, nil)
	m.Login(gw.user.Email, "secret")

	var count int
	m.Each(func(*Store) { count++ })
	assert.Equal(t, 1, count)
}
