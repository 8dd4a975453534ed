package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/repository"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	conn := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(conn))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user := model.User{
		Email:     "  Jordan@Example.com ",
		Password:  "hunter22",
		FirstName: "Jordan",
		LastName:  "Reyes",
	}
	require.NoError(t, svc.Register(&user))
	assert.Equal(t, "jordan@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	got, err := svc.Login("jordan@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.Password, "hash must not leave the service")
}

func TestRegisterNeverGrantsStaff(t *testing.T) {
	svc := newAuthService(t)

	user := model.User{Email: "jordan@example.com", Password: "hunter22", IsStaff: true}
	require.NoError(t, svc.Register(&user))
	assert.False(t, user.IsStaff)

	got, err := svc.Login("jordan@example.com", "hunter22")
	require.NoError(t, err)
	assert.False(t, got.IsStaff)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	require.NoError(t, svc.Register(&model.User{Email: "jordan@example.com", Password: "hunter22"}))
	err := svc.Register(&model.User{Email: "JORDAN@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	require.NoError(t, svc.Register(&model.User{Email: "jordan@example.com", Password: "hunter22"}))

	_, err := svc.Login("jordan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
