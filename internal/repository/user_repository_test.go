package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ADH36/SENC-ESPORTS-sub000/internal/apperrors"
	"github.com/ADH36/SENC-ESPORTS-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserTestData(t *testing.T, db *sql.DB) {
	_, err := db.Exec(`TRUNCATE wallet_transactions, wallet_requests, wallets, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO users (login, password_hash, role)
		VALUES
		('user1', 'hash1', 'user'),
		('admin1', 'hash2', 'admin')
	`)
	require.NoError(t, err)
}

func TestUserRepo_CreateUser(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	tests := []struct {
		name      string
		user      *models.User
		wantErr   bool
		setupFunc func()
	}{
		{
			name: "create new user",
			user: &models.User{
				Login:    "newuser",
				Password: "newhash",
			},
			wantErr: false,
			setupFunc: func() {
				setupUserTestData(t, testDB)
			},
		},
		{
			name: "create user with existing login",
			user: &models.User{
				Login:    "user1",
				Password: "differenthash",
			},
			wantErr: true,
			setupFunc: func() {
				setupUserTestData(t, testDB)
			},
		},
		{
			name: "create user with explicit admin role",
			user: &models.User{
				Login:    "admin2",
				Password: "hash3",
				Role:     models.RoleAdmin,
			},
			wantErr: false,
			setupFunc: func() {
				setupUserTestData(t, testDB)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupFunc()

			err := r.CreateUser(ctx, tt.user)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
				return
			}
			assert.NoError(t, err)

			got, err := r.GetUserByLogin(ctx, tt.user.Login)
			require.NoError(t, err)
			if tt.user.Role == "" {
				assert.Equal(t, models.RoleUser, got.Role)
			} else {
				assert.Equal(t, tt.user.Role, got.Role)
			}
		})
	}
}

func TestUserRepo_GetUserByLogin(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	tests := []struct {
		name     string
		login    string
		wantRole string
		wantErr  bool
	}{
		{name: "existing user", login: "user1", wantRole: models.RoleUser},
		{name: "existing admin", login: "admin1", wantRole: models.RoleAdmin},
		{name: "non-existing user", login: "nonexistent", wantErr: true},
		{name: "empty login", login: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupUserTestData(t, testDB)

			user, err := r.GetUserByLogin(ctx, tt.login)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, user)
			assert.Equal(t, tt.login, user.Login)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.NotEmpty(t, user.Password)
		})
	}
}

func TestUserRepo_GetUserByID(t *testing.T) {
	r := NewUserRepository(testDB)
	ctx := context.Background()

	setupUserTestData(t, testDB)

	user, err := r.GetUserByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "user1", user.Login)

	_, err = r.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
