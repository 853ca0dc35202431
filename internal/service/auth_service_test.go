package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/garden-manager/internal/repository/postgres"
	"github.com/dom/garden-manager/internal/service"
	"github.com/dom/garden-manager/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMailer captures reset tokens handed to the mailer.
type recordingMailer struct {
	tokens map[string]string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{tokens: make(map[string]string)}
}

func (m *recordingMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.tokens[email] = token
	return nil
}

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, newRecordingMailer(), cfg)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.RegisterInput
		setup     func()
		wantErr   error
		checkUser bool
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Email:    "a@x.com",
				Password: "secret1",
				Name:     "A",
			},
			checkUser: true,
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:    "taken@x.com",
				Password: "password123",
				Name:     "B",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@x.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean up between tests
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkUser {
				assert.NotNil(t, result.User)
				assert.Equal(t, tt.input.Email, result.User.Email)
				assert.Equal(t, tt.input.Name, result.User.Name)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, newRecordingMailer(), cfg)
	ctx := context.Background()

	// Create a user for login tests
	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@x.com").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Email:    user.Email,
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Email:    user.Email,
				Password: "wrongpassword",
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name: "non-existent email",
			input: service.LoginInput{
				Email:    "nobody@x.com",
				Password: "anypassword",
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.AccessToken)
		})
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	mailer := newRecordingMailer()
	authService := service.NewAuthService(repos.User, mailer, cfg)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("forgot@x.com").
		Build(t, testDB.DB)

	t.Run("known email stores a token and mails it", func(t *testing.T) {
		err := authService.ForgotPassword(ctx, user.Email)
		require.NoError(t, err)

		stored, err := repos.User.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.ResetToken)
		require.NotNil(t, stored.ResetTokenExpiry)
		assert.Len(t, *stored.ResetToken, 64) // 32 bytes hex-encoded
		assert.True(t, stored.ResetTokenExpiry.After(time.Now()))
		assert.Equal(t, *stored.ResetToken, mailer.tokens[user.Email])
	})

	t.Run("unknown email succeeds without side effects", func(t *testing.T) {
		err := authService.ForgotPassword(ctx, "unknown@x.com")
		require.NoError(t, err)
		assert.NotContains(t, mailer.tokens, "unknown@x.com")
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	mailer := newRecordingMailer()
	authService := service.NewAuthService(repos.User, mailer, cfg)
	ctx := context.Background()

	t.Run("valid token resets the password once", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().
			WithEmail("reset@x.com").
			Build(t, testDB.DB)

		require.NoError(t, authService.ForgotPassword(ctx, user.Email))
		token := mailer.tokens[user.Email]
		require.NotEmpty(t, token)

		err := authService.ResetPassword(ctx, token, "brandnewpassword")
		require.NoError(t, err)

		// New password works
		_, err = authService.Login(ctx, service.LoginInput{
			Email:    user.Email,
			Password: "brandnewpassword",
		})
		require.NoError(t, err)

		// Token is single-use
		err = authService.ResetPassword(ctx, token, "anotherpassword")
		assert.ErrorIs(t, err, service.ErrInvalidResetToken)
	})

	t.Run("expired token is rejected even on exact match", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().
			WithEmail("expired@x.com").
			Build(t, testDB.DB)

		require.NoError(t, authService.ForgotPassword(ctx, user.Email))
		token := mailer.tokens[user.Email]

		// Age the token past its expiry
		past := time.Now().Add(-time.Minute)
		stored, err := repos.User.GetByID(ctx, user.ID)
		require.NoError(t, err)
		stored.ResetTokenExpiry = &past
		require.NoError(t, repos.User.Update(ctx, stored))

		err = authService.ResetPassword(ctx, token, "newpassword")
		assert.ErrorIs(t, err, service.ErrInvalidResetToken)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		err := authService.ResetPassword(ctx, "not-a-real-token", "newpassword")
		assert.ErrorIs(t, err, service.ErrInvalidResetToken)
	})
}

func TestAuthService_ValidateUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, newRecordingMailer(), cfg)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	got, err := authService.ValidateUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)

	// Unknown user means unauthenticated, not an error
	got, err = authService.ValidateUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}
