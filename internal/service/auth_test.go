package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/tls-123321/Event-Manager/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestAuthService_Login_StoresTokens(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	api.EXPECT().Login(context.Background(), "alice@example.com", "secret").
		Return(&domain.Tokens{Access: "access-token", Refresh: "refresh-token"}, nil)
	session.EXPECT().SetTokens("access-token", "refresh-token").Return(nil)

	err := svc.Login(context.Background(), "alice@example.com", "secret")

	require.NoError(t, err)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	err := svc.Login(context.Background(), "", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	// No request goes out and nothing is stored on invalid input.
	api.AssertNotCalled(t, "Login")
	session.AssertNotCalled(t, "SetTokens")
}

func TestAuthService_Login_ServerRejects_NothingStored(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	wantErr := errors.New("invalid credentials")
	api.EXPECT().Login(context.Background(), "alice@example.com", "wrong").Return(nil, wantErr)

	err := svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	session.AssertNotCalled(t, "SetTokens")
}

func TestAuthService_Register_Success(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	api.EXPECT().Register(context.Background(), "alice", "alice@example.com", "secret").Return(nil)

	err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")

	require.NoError(t, err)
	// Registration never authenticates by itself.
	session.AssertNotCalled(t, "SetTokens")
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	err := svc.Register(context.Background(), "alice", "", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	api.AssertNotCalled(t, "Register")
}

func TestAuthService_Logout_ClearsSession(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	api.EXPECT().Logout(context.Background()).Return(nil)
	session.EXPECT().Clear().Return(nil)

	err := svc.Logout(context.Background())

	require.NoError(t, err)
}

func TestAuthService_Logout_ServerError_StillClears(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	api.EXPECT().Logout(context.Background()).Return(errors.New("token expired"))
	session.EXPECT().Clear().Return(nil)

	err := svc.Logout(context.Background())

	require.NoError(t, err)
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	api := mocks.NewMockAuthAPI(t)
	session := mocks.NewMockSessionStore(t)
	svc := NewAuthService(api, session, newTestLogger(t))

	session.EXPECT().IsAuthenticated().Return(true).Once()
	assert.True(t, svc.IsAuthenticated())

	session.EXPECT().IsAuthenticated().Return(false).Once()
	assert.False(t, svc.IsAuthenticated())
}
