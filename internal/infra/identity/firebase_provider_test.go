package identity

import (
	"context"
	"testing"
	"time"

	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	token    *auth.Token
	verifyFn func(ctx context.Context) error
	created  *auth.UserRecord
	err      error
	link     string
}

func (f *fakeAuthClient) VerifyIDToken(ctx context.Context, _ string) (*auth.Token, error) {
	if f.verifyFn != nil {
		if err := f.verifyFn(ctx); err != nil {
			return nil, err
		}
	}
	if f.err != nil {
		return nil, f.err
	}

	return f.token, nil
}

func (f *fakeAuthClient) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	return f.created, f.err
}

func (f *fakeAuthClient) EmailVerificationLink(_ context.Context, _ string) (string, error) {
	return f.link, f.err
}

func TestFirebaseProvider_VerifyToken(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{
		UID: "uid-1",
		Claims: map[string]any{
			"email":          "buyer@example.com",
			"name":           "Buyer",
			"email_verified": true,
		},
	}}
	provider := newFirebaseProvider(client, 0)

	claims, err := provider.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.SubjectID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "Buyer", claims.Name)
	assert.True(t, claims.EmailVerified)
}

func TestFirebaseProvider_VerifyTokenRejected(t *testing.T) {
	provider := newFirebaseProvider(&fakeAuthClient{err: errors.New("token expired")}, time.Second)

	_, err := provider.VerifyToken(context.Background(), "id-token")
	assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)

	_, err = provider.VerifyToken(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)
}

func TestFirebaseProvider_VerifyTokenHasDeadline(t *testing.T) {
	client := &fakeAuthClient{
		token: &auth.Token{UID: "uid-1"},
		verifyFn: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)

			return nil
		},
	}
	provider := newFirebaseProvider(client, time.Second)

	_, err := provider.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
}

func TestFirebaseProvider_CreateAccount(t *testing.T) {
	client := &fakeAuthClient{created: &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-new"}}}
	provider := newFirebaseProvider(client, 0)

	uid, err := provider.CreateAccount(context.Background(), "new@example.com", "secret123", "New")
	require.NoError(t, err)
	assert.Equal(t, "uid-new", uid)
}

func TestFirebaseProvider_EmailVerificationLink(t *testing.T) {
	provider := newFirebaseProvider(&fakeAuthClient{link: "https://verify.example/abc"}, 0)

	link, err := provider.EmailVerificationLink(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://verify.example/abc", link)
}
