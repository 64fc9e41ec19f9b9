package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/nghuy/gameledger/internal/dependencies/mocks"
	"github.com/nghuy/gameledger/internal/model"
	"github.com/nghuy/gameledger/internal/storage/memory"
	"github.com/nghuy/gameledger/internal/testutil"
)

var testConfig = Config{
	Key:      "test-signing-key",
	Issuer:   "gameledger-test",
	Audience: "gameledger-test-clients",
	TokenTTL: DefaultTokenTTL,
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	service, err := New(s.storage, s.clock, testConfig, testutil.NopLogger())
	s.Require().NoError(err)
	s.service = service
	s.ctx = context.Background()
}

func (s *ServiceSuite) saveIdentity(username, secret, role string) {
	err := s.storage.SaveIdentity(s.ctx, &model.Identity{
		Username: username,
		Email:    username + "@example.com",
		RoleName: role,
		Secret:   secret,
	})
	s.Require().NoError(err)
}

// New tests

func (s *ServiceSuite) TestNewRejectsMissingKey() {
	cfg := testConfig
	cfg.Key = ""

	_, err := New(s.storage, s.clock, cfg, testutil.NopLogger())
	s.Error(err)
}

func (s *ServiceSuite) TestNewDefaultsTokenTTL() {
	cfg := testConfig
	cfg.TokenTTL = 0

	service, err := New(s.storage, s.clock, cfg, testutil.NopLogger())
	s.Require().NoError(err)

	s.saveIdentity("alice", "secret", "Admin")
	session, err := service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.Equal(DefaultTokenTTL, session.ExpiresAt.Sub(session.IssuedAt))
}

// VerifyAndIssue tests

func (s *ServiceSuite) TestVerifyAndIssueSucceeds() {
	s.saveIdentity("alice", "secret", "Admin")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.Identity.Username)
	s.Equal(s.clock.Now(), session.IssuedAt)
}

func (s *ServiceSuite) TestVerifyAndIssueExpiryIsExactlyTTL() {
	s.saveIdentity("alice", "secret", "Admin")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	s.Equal(2*time.Hour, session.ExpiresAt.Sub(session.IssuedAt))
}

func (s *ServiceSuite) TestVerifyAndIssueFailsWithBlankCredentials() {
	_, err := s.service.VerifyAndIssue(s.ctx, "", "secret")
	s.ErrorIs(err, ErrMissingCredentials)

	_, err = s.service.VerifyAndIssue(s.ctx, "alice", "")
	s.ErrorIs(err, ErrMissingCredentials)

	_, err = s.service.VerifyAndIssue(s.ctx, "   ", "   ")
	s.ErrorIs(err, ErrMissingCredentials)
}

func (s *ServiceSuite) TestVerifyAndIssueFailsWithUnknownUser() {
	_, err := s.service.VerifyAndIssue(s.ctx, "nobody", "secret")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyAndIssueFailsWithWrongSecret() {
	s.saveIdentity("alice", "secret", "Admin")

	_, err := s.service.VerifyAndIssue(s.ctx, "alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestUnknownUserAndWrongSecretAreIndistinguishable() {
	s.saveIdentity("alice", "secret", "Admin")

	_, errUnknown := s.service.VerifyAndIssue(s.ctx, "nobody", "secret")
	_, errWrong := s.service.VerifyAndIssue(s.ctx, "alice", "wrong")
	s.Equal(errUnknown, errWrong)
}

func (s *ServiceSuite) TestVerifyAndIssueFailsWithEmptyStoredSecret() {
	s.saveIdentity("alice", "", "Admin")

	// An identity with no stored secret can never log in, even when the
	// submitted secret is also empty-ish
	_, err := s.service.VerifyAndIssue(s.ctx, "alice", "anything")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// VerifyToken tests

func (s *ServiceSuite) TestVerifyTokenRoundTrip() {
	s.saveIdentity("alice", "secret", "Admin")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	claims, err := s.service.VerifyToken(session.Token)
	s.Require().NoError(err)
	s.Equal("alice", claims.Username)
	s.Equal("Admin", claims.Role)
	s.Equal("1", claims.Subject)
}

func (s *ServiceSuite) TestVerifyTokenUsesRoleFallback() {
	s.saveIdentity("alice", "secret", "")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	claims, err := s.service.VerifyToken(session.Token)
	s.Require().NoError(err)
	s.Equal(RoleFallback, claims.Role)
}

func (s *ServiceSuite) TestVerifyTokenFailsAfterExpiry() {
	s.saveIdentity("alice", "secret", "Admin")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	s.clock.Advance(2*time.Hour + time.Minute)

	_, err = s.service.VerifyToken(session.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyTokenStillValidJustBeforeExpiry() {
	s.saveIdentity("alice", "secret", "Admin")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	s.clock.Advance(2*time.Hour - time.Minute)

	_, err = s.service.VerifyToken(session.Token)
	s.NoError(err)
}

func (s *ServiceSuite) TestVerifyTokenFailsWithGarbage() {
	_, err := s.service.VerifyToken("not-a-token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyTokenFailsWithWrongKey() {
	s.saveIdentity("alice", "secret", "Admin")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	otherCfg := testConfig
	otherCfg.Key = "a-different-key"
	other, err := New(s.storage, s.clock, otherCfg, testutil.NopLogger())
	s.Require().NoError(err)

	_, err = other.VerifyToken(session.Token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyTokenFailsWithWrongIssuer() {
	s.saveIdentity("alice", "secret", "Admin")

	session, err := s.service.VerifyAndIssue(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	otherCfg := testConfig
	otherCfg.Issuer = "someone-else"
	other, err := New(s.storage, s.clock, otherCfg, testutil.NopLogger())
	s.Require().NoError(err)

	_, err = other.VerifyToken(session.Token)
	s.ErrorIs(err, ErrInvalidToken)
}
