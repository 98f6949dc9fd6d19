package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	Email string `json:"email"`
	Local bool   `json:"local,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens handed out at sign-in.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for sess.UserID and returns it with the completed session.
func (s *TokenService) Issue(sess Session) (string, Session, error) {
	now := s.now()
	sess.Authenticated = true
	sess.TokenID = uuid.NewString()
	sess.ExpiresAt = now.Add(s.ttl)

	claims := sessionClaims{
		Email: sess.Email,
		Local: sess.Local,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.TokenID,
			Subject:   sess.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", Session{}, err
	}
	return token, sess, nil
}

// Parse verifies tokenStr and returns its session.
func (s *TokenService) Parse(tokenStr string) (Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return Session{}, errors.Join(ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return Session{}, ErrInvalidToken
	}

	sess := Session{
		UserID:        claims.Subject,
		Email:         claims.Email,
		Local:         claims.Local,
		Authenticated: true,
		TokenID:       claims.ID,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
