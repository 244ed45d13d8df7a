package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims identify the operator behind a UI session.
type Claims struct {
	Username string `json:"sub_name"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func GenerateToken(secret string, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticator checks the single operator account configured for the UI.
type Authenticator struct {
	username     string
	passwordHash string
}

// NewAuthenticator takes a bcrypt hash, or hashes the plain password when no
// hash is given.
func NewAuthenticator(username, passwordHash, password string) (*Authenticator, error) {
	if passwordHash == "" {
		if password == "" {
			return nil, errors.New("a password or password hash is required")
		}
		hashed, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		passwordHash = hashed
	}
	return &Authenticator{username: username, passwordHash: passwordHash}, nil
}

func (a *Authenticator) Verify(username, password string) error {
	passwordErr := CheckPassword(a.passwordHash, password)
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) != 1 || passwordErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
