package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopstream/internal/domain/model"
)

// HS256のJWTを発行する。
// jtiにはIDGeneratorの値を入れるので、同一プロセス内で同じトークンは発行されない。
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	idGen  IDGenerator
}

func NewJWTIssuer(secret string, ttl time.Duration, idGen IDGenerator) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		idGen:  idGen,
	}
}

func (i *JWTIssuer) Issue(user model.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"jti":   i.idGen.NewID(),
		"iat":   now.Unix(),
		"exp":   now.Add(i.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}
