package jwt

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Handler interface {
	ExtractToken(ctx *gin.Context) string
	SetLoginToken(ctx *gin.Context, userId uint64, role int8) error
	SetJWTToken(ctx *gin.Context, userId uint64, role int8, ssid string) error
	CheckSession(ctx *gin.Context, ssid string) error

	JwtKey() []byte
	GetUserClaims(ctx *gin.Context) (*UserClaims, error)
}

type UserClaims struct {
	jwt.RegisteredClaims
	UserId    uint64
	Role      int8
	Ssid      string
	UserAgent string
}

type RefreshUserClaims struct {
	jwt.RegisteredClaims
	UserId uint64
	Role   int8
	Ssid   string
}
