package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	ndjwt "github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web/jwt"
)

type JWTMiddlewareBuilder struct {
	ndjwt.Handler
	log         loggerv2.Logger
	publicPaths []string
}

func NewJWTMiddlewareBuilder(handler ndjwt.Handler, log loggerv2.Logger, publicPaths []string) *JWTMiddlewareBuilder {
	return &JWTMiddlewareBuilder{
		Handler:     handler,
		log:         log,
		publicPaths: publicPaths,
	}
}

// CheckLogin rejects requests outside the public path list unless they carry
// a valid, non-revoked token. The parsed claims go into the request context.
func (m *JWTMiddlewareBuilder) CheckLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		for _, p := range m.publicPaths {
			if strings.HasPrefix(path, p) {
				ctx.Next()
				return
			}
		}

		var uc ndjwt.UserClaims
		token, err := jwt.ParseWithClaims(m.ExtractToken(ctx), &uc, func(t *jwt.Token) (any, error) {
			return m.JwtKey(), nil
		})
		if err != nil || token == nil || !token.Valid {
			m.log.ErrorContext(ctx, "CheckLogin failed",
				logger.Error(err),
				logger.Bool("token==nil", token == nil),
			)
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if err = m.CheckSession(ctx, uc.Ssid); err != nil {
			m.log.ErrorContext(ctx, "CheckLogin failed", logger.Error(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set(constants.ContextUserClaimsKey, uc)
		ctx.Next()
	}
}
