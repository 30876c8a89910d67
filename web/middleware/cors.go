package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type CORSMiddlewareBuilder struct {
	allowOrigins     []string
	allowMethods     []string
	allowHeaders     []string
	exposeHeaders    []string
	allowCredentials bool
	maxAge           time.Duration
}

func NewCORSMiddlewareBuilder(allowOrigins, allowMethods, allowHeaders, exposeHeaders []string, allowCredentials bool, maxAge time.Duration) *CORSMiddlewareBuilder {
	return &CORSMiddlewareBuilder{
		allowOrigins:     allowOrigins,
		allowMethods:     allowMethods,
		allowHeaders:     allowHeaders,
		exposeHeaders:    exposeHeaders,
		allowCredentials: allowCredentials,
		maxAge:           maxAge,
	}
}

func (b *CORSMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")
		if origin != "" && b.originAllowed(origin) {
			ctx.Header("Access-Control-Allow-Origin", origin)
			if b.allowCredentials {
				ctx.Header("Access-Control-Allow-Credentials", "true")
			}
			if len(b.exposeHeaders) > 0 {
				ctx.Header("Access-Control-Expose-Headers", strings.Join(b.exposeHeaders, ","))
			}
		}

		if ctx.Request.Method == http.MethodOptions {
			ctx.Header("Access-Control-Allow-Methods", strings.Join(b.allowMethods, ","))
			ctx.Header("Access-Control-Allow-Headers", strings.Join(b.allowHeaders, ","))
			ctx.Header("Access-Control-Max-Age", strconv.Itoa(int(b.maxAge.Seconds())))
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

func (b *CORSMiddlewareBuilder) originAllowed(origin string) bool {
	for _, allowed := range b.allowOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
