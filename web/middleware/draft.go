package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uy1-mgp/bff/pkg/ginx"
	"github.com/uy1-mgp/bff/web/ijwt"
)

type DraftMiddlewareBuilder struct {
	ijwt.Handler
}

func NewDraftMiddlewareBuilder(hdl ijwt.Handler) *DraftMiddlewareBuilder {
	return &DraftMiddlewareBuilder{Handler: hdl}
}

// Build 校验草稿 token，通过后把 ijwt.DraftClaims 放进 ctx
func (m *DraftMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr := m.ExtractToken(ctx)
		// 没token
		if tokenStr == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		dc := &ijwt.DraftClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, dc, func(*jwt.Token) (interface{}, error) {
			return m.JWTKey(), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || token == nil || !token.Valid {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if dc.DraftId == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		revoked, err := m.CheckSession(ctx, dc.Ssid)
		if err != nil || revoked {
			// redis 出错也拒绝，草稿本身也在 redis 里
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Set(ginx.ClaimsKey, *dc)
	}
}
