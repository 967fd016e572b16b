package ijwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/uy1-mgp/bff/pkg/ginx"
)

type RedisJWTHandler struct {
	cmd           redis.Cmdable
	signingMethod jwt.SigningMethod
	expiration    time.Duration
	jwtKey        []byte
}

func NewRedisJWTHandler(cmd redis.Cmdable, jwtKey string, expiration time.Duration) Handler {
	return &RedisJWTHandler{
		cmd:           cmd,
		signingMethod: jwt.SigningMethodHS256,
		expiration:    expiration,
		jwtKey:        []byte(jwtKey),
	}
}

func (r *RedisJWTHandler) JWTKey() []byte {
	return r.jwtKey
}

// ExtractToken 优先 x-draft-token，其次 Authorization: Bearer xxx
func (r *RedisJWTHandler) ExtractToken(ctx *gin.Context) string {
	if tokenStr := ctx.GetHeader(DraftTokenHeader); tokenStr != "" {
		return tokenStr
	}
	authCode := ctx.GetHeader("Authorization")
	if authCode == "" {
		return ""
	}
	segs := strings.Split(authCode, " ")
	if len(segs) != 2 {
		return ""
	}
	return segs[1]
}

func (r *RedisJWTHandler) SetDraftToken(ctx *gin.Context, draftId string) error {
	dc := DraftClaims{
		DraftId:   draftId,
		Ssid:      uuid.New().String(),
		UserAgent: ctx.GetHeader("User-Agent"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(r.expiration)),
		},
	}
	token := jwt.NewWithClaims(r.signingMethod, dc)
	tokenStr, err := token.SignedString(r.jwtKey)
	if err != nil {
		return err
	}
	ctx.Header(DraftTokenHeader, tokenStr)
	return nil
}

func (r *RedisJWTHandler) CheckSession(ctx *gin.Context, ssid string) (bool, error) {
	val, err := r.cmd.Exists(ctx, r.key(ssid)).Result()
	return val > 0, err
}

func (r *RedisJWTHandler) ClearToken(ctx *gin.Context) error {
	// 要求客户端设置为空
	ctx.Header(DraftTokenHeader, "")
	dc := ctx.MustGet(ginx.ClaimsKey).(DraftClaims)
	// 记录到 token 过期为止即可
	return r.cmd.Set(ctx, r.key(dc.Ssid), "", r.expiration).Err()
}

func (r *RedisJWTHandler) key(ssid string) string {
	return fmt.Sprintf("mgp:draft:ssid:%s", ssid)
}
