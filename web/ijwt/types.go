package ijwt

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const DraftTokenHeader = "x-draft-token"

//go:generate mockgen -source=./types.go -package=ijwtmocks -destination=./mocks/ijwt.mock.go Handler
type Handler interface {
	ExtractToken(ctx *gin.Context) string
	SetDraftToken(ctx *gin.Context, draftId string) error
	// CheckSession 返回 true 表示 token 已经作废
	CheckSession(ctx *gin.Context, ssid string) (bool, error)
	ClearToken(ctx *gin.Context) error
	JWTKey() []byte
}

// DraftClaims 草稿 token，持有者即草稿的所有者
type DraftClaims struct {
	jwt.RegisteredClaims
	DraftId   string
	Ssid      string
	UserAgent string
}
