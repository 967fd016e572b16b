package web

import "github.com/gin-gonic/gin"

var (
	_ handler = (*MGPHandler)(nil)
	_ handler = (*DraftHandler)(nil)
	_ handler = (*HomeHandler)(nil)
)

type handler interface {
	RegisterRoutes(s *gin.Engine, draftMiddleware gin.HandlerFunc)
}
