package ioc

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"github.com/swaggo/swag"
	_ "github.com/uy1-mgp/bff/docs"
	"github.com/uy1-mgp/bff/pkg/ginx"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/web"
	"github.com/uy1-mgp/bff/web/ijwt"
	"github.com/uy1-mgp/bff/web/middleware"
)

func InitGinServer(l logger.Logger, jwtHdl ijwt.Handler, mgp *web.MGPHandler, draft *web.DraftHandler,
	home *web.HomeHandler) *ginx.Server {
	engine := newEngine()
	engine.Use(
		(&ginx.MetricsBuilder{
			Namespace:  "uy1",
			Subsystem:  "mgp_bff",
			Name:       "http",
			Help:       "HTTP 接口响应时间",
			InstanceId: instanceId(),
		}).BuildResponseTime(),
	)
	draftMiddleware := middleware.NewDraftMiddlewareBuilder(jwtHdl).Build()
	home.RegisterRoutes(engine, draftMiddleware)
	mgp.RegisterRoutes(engine, draftMiddleware)
	draft.RegisterRoutes(engine, draftMiddleware)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/doc.json", swaggerDoc)
	addr := viper.GetString("http.addr")
	ginx.InitCounter(prometheus.CounterOpts{
		Namespace: "uy1",
		Subsystem: "mgp_bff",
		Name:      "http_biz_code",
		Help:      "按业务错误码统计",
	})
	ginx.SetLogger(l)
	return &ginx.Server{
		Engine: engine,
		Addr:   addr,
	}
}

func newEngine() *gin.Engine {
	engine := gin.Default()
	// handler 直接把 *gin.Context 传给下游，Deadline/Done 要取 ctx.Request 的
	engine.ContextWithFallback = true
	engine.Use(corsHdl(), timeout())
	return engine
}

func swaggerDoc(ctx *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

const requestTimeout = time.Second * 10

func timeout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		_, ok := ctx.Request.Context().Deadline()
		if !ok {
			// 计算服务慢的时候不要一直挂着
			newCtx, cancel := context.WithTimeout(ctx.Request.Context(), requestTimeout)
			defer cancel()
			ctx.Request = ctx.Request.Clone(newCtx)
		}
		ctx.Next()
	}
}

func corsHdl() gin.HandlerFunc {
	origins := viper.GetStringSlice("http.allowOrigins")
	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", ijwt.DraftTokenHeader},
		ExposeHeaders:    []string{ijwt.DraftTokenHeader, "Content-Disposition"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			if strings.Contains(origin, "://localhost") || strings.Contains(origin, "://127.0.0.1") {
				// 前端开发环境
				return true
			}
			for _, o := range origins {
				if o == origin {
					return true
				}
			}
			return false
		},
		MaxAge: 12 * time.Hour,
	})
}

func instanceId() string {
	if id := viper.GetString("http.instanceId"); id != "" {
		return id
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}
