package ginx

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uy1-mgp/bff/pkg/logger"
)

// ClaimsKey 鉴权中间件把 claims 放在这个 key 下
const ClaimsKey = "claims"

var L logger.Logger = logger.NewNopLogger()

var vector *prometheus.CounterVec

func InitCounter(opt prometheus.CounterOpts) {
	vector = prometheus.NewCounterVec(opt, []string{"code"})
	prometheus.MustRegister(vector)
}

func SetLogger(l logger.Logger) {
	L = l
}

func Wrap(fn func(ctx *gin.Context) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := fn(ctx)
		render(ctx, res, err)
	}
}

func WrapReq[Req any](fn func(ctx *gin.Context, req Req) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			L.Warn("绑定参数失败", logger.String("route", ctx.FullPath()), logger.Error(err))
			return
		}
		res, err := fn(ctx, req)
		render(ctx, res, err)
	}
}

func WrapClaims[C any](fn func(ctx *gin.Context, uc C) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uc, ok := claims[C](ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		res, err := fn(ctx, uc)
		render(ctx, res, err)
	}
}

func WrapClaimsAndReq[Req any, C any](fn func(ctx *gin.Context, req Req, uc C) (Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			L.Warn("绑定参数失败", logger.String("route", ctx.FullPath()), logger.Error(err))
			return
		}
		uc, ok := claims[C](ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		res, err := fn(ctx, req, uc)
		render(ctx, res, err)
	}
}

// WrapFile 成功时输出附件，失败时和其他接口一样返回 Result
func WrapFile(fn func(ctx *gin.Context) (File, Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		file, res, err := fn(ctx)
		renderFile(ctx, file, res, err)
	}
}

func WrapFileReq[Req any](fn func(ctx *gin.Context, req Req) (File, Result, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req Req
		if err := ctx.Bind(&req); err != nil {
			L.Warn("绑定参数失败", logger.String("route", ctx.FullPath()), logger.Error(err))
			return
		}
		file, res, err := fn(ctx, req)
		renderFile(ctx, file, res, err)
	}
}

func claims[C any](ctx *gin.Context) (C, bool) {
	val, ok := ctx.Get(ClaimsKey)
	if !ok {
		var zero C
		return zero, false
	}
	uc, ok := val.(C)
	return uc, ok
}

func render(ctx *gin.Context, res Result, err error) {
	if err != nil {
		L.Error("处理业务逻辑出错",
			logger.String("route", ctx.FullPath()),
			logger.Int("code", res.Code),
			logger.Error(err))
	}
	if vector != nil {
		vector.WithLabelValues(strconv.Itoa(res.Code)).Inc()
	}
	ctx.JSON(http.StatusOK, res)
}

func renderFile(ctx *gin.Context, file File, res Result, err error) {
	if err != nil || res.Code != 0 {
		render(ctx, res, err)
		return
	}
	if vector != nil {
		vector.WithLabelValues("0").Inc()
	}
	ctx.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Name}))
	ctx.Data(http.StatusOK, file.ContentType, file.Content)
}
