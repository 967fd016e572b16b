package web

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/errs"
	"github.com/uy1-mgp/bff/pkg/ginx"
	"github.com/uy1-mgp/bff/service"
	"github.com/uy1-mgp/bff/web/ijwt"
)

// DraftHandler 服务端保存的计算表单，前端每次修改都发一个 action
type DraftHandler struct {
	ijwt.Handler
	svc service.DraftService
}

func NewDraftHandler(svc service.DraftService, jwtHdl ijwt.Handler) *DraftHandler {
	return &DraftHandler{
		Handler: jwtHdl,
		svc:     svc,
	}
}

func (h *DraftHandler) RegisterRoutes(s *gin.Engine, draftMiddleware gin.HandlerFunc) {
	dg := s.Group("/api/mgp/brouillons")
	dg.POST("", ginx.Wrap(h.Create))
	dg.GET("/courant", draftMiddleware, ginx.WrapClaims(h.Current))
	dg.POST("/courant/actions", draftMiddleware, ginx.WrapClaimsAndReq(h.Dispatch))
	dg.POST("/courant/calculer", draftMiddleware, ginx.WrapClaims(h.Submit))
	dg.DELETE("/courant", draftMiddleware, ginx.WrapClaims(h.Discard))
}

// Create 新建草稿
// @Summary 新建草稿
// @Description 返回一个只有一门空 UE 的草稿，token 放在 x-draft-token 响应头
// @Tags 草稿
// @Produce json
// @Success 200 {object} ginx.Result{data=BrouillonVo} "Success"
// @Router /api/mgp/brouillons [post]
func (h *DraftHandler) Create(ctx *gin.Context) (ginx.Result, error) {
	d, err := h.svc.Create(ctx)
	if err != nil {
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
	if err = h.SetDraftToken(ctx, d.Id); err != nil {
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toBrouillonVo(d),
	}, nil
}

// Current 当前草稿
// @Summary 当前草稿
// @Tags 草稿
// @Produce json
// @Param x-draft-token header string true "草稿 token"
// @Success 200 {object} ginx.Result{data=BrouillonVo} "Success"
// @Router /api/mgp/brouillons/courant [get]
func (h *DraftHandler) Current(ctx *gin.Context, dc ijwt.DraftClaims) (ginx.Result, error) {
	d, err := h.svc.Get(ctx, dc.DraftId)
	return draftResult(d, err)
}

// Dispatch 修改草稿
// @Summary 修改草稿
// @Description 依次应用 actions，任意一个不合法则整体不生效
// @Tags 草稿
// @Accept json
// @Produce json
// @Param x-draft-token header string true "草稿 token"
// @Param body body DispatchReq true "操作列表"
// @Success 200 {object} ginx.Result{data=BrouillonVo} "Success"
// @Router /api/mgp/brouillons/courant/actions [post]
func (h *DraftHandler) Dispatch(ctx *gin.Context, req DispatchReq, dc ijwt.DraftClaims) (ginx.Result, error) {
	if len(req.Actions) == 0 {
		return ginx.Result{
			Code: errs.DraftInvalidInput,
			Msg:  "aucune action",
		}, nil
	}
	d, err := h.svc.Dispatch(ctx, dc.DraftId, toActions(req.Actions)...)
	return draftResult(d, err)
}

// Submit 用草稿计算 MGP
// @Summary 提交草稿
// @Description 计算期间重复提交会被拒绝
// @Tags 草稿
// @Produce json
// @Param x-draft-token header string true "草稿 token"
// @Param autoSave query bool false "是否保存结果"
// @Success 200 {object} ginx.Result{data=ResultatVo} "Success"
// @Router /api/mgp/brouillons/courant/calculer [post]
func (h *DraftHandler) Submit(ctx *gin.Context, dc ijwt.DraftClaims) (ginx.Result, error) {
	autoSave, err := queryAutoSave(ctx)
	if err != nil {
		return ginx.Result{
			Code: errs.MGPInvalidInput,
			Msg:  "paramètre autoSave invalide",
		}, nil
	}
	res, err := h.svc.Submit(ctx, dc.DraftId, autoSave)
	switch {
	case errors.Is(err, service.ErrSubmissionInFlight):
		return ginx.Result{
			Code: errs.DraftSubmissionInFlight,
			Msg:  "calcul en cours, veuillez patienter",
		}, nil
	case errors.Is(err, service.ErrDraftNotFound):
		return ginx.Result{
			Code: errs.DraftNotFound,
			Msg:  "brouillon expiré",
		}, nil
	default:
		return calculationResult(res, err)
	}
}

// Discard 丢弃草稿，token 同时作废
// @Summary 丢弃草稿
// @Tags 草稿
// @Produce json
// @Param x-draft-token header string true "草稿 token"
// @Success 200 {object} ginx.Result "Success"
// @Router /api/mgp/brouillons/courant [delete]
func (h *DraftHandler) Discard(ctx *gin.Context, dc ijwt.DraftClaims) (ginx.Result, error) {
	if err := h.svc.Discard(ctx, dc.DraftId); err != nil {
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
	if err := h.ClearToken(ctx); err != nil {
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
	return ginx.Result{
		Msg: "Success",
	}, nil
}

func draftResult(d domain.Draft, err error) (ginx.Result, error) {
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "Success",
			Data: toBrouillonVo(d),
		}, nil
	case errors.Is(err, service.ErrDraftNotFound):
		return ginx.Result{
			Code: errs.DraftNotFound,
			Msg:  "brouillon expiré",
		}, nil
	case errors.Is(err, service.ErrInvalidAction):
		return ginx.Result{
			Code: errs.DraftInvalidAction,
			Msg:  "action invalide",
		}, nil
	default:
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
}
