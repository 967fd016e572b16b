package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/uy1-mgp/bff/domain"
	"github.com/uy1-mgp/bff/errs"
	"github.com/uy1-mgp/bff/pkg/ginx"
	"github.com/uy1-mgp/bff/service"
)

const pdfContentType = "application/pdf"

type MGPHandler struct {
	svc service.MGPService
}

func NewMGPHandler(svc service.MGPService) *MGPHandler {
	return &MGPHandler{svc: svc}
}

func (h *MGPHandler) RegisterRoutes(s *gin.Engine, draftMiddleware gin.HandlerFunc) {
	mg := s.Group("/api/mgp")
	mg.POST("/calculer", ginx.WrapReq(h.Calculate))
	mg.GET("/pdf/:id", ginx.WrapFile(h.DownloadPDF))
	// 旧前端使用的地址
	mg.GET("/telecharger-pdf/:id", ginx.WrapFile(h.DownloadPDF))
	mg.POST("/pdf", ginx.WrapFileReq(h.RenderPDF))
	mg.GET("/resultats/:id", ginx.Wrap(h.Detail))
	mg.GET("/historique/:nom", ginx.Wrap(h.History))
	mg.POST("/sauvegarder", ginx.WrapReq(h.Save))
}

// Calculate 计算 MGP
// @Summary 计算 MGP
// @Description 校验输入后计算 MGP，autoSave 为 true 时保存结果（默认 true）
// @Tags MGP
// @Accept json
// @Produce json
// @Param autoSave query bool false "是否保存结果"
// @Param body body CalculerReq true "UE 列表和学生姓名"
// @Success 200 {object} ginx.Result{data=ResultatVo} "Success"
// @Router /api/mgp/calculer [post]
func (h *MGPHandler) Calculate(ctx *gin.Context, req CalculerReq) (ginx.Result, error) {
	autoSave, err := queryAutoSave(ctx)
	if err != nil {
		return ginx.Result{
			Code: errs.MGPInvalidInput,
			Msg:  "paramètre autoSave invalide",
		}, nil
	}
	res, err := h.svc.Calculate(ctx, req.NomEtudiant, toCourseEntries(req.Ues), autoSave)
	return calculationResult(res, err)
}

// DownloadPDF 下载成绩单
// @Summary 下载成绩单
// @Description 根据已保存结果的 id 生成 PDF 成绩单
// @Tags MGP
// @Produce application/pdf
// @Param id path int true "结果 id"
// @Success 200 {file} binary "PDF"
// @Router /api/mgp/pdf/{id} [get]
func (h *MGPHandler) DownloadPDF(ctx *gin.Context) (ginx.File, ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ginx.File{}, ginx.Result{
			Code: errs.MGPInvalidInput,
			Msg:  "identifiant invalide",
		}, err
	}
	t, err := h.svc.ExportTranscript(ctx, id)
	switch {
	case err == nil:
		return ginx.File{
			Name:        t.Filename,
			ContentType: pdfContentType,
			Content:     t.Content,
		}, ginx.Result{}, nil
	case errors.Is(err, service.ErrResultNotFound):
		return ginx.File{}, ginx.Result{
			Code: errs.MGPResultNotFound,
			Msg:  "résultat introuvable",
		}, err
	default:
		return ginx.File{}, ginx.Result{
			Code: errs.TranscriptExportFailed,
			Msg:  "erreur de génération PDF",
		}, err
	}
}

// RenderPDF 直接用提交的结果生成成绩单，不查库
// @Summary 生成临时成绩单
// @Tags MGP
// @Accept json
// @Produce application/pdf
// @Param body body ResultatVo true "计算结果"
// @Success 200 {file} binary "PDF"
// @Router /api/mgp/pdf [post]
func (h *MGPHandler) RenderPDF(ctx *gin.Context, req ResultatVo) (ginx.File, ginx.Result, error) {
	t, err := h.svc.RenderTranscript(ctx, req.toResult())
	if err != nil {
		return ginx.File{}, ginx.Result{
			Code: errs.TranscriptExportFailed,
			Msg:  "erreur de génération PDF",
		}, err
	}
	return ginx.File{
		Name:        t.Filename,
		ContentType: pdfContentType,
		Content:     t.Content,
	}, ginx.Result{}, nil
}

// Detail 查询已保存的结果
// @Summary 查询结果
// @Tags MGP
// @Produce json
// @Param id path int true "结果 id"
// @Success 200 {object} ginx.Result{data=ResultatVo} "Success"
// @Router /api/mgp/resultats/{id} [get]
func (h *MGPHandler) Detail(ctx *gin.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ginx.Result{
			Code: errs.MGPInvalidInput,
			Msg:  "identifiant invalide",
		}, err
	}
	res, err := h.svc.FindById(ctx, id)
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "Success",
			Data: toResultatVo(res),
		}, nil
	case errors.Is(err, service.ErrResultNotFound):
		return ginx.Result{
			Code: errs.MGPResultNotFound,
			Msg:  "résultat introuvable",
		}, nil
	default:
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
}

// History 按学生姓名查历史结果
// @Summary 历史结果
// @Description 姓名模糊匹配，不区分大小写，按时间倒序
// @Tags MGP
// @Produce json
// @Param nom path string true "学生姓名"
// @Success 200 {object} ginx.Result{data=[]ResultatVo} "Success"
// @Router /api/mgp/historique/{nom} [get]
func (h *MGPHandler) History(ctx *gin.Context) (ginx.Result, error) {
	results, err := h.svc.History(ctx, ctx.Param("nom"))
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "Success",
			Data: slice.Map(results, func(idx int, src domain.Result) ResultatVo { return toResultatVo(src) }),
		}, nil
	case errors.Is(err, service.ErrStudentNameRequired):
		return ginx.Result{
			Code: errs.MGPInvalidInput,
			Msg:  "le nom de l'étudiant est obligatoire",
		}, nil
	default:
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
}

// Save 保存前端提交的结果
// @Summary 保存结果（旧接口）
// @Tags MGP
// @Accept json
// @Produce json
// @Param body body ResultatVo true "计算结果"
// @Success 200 {object} ginx.Result{data=ResultatVo} "Success"
// @Router /api/mgp/sauvegarder [post]
func (h *MGPHandler) Save(ctx *gin.Context, req ResultatVo) (ginx.Result, error) {
	res, err := h.svc.Save(ctx, req.toResult())
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "Success",
			Data: toResultatVo(res),
		}, nil
	case errors.Is(err, service.ErrStudentNameRequired):
		return ginx.Result{
			Code: errs.MGPInvalidInput,
			Msg:  "le nom de l'étudiant est obligatoire",
		}, nil
	default:
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
}

// calculationResult 计算接口和草稿提交共用的错误转换
func calculationResult(res domain.Result, err error) (ginx.Result, error) {
	var ve *service.ValidationError
	switch {
	case err == nil:
		return ginx.Result{
			Msg:  "Success",
			Data: toResultatVo(res),
		}, nil
	case errors.Is(err, service.ErrStudentNameRequired):
		return ginx.Result{
			Code: errs.MGPInvalidInput,
			Msg:  "le nom de l'étudiant est obligatoire",
		}, nil
	case errors.Is(err, service.ErrNoValidEntries):
		return ginx.Result{
			Code: errs.MGPNoValidEntries,
			Msg:  "veuillez saisir au moins une UE",
		}, nil
	case errors.As(err, &ve):
		return ginx.Result{
			Code: errs.MGPInvalidEntries,
			Msg:  "certaines UE sont invalides",
			Data: ve.Fields,
		}, nil
	default:
		var se *service.ServiceError
		if errors.As(err, &se) {
			return ginx.Result{
				Code: errs.MGPServiceUnavailable,
				Msg:  "service de calcul indisponible, veuillez réessayer",
			}, err
		}
		return ginx.Result{
			Code: errs.InternalServerError,
			Msg:  "erreur système",
		}, err
	}
}

func queryAutoSave(ctx *gin.Context) (bool, error) {
	val, ok := ctx.GetQuery("autoSave")
	if !ok || val == "" {
		return true, nil
	}
	return strconv.ParseBool(val)
}
