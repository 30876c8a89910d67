package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/gintool"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

type CompetitionHandler struct {
	competitionSvc service.CompetitionService
	userSvc        service.UserService
	log            loggerv2.Logger
}

var _ Handler = (*CompetitionHandler)(nil)

func NewCompetitionHandler(competitionSvc service.CompetitionService, userSvc service.UserService, log loggerv2.Logger) *CompetitionHandler {
	return &CompetitionHandler{
		competitionSvc: competitionSvc,
		userSvc:        userSvc,
		log:            log,
	}
}

func (h *CompetitionHandler) Register(r *gin.Engine) {
	r.POST(constants.CreateCompetitionPath, gintool.WrapHandler(h.CreateCompetition, h.log))
	r.PUT(constants.UpdateCompetitionPath, gintool.WrapHandler(h.UpdateCompetition, h.log))
	r.GET(constants.GetCompetitionPath, gintool.WrapWithoutBodyHandler(h.GetCompetition, h.log))
	r.GET(constants.GetCompetitionListPath, gintool.WrapWithoutBodyHandler(h.GetCompetitionList, h.log))
}

// requireAdmin checks the operator's role against the database, not the
// token, so a demoted admin loses access immediately.
func (h *CompetitionHandler) requireAdmin(c *gin.Context, operator uint64) bool {
	ctx := c.Request.Context()
	role, err := h.userSvc.GetRoleByID(ctx, operator)
	if err != nil {
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusInternalServerError,
			Message: "check role failed",
		})
		h.log.ErrorContext(ctx, "requireAdmin failed", logger.Error(err))
		return false
	}
	if role != model.UserRoleAdmin {
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusForbidden,
			Message: "admin only",
		})
		return false
	}
	return true
}

func (h *CompetitionHandler) CreateCompetition(c *gin.Context, param *model.CreateCompetitionParam) {
	if !h.requireAdmin(c, param.Operator) {
		return
	}

	ctx := c.Request.Context()
	competitionID, err := h.competitionSvc.CreateCompetition(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "CreateCompetition", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    gin.H{"competition_id": competitionID},
	})
}

func (h *CompetitionHandler) UpdateCompetition(c *gin.Context, param *model.UpdateCompetitionParam) {
	if !h.requireAdmin(c, param.Operator) {
		return
	}

	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.ID))

	err := h.competitionSvc.UpdateCompetition(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "UpdateCompetition", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
	})
}

func (h *CompetitionHandler) GetCompetition(c *gin.Context, param *model.GetCompetitionParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	competition, err := h.competitionSvc.GetCompetition(ctx, param.CompetitionID)
	if err != nil {
		respondServiceError(c, h.log, "GetCompetition", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data: model.GetCompetitionResponse{
			CompetitionWithPhase: model.CompetitionWithPhase{
				Competition: *competition,
				Phase:       h.competitionSvc.CurrentPhase(competition),
			},
		},
	})
}

func (h *CompetitionHandler) GetCompetitionList(c *gin.Context, param *model.GetCompetitionListParam) {
	ctx := c.Request.Context()

	competitionList, total, err := h.competitionSvc.GetCompetitionList(ctx, param.Page, param.PageSize)
	if err != nil {
		respondServiceError(c, h.log, "GetCompetitionList", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data: model.GetCompetitionListResponse{
			List:     competitionList,
			Total:    total,
			Page:     param.Page,
			PageSize: param.PageSize,
		},
	})
}
