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

type RegistrationHandler struct {
	registrationSvc service.RegistrationService
	userSvc         service.UserService
	log             loggerv2.Logger
}

var _ Handler = (*RegistrationHandler)(nil)

func NewRegistrationHandler(registrationSvc service.RegistrationService, userSvc service.UserService, log loggerv2.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationSvc: registrationSvc,
		userSvc:         userSvc,
		log:             log,
	}
}

func (h *RegistrationHandler) Register(r *gin.Engine) {
	r.POST(constants.RegisterCompetitionPath, gintool.WrapCompetitionHandler(h.RegisterCompetition, h.log))
	r.PUT(constants.ReviewRegistrationPath, gintool.WrapHandler(h.ReviewRegistration, h.log))
	r.GET(constants.GetRegistrationListPath, gintool.WrapCompetitionWithoutBodyHandler(h.GetRegistrationList, h.log))
}

func (h *RegistrationHandler) RegisterCompetition(c *gin.Context, param *model.RegisterCompetitionParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	registrationID, err := h.registrationSvc.Register(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "RegisterCompetition", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    gin.H{"registration_id": registrationID},
	})
}

func (h *RegistrationHandler) ReviewRegistration(c *gin.Context, param *model.ReviewRegistrationParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("registration_id", param.RegistrationID),
		logger.Bool("approve", *param.Approve))

	role, err := h.userSvc.GetRoleByID(ctx, param.Operator)
	if err != nil {
		respondServiceError(c, h.log, "ReviewRegistration", err)
		return
	}
	if role != model.UserRoleAdmin {
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusForbidden,
			Message: "admin only",
		})
		return
	}

	err = h.registrationSvc.Review(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "ReviewRegistration", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
	})
}

func (h *RegistrationHandler) GetRegistrationList(c *gin.Context, param *model.GetRegistrationListParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	registrations, total, err := h.registrationSvc.GetRegistrationList(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "GetRegistrationList", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data: model.GetRegistrationListResponse{
			List:     registrations,
			Total:    total,
			Page:     param.Page,
			PageSize: param.PageSize,
		},
	})
}
