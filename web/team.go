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

type TeamHandler struct {
	teamSvc service.TeamService
	log     loggerv2.Logger
}

var _ Handler = (*TeamHandler)(nil)

func NewTeamHandler(teamSvc service.TeamService, log loggerv2.Logger) *TeamHandler {
	return &TeamHandler{
		teamSvc: teamSvc,
		log:     log,
	}
}

func (h *TeamHandler) Register(r *gin.Engine) {
	r.POST(constants.CreateTeamPath, gintool.WrapHandler(h.CreateTeam, h.log))
	r.POST(constants.AddTeamMemberPath, gintool.WrapHandler(h.AddTeamMember, h.log))
	r.DELETE(constants.RemoveTeamMemberPath, gintool.WrapHandler(h.RemoveTeamMember, h.log))
	r.GET(constants.GetTeamPath, gintool.WrapWithoutBodyHandler(h.GetTeam, h.log))
}

func (h *TeamHandler) CreateTeam(c *gin.Context, param *model.CreateTeamParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.String("team_name", param.Name))

	teamID, err := h.teamSvc.CreateTeam(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "CreateTeam", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    gin.H{"team_id": teamID},
	})
}

func (h *TeamHandler) AddTeamMember(c *gin.Context, param *model.TeamMemberParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("team_id", param.TeamID),
		logger.Uint64("user_id", param.UserID))

	err := h.teamSvc.AddMember(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "AddTeamMember", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
	})
}

func (h *TeamHandler) RemoveTeamMember(c *gin.Context, param *model.TeamMemberParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("team_id", param.TeamID),
		logger.Uint64("user_id", param.UserID))

	err := h.teamSvc.RemoveMember(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "RemoveTeamMember", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
	})
}

func (h *TeamHandler) GetTeam(c *gin.Context, param *model.GetTeamParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("team_id", param.TeamID))

	team, err := h.teamSvc.GetTeam(ctx, param.TeamID)
	if err != nil {
		respondServiceError(c, h.log, "GetTeam", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data: model.GetTeamResponse{
			Team: *team,
		},
	})
}
