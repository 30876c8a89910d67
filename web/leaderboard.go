package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/gintool"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service/exporter/factory"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
	userSvc        service.UserService
	log            loggerv2.Logger
}

var _ Handler = (*LeaderboardHandler)(nil)

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService, userSvc service.UserService, log loggerv2.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardSvc: leaderboardSvc,
		userSvc:        userSvc,
		log:            log,
	}
}

func (h *LeaderboardHandler) Register(r *gin.Engine) {
	r.GET(constants.GetLeaderboardPath, gintool.WrapCompetitionWithoutBodyHandler(h.GetLeaderboard, h.log))
	r.POST(constants.RefreshLeaderboardPath, gintool.WrapCompetitionWithoutBodyHandler(h.RefreshLeaderboard, h.log))
	r.GET(constants.ExportLeaderboardPath, gintool.WrapWithoutBodyHandler(h.ExportLeaderboard, h.log))
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context, param *model.GetLeaderboardParam) {
	start := time.Now()
	code, reason := strconv.Itoa(http.StatusOK), "ok"
	defer func() {
		getLeaderboardRequestsTotal.WithLabelValues(code, reason).Inc()
		getLeaderboardDurationSeconds.WithLabelValues(code, reason).Observe(time.Since(start).Seconds())
	}()

	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	resp, err := h.leaderboardSvc.GetLeaderboard(ctx, param.CompetitionID)
	if err != nil {
		if de, ok := errs.AsDomain(err); ok {
			code, reason = strconv.Itoa(domainStatus(de.Code)), string(de.Code)
		} else {
			code, reason = strconv.Itoa(http.StatusInternalServerError), "internal"
		}
		respondServiceError(c, h.log, "GetLeaderboard", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    resp,
	})
}

func (h *LeaderboardHandler) RefreshLeaderboard(c *gin.Context, param *model.GetLeaderboardParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	role, err := h.userSvc.GetRoleByID(ctx, param.Operator)
	if err != nil {
		respondServiceError(c, h.log, "RefreshLeaderboard", err)
		return
	}
	if role != model.UserRoleAdmin {
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusForbidden,
			Message: "admin only",
		})
		return
	}

	resp, err := h.leaderboardSvc.RefreshLeaderboard(ctx, param.CompetitionID)
	if err != nil {
		respondServiceError(c, h.log, "RefreshLeaderboard", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    resp,
	})
}

func (h *LeaderboardHandler) ExportLeaderboard(c *gin.Context, param *model.ExportLeaderboardParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID),
		logger.String("format", param.Format))

	var buf bytes.Buffer
	err := h.leaderboardSvc.Export(ctx, param.CompetitionID, factory.LeaderboardExporterType(param.Format), &buf)
	if err != nil {
		respondServiceError(c, h.log, "ExportLeaderboard", err)
		return
	}

	contentType := "text/csv"
	if param.Format == string(factory.XLSXLeaderboardExporter) {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	fileName := fmt.Sprintf("leaderboard_%d.%s", param.CompetitionID, param.Format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
