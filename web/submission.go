package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/gintool"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

type SubmissionHandler struct {
	submissionSvc service.SubmissionService
	log           loggerv2.Logger
}

var _ Handler = (*SubmissionHandler)(nil)

func NewSubmissionHandler(submissionSvc service.SubmissionService, log loggerv2.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionSvc: submissionSvc,
		log:           log,
	}
}

func (h *SubmissionHandler) Register(r *gin.Engine) {
	r.POST(constants.SubmitPredictionPath, gintool.WrapCompetitionWithoutBodyHandler(h.SubmitPrediction, h.log))
	r.GET(constants.GetLatestSubmissionPath, gintool.WrapCompetitionWithoutBodyHandler(h.GetLatestSubmission, h.log))
	r.GET(constants.GetSubmissionListPath, gintool.WrapCompetitionWithoutBodyHandler(h.GetSubmissionList, h.log))
	r.GET(constants.GetSubmissionDownloadPath, gintool.WrapCompetitionWithoutBodyHandler(h.GetSubmissionDownload, h.log))
	r.GET(constants.GetQuotaPath, gintool.WrapCompetitionWithoutBodyHandler(h.GetQuota, h.log))
}

func (h *SubmissionHandler) SubmitPrediction(c *gin.Context, param *model.SubmitPredictionParam) {
	start := time.Now()
	code, reason := strconv.Itoa(http.StatusOK), "ok"
	defer func() {
		submitPredictionRequestsTotal.WithLabelValues(code, reason).Inc()
		submitPredictionDurationSeconds.WithLabelValues(code, reason).Observe(time.Since(start).Seconds())
	}()

	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		code, reason = strconv.Itoa(http.StatusBadRequest), "no_file"
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusBadRequest,
			Message: "prediction file is required",
		})
		h.log.ErrorContext(ctx, "SubmitPrediction get file failed", logger.Error(err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		code, reason = strconv.Itoa(http.StatusInternalServerError), "internal"
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusInternalServerError,
			Message: "open prediction file failed",
		})
		h.log.ErrorContext(ctx, "SubmitPrediction open file failed", logger.Error(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		code, reason = strconv.Itoa(http.StatusInternalServerError), "internal"
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusInternalServerError,
			Message: "read prediction file failed",
		})
		h.log.ErrorContext(ctx, "SubmitPrediction read file failed", logger.Error(err))
		return
	}

	param.FileName = fileHeader.Filename
	param.FileSize = fileHeader.Size
	param.Content = content

	resp, err := h.submissionSvc.SubmitPrediction(ctx, param)
	if err != nil {
		if de, ok := errs.AsDomain(err); ok {
			code, reason = strconv.Itoa(domainStatus(de.Code)), string(de.Code)
		} else {
			code, reason = strconv.Itoa(http.StatusInternalServerError), "internal"
		}
		respondServiceError(c, h.log, "SubmitPrediction", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    resp,
	})
}

func (h *SubmissionHandler) GetLatestSubmission(c *gin.Context, param *model.GetLatestSubmissionParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	submission, err := h.submissionSvc.GetLatestSubmission(ctx, param.CompetitionID, param.Operator)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			gintool.GinResponse(c, &gintool.Response{
				Code:    http.StatusNotFound,
				Message: "no submission yet",
			})
			return
		}
		respondServiceError(c, h.log, "GetLatestSubmission", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data: model.GetLatestSubmissionResponse{
			Submission: *submission,
		},
	})
}

func (h *SubmissionHandler) GetSubmissionList(c *gin.Context, param *model.GetSubmissionListParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	submissions, total, err := h.submissionSvc.GetSubmissionList(ctx, param)
	if err != nil {
		respondServiceError(c, h.log, "GetSubmissionList", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data: model.GetSubmissionListResponse{
			List:     submissions,
			Total:    total,
			Page:     param.Page,
			PageSize: param.PageSize,
		},
	})
}

func (h *SubmissionHandler) GetSubmissionDownload(c *gin.Context, param *model.GetSubmissionDownloadParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID),
		logger.Uint64("submission_id", param.SubmissionID))

	resp, err := h.submissionSvc.GetDownloadURL(ctx, param)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			gintool.GinResponse(c, &gintool.Response{
				Code:    http.StatusNotFound,
				Message: "submission not found",
			})
			return
		}
		respondServiceError(c, h.log, "GetSubmissionDownload", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    resp,
	})
}

func (h *SubmissionHandler) GetQuota(c *gin.Context, param *model.GetQuotaParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(),
		logger.Uint64("competition_id", param.CompetitionID))

	quota, err := h.submissionSvc.GetQuota(ctx, param.CompetitionID, param.Operator)
	if err != nil {
		respondServiceError(c, h.log, "GetQuota", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    quota,
	})
}
