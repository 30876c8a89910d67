package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/gintool"
)

type Handler interface {
	Register(r *gin.Engine)
}

// domainStatus maps an expected rejection to the http status the client
// should see. Everything else is an internal failure.
func domainStatus(code errs.Code) int {
	switch code {
	case errs.CodeMalformedInput:
		return http.StatusBadRequest
	case errs.CodeQuotaExceeded:
		return http.StatusTooManyRequests
	case errs.CodeNotEligible, errs.CodeWrongPhase, errs.CodeLeaderRemovalForbidden, errs.CodeNotTeamLeader:
		return http.StatusForbidden
	case errs.CodeTeamSizeViolation, errs.CodeTeamConflict, errs.CodeDuplicate:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondServiceError(c *gin.Context, log loggerv2.Logger, op string, err error) {
	if de, ok := errs.AsDomain(err); ok {
		gintool.GinResponse(c, &gintool.Response{
			Code:    domainStatus(de.Code),
			Message: de.Message,
			Data:    gin.H{"reason": string(de.Code)},
		})
		log.InfoContext(c.Request.Context(), op+" rejected",
			logger.String("reason", string(de.Code)),
			logger.String("message", de.Message))
		return
	}
	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusInternalServerError,
		Message: op + " failed",
	})
	log.ErrorContext(c.Request.Context(), op+" failed", logger.Error(err))
}
