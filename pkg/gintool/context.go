package gintool

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web/jwt"
)

// GinContextToLoggerContext carries the request id into the logger context so
// every log line of a request shares it.
func GinContextToLoggerContext(c *gin.Context) context.Context {
	baseCtx := c.Request.Context()

	fields := make([]logger.Field, 0, 1)
	if requestID := c.GetHeader(constants.HeaderRequestIDKey); requestID != "" {
		fields = append(fields, logger.String("RequestID", requestID))
	}

	return context.WithValue(baseCtx, loggerv2.FieldsKey, fields)
}

// ExtractOperator fills the operator from the authenticated user claims.
func ExtractOperator(c *gin.Context, p model.CommonParamInterface) error {
	ucAny, exists := c.Get(constants.ContextUserClaimsKey)
	if !exists {
		GinResponse(c, &Response{
			Code:    http.StatusUnauthorized,
			Message: "user claims not found",
		})
		return fmt.Errorf("user claims not found in context")
	}
	uc, ok := ucAny.(jwt.UserClaims)
	if !ok {
		GinResponse(c, &Response{
			Code:    http.StatusUnauthorized,
			Message: "user claims type assertion failed",
		})
		return fmt.Errorf("user claims type assertion failed")
	}
	p.SetOperator(uc.UserId)
	return nil
}

// ExtractCompetitionID fills the competition id from the uri or query.
func ExtractCompetitionID(c *gin.Context, p model.CompetitionCommonParamInterface) error {
	raw := c.Param("competition_id")
	if raw == "" {
		raw = c.Query("competition_id")
	}
	if raw == "" {
		GinResponse(c, &Response{
			Code:    http.StatusBadRequest,
			Message: "competition_id is required",
		})
		return fmt.Errorf("competition_id is required")
	}
	competitionID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		GinResponse(c, &Response{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("competition_id is not a valid uint64: %s", err.Error()),
		})
		return fmt.Errorf("competition_id is not a valid uint64, competition_id: %s, err: %w", raw, err)
	}
	p.SetCompetitionID(competitionID)
	return nil
}
