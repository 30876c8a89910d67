package gintool

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

type paramPtr[T any] interface {
	*T
	model.CommonParamInterface
}

type competitionParamPtr[T any] interface {
	*T
	model.CompetitionCommonParamInterface
}

// WrapHandler binds the request into a fresh param, fills the operator from
// the authenticated claims, and hands both to h.
func WrapHandler[T any, PT paramPtr[T]](h func(c *gin.Context, param PT), log loggerv2.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := PT(new(T))
		if !bindParam(c, param, true, log) {
			return
		}
		if err := ExtractOperator(c, param); err != nil {
			log.ErrorContext(c.Request.Context(), "WrapHandler ExtractOperator failed", logger.Error(err))
			return
		}
		h(c, param)
	}
}

// WrapWithoutBodyHandler is WrapHandler for routes that carry no json body.
func WrapWithoutBodyHandler[T any, PT paramPtr[T]](h func(c *gin.Context, param PT), log loggerv2.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := PT(new(T))
		if !bindParam(c, param, false, log) {
			return
		}
		if err := ExtractOperator(c, param); err != nil {
			log.ErrorContext(c.Request.Context(), "WrapWithoutBodyHandler ExtractOperator failed", logger.Error(err))
			return
		}
		h(c, param)
	}
}

// WrapCompetitionHandler additionally resolves the competition id from the
// uri or query for competition-scoped params.
func WrapCompetitionHandler[T any, PT competitionParamPtr[T]](h func(c *gin.Context, param PT), log loggerv2.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := PT(new(T))
		if !bindParam(c, param, true, log) {
			return
		}
		if err := ExtractOperator(c, param); err != nil {
			log.ErrorContext(c.Request.Context(), "WrapCompetitionHandler ExtractOperator failed", logger.Error(err))
			return
		}
		if err := ExtractCompetitionID(c, param); err != nil {
			log.ErrorContext(c.Request.Context(), "WrapCompetitionHandler ExtractCompetitionID failed", logger.Error(err))
			return
		}
		h(c, param)
	}
}

// WrapCompetitionWithoutBodyHandler is WrapCompetitionHandler without the
// json bind.
func WrapCompetitionWithoutBodyHandler[T any, PT competitionParamPtr[T]](h func(c *gin.Context, param PT), log loggerv2.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := PT(new(T))
		if !bindParam(c, param, false, log) {
			return
		}
		if err := ExtractOperator(c, param); err != nil {
			log.ErrorContext(c.Request.Context(), "WrapCompetitionWithoutBodyHandler ExtractOperator failed", logger.Error(err))
			return
		}
		if err := ExtractCompetitionID(c, param); err != nil {
			log.ErrorContext(c.Request.Context(), "WrapCompetitionWithoutBodyHandler ExtractCompetitionID failed", logger.Error(err))
			return
		}
		h(c, param)
	}
}

func bindParam(c *gin.Context, param any, withBody bool, log loggerv2.Logger) bool {
	// 1) URI
	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(param); err != nil {
			GinResponse(c, &Response{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
			log.ErrorContext(c.Request.Context(), "bindParam bind uri failed", logger.Error(err))
			return false
		}
	}

	// 2) Header
	if err := c.ShouldBindHeader(param); err != nil {
		GinResponse(c, &Response{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		log.ErrorContext(c.Request.Context(), "bindParam bind header failed", logger.Error(err))
		return false
	}

	// 3) Query
	if c.Request.URL != nil && c.Request.URL.RawQuery != "" {
		if err := c.ShouldBindQuery(param); err != nil {
			GinResponse(c, &Response{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
			log.ErrorContext(c.Request.Context(), "bindParam bind query failed", logger.Error(err))
			return false
		}
	}

	// 4) JSON
	if withBody && c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(param); err != nil {
			GinResponse(c, &Response{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			})
			log.ErrorContext(c.Request.Context(), "bindParam bind json failed", logger.Error(err))
			return false
		}
	}

	return true
}
