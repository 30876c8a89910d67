package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/to404hanga/pkg404/logger"
	loggerv2 "github.com/to404hanga/pkg404/logger/v2"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/pkg/gintool"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web/jwt"
)

type UserHandler struct {
	userSvc    service.UserService
	jwtHandler jwt.Handler
	log        loggerv2.Logger
}

var _ Handler = (*UserHandler)(nil)

func NewUserHandler(userSvc service.UserService, jwtHandler jwt.Handler, log loggerv2.Logger) *UserHandler {
	return &UserHandler{
		userSvc:    userSvc,
		jwtHandler: jwtHandler,
		log:        log,
	}
}

func (h *UserHandler) Register(r *gin.Engine) {
	r.POST(constants.SignupPath, h.Signup)
	r.POST(constants.LoginPath, h.Login)
	r.GET(constants.GetProfilePath, gintool.WrapWithoutBodyHandler(h.GetProfile, h.log))
	r.PUT(constants.UpdatePasswordPath, gintool.WrapHandler(h.UpdatePassword, h.log))
}

func (h *UserHandler) Signup(c *gin.Context) {
	var param model.SignupParam
	if err := c.ShouldBindJSON(&param); err != nil {
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		h.log.ErrorContext(c.Request.Context(), "Signup bind json failed", logger.Error(err))
		return
	}

	ctx := c.Request.Context()
	userID, err := h.userSvc.Signup(ctx, &param)
	if err != nil {
		if de, ok := errs.AsDomain(err); ok && de.Code == errs.CodeDuplicate {
			gintool.GinResponse(c, &gintool.Response{
				Code:    http.StatusConflict,
				Message: de.Message,
			})
			return
		}
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusInternalServerError,
			Message: "Signup failed",
		})
		h.log.ErrorContext(ctx, "Signup failed", logger.Error(err))
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    gin.H{"user_id": userID},
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var param model.LoginParam
	if err := c.ShouldBindJSON(&param); err != nil {
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
		h.log.ErrorContext(c.Request.Context(), "Login bind json failed", logger.Error(err))
		return
	}

	ctx := c.Request.Context()
	user, err := h.userSvc.Login(ctx, &param)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			gintool.GinResponse(c, &gintool.Response{
				Code:    http.StatusUnauthorized,
				Message: "invalid email or password",
			})
			return
		}
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusInternalServerError,
			Message: "Login failed",
		})
		h.log.ErrorContext(ctx, "Login failed", logger.Error(err))
		return
	}

	if err = h.jwtHandler.SetLoginToken(c, user.ID, int8(user.Role)); err != nil {
		gintool.GinResponse(c, &gintool.Response{
			Code:    http.StatusInternalServerError,
			Message: fmt.Sprintf("SetLoginToken failed: %s", err.Error()),
		})
		h.log.ErrorContext(ctx, "Login SetLoginToken failed", logger.Error(err))
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    gin.H{"user_id": user.ID},
	})
}

func (h *UserHandler) GetProfile(c *gin.Context, param *model.GetProfileParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.Uint64("user_id", param.Operator))

	user, err := h.userSvc.GetUserByID(ctx, param.Operator)
	if err != nil {
		respondServiceError(c, h.log, "GetProfile", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data: model.GetProfileResponse{
			User: *user,
		},
	})
}

func (h *UserHandler) UpdatePassword(c *gin.Context, param *model.UpdatePasswordParam) {
	ctx := loggerv2.ContextWithFields(c.Request.Context(), logger.Uint64("user_id", param.Operator))

	err := h.userSvc.UpdatePassword(ctx, param)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			gintool.GinResponse(c, &gintool.Response{
				Code:    http.StatusForbidden,
				Message: "old password is wrong",
			})
			return
		}
		respondServiceError(c, h.log, "UpdatePassword", err)
		return
	}

	gintool.GinResponse(c, &gintool.Response{
		Code:    http.StatusOK,
		Message: "success",
	})
}
