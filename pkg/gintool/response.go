package gintool

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/constants"
)

type Response struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"request_id"`
}

func GinResponse(c *gin.Context, resp *Response) {
	resp.RequestID = c.GetHeader(constants.HeaderRequestIDKey)
	c.JSON(http.StatusOK, resp)
}
