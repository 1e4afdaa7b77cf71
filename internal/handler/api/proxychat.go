package api

import (
	"net/http"

	reqdto "travel-broker/internal/handler/dto/request"
	resdto "travel-broker/internal/handler/dto/response"
	"travel-broker/internal/handler/httperr"
	"travel-broker/internal/handler/presenter"

	"github.com/gin-gonic/gin"
)

type ProxyChatHandler struct{}

func NewProxyChatHandler() *ProxyChatHandler {
	return &ProxyChatHandler{}
}

// @Summary Render proxy chat message
// @Description Render a relayed chat message with its status header
// @Tags proxy-chat
// @Accept json
// @Produce json
// @Param request body reqdto.RenderProxyChatRequest true "Message"
// @Success 200 {object} resdto.ProxyChatResponse
// @Failure 400 {object} httperr.Response
// @Router /proxy-chat/render [post]
func (h *ProxyChatHandler) Render(c *gin.Context) {
	var req reqdto.RenderProxyChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ProxyChatResponse{Text: presenter.FormatProxyChatMessage(req.ToMessage())})
}
