package v1

import (
	"net/http"

	"github.com/fingoal/backend/internal/httputil"
	"github.com/fingoal/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ChatMessageEditable struct {
	Message string `json:"message" example:"How do I start an emergency fund?"` // The message to send
}

type ChatHistoryResponse struct {
	Data  []models.ChatMessage `json:"data"`                                                                // All messages of the conversation
	Error *string              `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type ChatReplyResponse struct {
	Data  *models.ChatMessage `json:"data"`                                                            // The reply of the assistant
	Error *string             `json:"error" example:"sorry, I encountered an error, please try again"` // The error, if any occurred
}

func (co Controller) RegisterChatRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsChat)
	r.GET("", co.GetChat)
	r.POST("", co.CreateChatMessage)
	r.DELETE("", co.DeleteChat)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Chat
// @Success		204
// @Router			/v1/chat [options]
func OptionsChat(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get conversation
// @Description	Returns all messages of the conversation in order
// @Tags			Chat
// @Produce		json
// @Success		200	{object}	ChatHistoryResponse
// @Router			/v1/chat [get]
func (co Controller) GetChat(c *gin.Context) {
	history := co.Chat.History()
	c.JSON(http.StatusOK, ChatHistoryResponse{Data: history})
}

// @Summary		Send message
// @Description	Sends a message to the assistant and returns the reply. Without an API key, the reply is a canned response.
// @Tags			Chat
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatReplyResponse
// @Failure		400		{object}	ChatReplyResponse
// @Failure		500		{object}	ChatReplyResponse
// @Failure		502		{object}	ChatReplyResponse
// @Param			message	body		ChatMessageEditable	true	"Message"
// @Router			/v1/chat [post]
func (co Controller) CreateChatMessage(c *gin.Context) {
	var data ChatMessageEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(status(err), ChatReplyResponse{Error: &e})
		return
	}

	reply, err := co.Chat.Send(c.Request.Context(), data.Message)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChatReplyResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ChatReplyResponse{Data: &models.ChatMessage{
		Role:    models.RoleAssistant,
		Content: reply,
	}})
}

// @Summary		Clear conversation
// @Description	Deletes all messages of the conversation
// @Tags			Chat
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/chat [delete]
func (co Controller) DeleteChat(c *gin.Context) {
	if err := co.Chat.Clear(c.Request.Context()); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
