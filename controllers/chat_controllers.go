package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartelroasters/storefront/assistant"
	"github.com/cartelroasters/storefront/models"
	"github.com/cartelroasters/storefront/order"
	"github.com/cartelroasters/storefront/utils"
)

type ChatController struct {
	Registry *order.Registry
	Bridge   *assistant.Bridge
}

func NewChatController(registry *order.Registry, bridge *assistant.Bridge) *ChatController {
	return &ChatController{Registry: registry, Bridge: bridge}
}

// PostChat runs one assistant turn. Only one turn may be in flight per
// session; a second message while the first is pending gets a 409. The
// bridge never surfaces a raw error to the guest, only the fallback
// copy, so the transcript always gets a model entry.
func (cc *ChatController) PostChat(c *gin.Context) {
	session, ok := sessionFrom(c, cc.Registry)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !session.BeginChatTurn(req.Message) {
		utils.RespondError(c, http.StatusConflict, errors.New("a reply is already pending"))
		return
	}

	reply := models.ChatMessage{Role: models.ChatRoleModel}
	text, err := cc.Bridge.Ask(c.Request.Context(), req.Message)
	switch {
	case errors.Is(err, assistant.ErrMissingAPIKey):
		reply.Text = assistant.FallbackMissingKey
		reply.IsError = true
	case errors.Is(err, assistant.ErrEmptyReply):
		reply.Text = assistant.FallbackEmptyReply
		reply.IsError = true
	case err != nil:
		utils.ErrorLogger.Errorf("Assistant call failed: %v", err)
		reply.Text = assistant.FallbackCallFailed
		reply.IsError = true
	default:
		reply.Text = text
	}
	session.EndChatTurn(reply)

	utils.RespondJSON(c, http.StatusOK, "Assistant reply", gin.H{
		"reply":      reply,
		"transcript": session.Transcript(),
	})
}

func (cc *ChatController) GetTranscript(c *gin.Context) {
	session, ok := sessionFrom(c, cc.Registry)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Chat transcript", session.Transcript())
}
