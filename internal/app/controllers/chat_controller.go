package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
	"github.com/emrek/campushub/internal/pkg/ws"
)

// ChatController handles direct messaging
type ChatController struct {
	chatService services.ChatService
	hub         *ws.Hub
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, hub *ws.Hub) *ChatController {
	return &ChatController{
		chatService: chatService,
		hub:         hub,
	}
}

// OpenChat handles opening (or re-opening) a direct chat with another user
func (c *ChatController) OpenChat(ctx *gin.Context) {
	var req dto.OpenChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	chat, err := c.chatService.OpenDirect(ctx.Request.Context(), currentUserID(ctx), req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(chat, ""))
}

// GetChats handles retrieving the user's chats, most recently active first
func (c *ChatController) GetChats(ctx *gin.Context) {
	chats, err := c.chatService.ListChats(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(chats, ""))
}

// GetChatByID handles retrieving a single chat with its messages
func (c *ChatController) GetChatByID(ctx *gin.Context) {
	chat, err := c.chatService.GetChat(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(chat, ""))
}

// SendMessage handles message submission. Connected websocket clients on the
// chat get the message pushed to them.
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	chatID := ctx.Param("id")
	message, err := c.chatService.SendMessage(ctx.Request.Context(), chatID, currentUserID(ctx), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.hub.Broadcast(chatID, message)
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(message, "Message sent"))
}

// MarkRead handles marking the other side's messages as read
func (c *ChatController) MarkRead(ctx *gin.Context) {
	chat, err := c.chatService.MarkRead(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(chat, ""))
}

// Subscribe upgrades the connection to a websocket delivering new messages on
// the chat as they arrive
func (c *ChatController) Subscribe(ctx *gin.Context) {
	chatID := ctx.Param("id")
	userID := currentUserID(ctx)

	// Participation check before the upgrade
	if _, err := c.chatService.GetChat(ctx.Request.Context(), chatID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.hub.ServeWS(ctx.Writer, ctx.Request, chatID)
}
