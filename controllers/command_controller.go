package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/follow-net/api-go/services"
	"github.com/follow-net/api-go/utils"
)

type CommandController struct {
	Store services.CommandLogStore
}

func NewCommandController(store services.CommandLogStore) *CommandController {
	return &CommandController{Store: store}
}

// PostCommands stores the caller's command payload as the latest
// command-log entry. Last write wins.
func (cc *CommandController) PostCommands(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read request body"})
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}

	entry := services.CommandLogEntry{
		Username: currentUser.Username,
		Role:     currentUser.Role,
		Commands: json.RawMessage(body),
	}

	if err := cc.Store.Put(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store commands"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// GetCommands returns the latest command-log entry, to admins only.
func (cc *CommandController) GetCommands(c *gin.Context) {
	entry, err := cc.Store.Latest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch commands"})
		return
	}

	if entry == nil || entry.Username == "" || entry.Role == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user authenticated."})
		return
	}

	if entry.Role != "admin" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User has not admin role."})
		return
	}

	c.JSON(http.StatusOK, entry)
}
