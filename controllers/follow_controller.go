package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/follow-net/api-go/models"
	"github.com/follow-net/api-go/utils"
)

type FollowController struct {
	DB *gorm.DB
}

func NewFollowController(db *gorm.DB) *FollowController {
	return &FollowController{DB: db}
}

// RequestFollow godoc
// @Summary Issue a follow request
// @Description Creates a pending follow request from the caller to the given user
// @Tags follows
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /follows/request [post]
func (fc *FollowController) RequestFollow(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		UserID string `json:"user_id"`
	}
	// A missing body is handled below as a missing target, not a bind error.
	_ = c.ShouldBindJSON(&input)

	var requester models.User
	if err := fc.DB.First(&requester, "id = ?", currentUser.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return
	}

	if input.UserID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not user to follow."})
		return
	}

	if _, err := uuid.Parse(input.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user_id."})
		return
	}

	// Any existing request for the ordered pair blocks a new one,
	// regardless of its status.
	var existingRequest models.FollowRequest
	err := fc.DB.Where("requester_id = ? AND requested_id = ?", requester.ID, input.UserID).First(&existingRequest).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The follow request already exists."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing requests"})
		return
	}

	if requester.ID == input.UserID {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An user cannot follow itself."})
		return
	}

	var existingFollow models.Follow
	err = fc.DB.Where("follower_user_id = ? AND following_user_id = ?", requester.ID, input.UserID).First(&existingFollow).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The user is already being followed."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check follow status"})
		return
	}

	request := models.FollowRequest{
		RequesterID: requester.ID,
		RequestedID: input.UserID,
		Status:      models.FollowRequestPending,
	}

	if err := fc.DB.Create(&request).Error; err != nil {
		// A concurrent issue for the same pair lands on the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The follow request already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create follow request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// RespondFollow godoc
// @Summary Respond to a follow request
// @Description Accepts or rejects a pending follow request addressed to the caller
// @Tags follows
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /follows/response [post]
func (fc *FollowController) RespondFollow(c *gin.Context) {
	currentUser := utils.GetUser(c)
	if currentUser == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		RequestID string `json:"request_id"`
		Action    string `json:"action"`
	}
	_ = c.ShouldBindJSON(&input)

	var request models.FollowRequest
	found := false
	if input.RequestID != "" {
		if _, err := uuid.Parse(input.RequestID); err == nil {
			err := fc.DB.First(&request, "id = ?", input.RequestID).Error
			if err == nil {
				found = true
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch follow request"})
				return
			}
		}
	}

	if !found || input.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request_id or action."})
		return
	}

	// Only the requested user may respond.
	if currentUser.UserID != request.RequestedID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied."})
		return
	}

	if request.Status == models.FollowRequestAccepted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The user has already accepted the follow request."})
		return
	}
	if request.Status == models.FollowRequestRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The user has already rejected the follow request."})
		return
	}

	switch input.Action {
	case "accept":
		tx := fc.DB.Begin()

		follow := models.Follow{
			FollowerUserID:  request.RequesterID,
			FollowingUserID: request.RequestedID,
		}
		if err := tx.Create(&follow).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept follow request"})
			return
		}

		if err := tx.Model(&models.FollowRequest{}).Where("id = ?", request.ID).
			Update("status", models.FollowRequestAccepted).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept follow request"})
			return
		}

		tx.Commit()
		c.JSON(http.StatusOK, gin.H{})
	case "reject":
		if err := fc.DB.Model(&models.FollowRequest{}).Where("id = ?", request.ID).
			Update("status", models.FollowRequestRejected).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject follow request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid action."})
	}
}

// GetFollowers godoc
// @Summary Get user's followers
// @Description Returns the users following the given user, oldest first
// @Tags follows
// @Accept json
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} controllers.UserSummary
// @Router /follows/followers [get]
func (fc *FollowController) GetFollowers(c *gin.Context) {
	user, ok := fc.lookupUser(c)
	if !ok {
		return
	}

	var followers []UserSummary
	result := fc.DB.Model(&models.Follow{}).
		Select("users.id, users.username").
		Joins("JOIN users ON users.id = follows.follower_user_id").
		Where("follows.following_user_id = ?", user.ID).
		Order("follows.id ASC").
		Scan(&followers)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching followers"})
		return
	}

	if followers == nil {
		followers = []UserSummary{}
	}

	c.JSON(http.StatusOK, followers)
}

// GetFollowing godoc
// @Summary Get users a user is following
// @Description Returns the users the given user follows, oldest first
// @Tags follows
// @Accept json
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} controllers.UserSummary
// @Router /follows/following [get]
func (fc *FollowController) GetFollowing(c *gin.Context) {
	user, ok := fc.lookupUser(c)
	if !ok {
		return
	}

	var following []UserSummary
	result := fc.DB.Model(&models.Follow{}).
		Select("users.id, users.username").
		Joins("JOIN users ON users.id = follows.following_user_id").
		Where("follows.follower_user_id = ?", user.ID).
		Order("follows.id ASC").
		Scan(&following)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching following users"})
		return
	}

	if following == nil {
		following = []UserSummary{}
	}

	c.JSON(http.StatusOK, following)
}

// lookupUser resolves the user_id query parameter for the list
// endpoints, responding 404 itself when it cannot.
func (fc *FollowController) lookupUser(c *gin.Context) (*models.User, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return nil, false
	}
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return nil, false
	}

	var user models.User
	if err := fc.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		}
		return nil, false
	}

	return &user, true
}
