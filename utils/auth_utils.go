package utils

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/follow-net/api-go/models"
)

type UserClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// GenerateAccessToken signs an HS256 token carrying the user's id,
// username and role.
func GenerateAccessToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// NewRefreshToken returns an opaque refresh token value.
func NewRefreshToken() string {
	return uuid.NewString()
}

func ParseAccessToken(tokenString string) (*UserClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	userID, _ := claims["id"].(string)
	if userID == "" {
		return nil, errors.New("invalid token claims")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}
