package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/server/http/dto"
)

// UserHandler serves wallet account lookups.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Get handles GET /api/user/:telegramID. The account is created on first
// contact; username, firstName and ref query parameters seed the new row.
func (h *UserHandler) Get(c *gin.Context) {
	telegramID, ok := PathTelegramID(c)
	if !ok {
		return
	}

	user, err := h.facade.ResolveUser(
		c.Request.Context(),
		telegramID,
		c.Query("username"),
		c.Query("firstName"),
		c.Query("ref"),
	)
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		TelegramID:          user.TelegramID,
		Username:            user.Username,
		FirstName:           user.FirstName,
		MainBalance:         user.MainBalance,
		HoldBalance:         user.HoldBalance,
		ReferralBalance:     user.ReferralBalance,
		StarsBalance:        user.StarsBalance,
		IsPremium:           user.IsPremium,
		ReferralCode:        user.ReferralCode,
		FirstOrderCompleted: user.FirstOrderCompleted,
		JoinedAt:            user.JoinedAt,
	}
}
