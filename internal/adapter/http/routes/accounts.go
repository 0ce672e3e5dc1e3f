package routes

import (
	"car_maintenance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth    = "/auth"
	PathProfile = "/profile"
)

func addAccountRoutes(public, private *gin.RouterGroup, h *handlers.AccountHandler) {
	auth := public.Group(PathAuth)
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}

	secured := private.Group(PathAuth)
	{
		secured.POST("/logout", h.Logout)
		secured.PATCH("/password", h.ChangePassword)
	}
	private.PATCH(PathProfile, h.UpdateProfile)
}
