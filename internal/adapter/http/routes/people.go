package routes

import (
	"gestao_igreja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMembers       = "/members"
	PathGroups        = "/groups"
	PathCongregations = "/congregations"
)

func addPeopleRoutes(rg *gin.RouterGroup, h *handlerSet) {
	addMemberRoutes(rg.Group(PathMembers), h.members)
	addGroupRoutes(rg.Group(PathGroups), h.groups)
	addCongregationRoutes(rg.Group(PathCongregations), h.congregations)
}

func addMemberRoutes(members *gin.RouterGroup, h *handlers.MemberHandler) {
	members.GET("", h.ListMembers)
	members.GET("/stats", h.MemberStats)
	members.GET("/draft", h.DraftMember)
	members.POST("", h.CreateMember)
	members.GET("/:id", h.GetMember)
	members.GET("/:id/draft", h.DraftMember)
	members.PUT("/:id", h.UpdateMember)
	members.DELETE("/:id", h.DeleteMember)
}

func addGroupRoutes(groups *gin.RouterGroup, h *handlers.GroupHandler) {
	groups.GET("", h.ListGroups)
	groups.GET("/stats", h.GroupStats)
	groups.GET("/draft", h.DraftGroup)
	groups.POST("", h.CreateGroup)
	groups.GET("/:id", h.GetGroup)
	groups.GET("/:id/draft", h.DraftGroup)
	groups.PUT("/:id", h.UpdateGroup)
	groups.DELETE("/:id", h.DeleteGroup)
}

func addCongregationRoutes(congregations *gin.RouterGroup, h *handlers.CongregationHandler) {
	congregations.GET("", h.ListCongregations)
	congregations.GET("/stats", h.CongregationStats)
	congregations.GET("/draft", h.DraftCongregation)
	congregations.POST("", h.CreateCongregation)
	congregations.GET("/:id", h.GetCongregation)
	congregations.GET("/:id/draft", h.DraftCongregation)
	congregations.PUT("/:id", h.UpdateCongregation)
	congregations.DELETE("/:id", h.DeleteCongregation)
}
