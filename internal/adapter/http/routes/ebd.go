package routes

import (
	"gestao_igreja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEBD = "/ebd"

func addEBDRoutes(rg *gin.RouterGroup, h *handlers.EBDHandler) {
	ebd := rg.Group(PathEBD)
	ebd.GET("/stats", h.EBDStats)
	ebd.POST("/attendance", h.RecordAttendance)

	classes := ebd.Group("/classes")
	{
		classes.GET("", h.ListClasses)
		classes.GET("/draft", h.DraftClass)
		classes.POST("", h.CreateClass)
		classes.GET("/:id", h.GetClass)
		classes.GET("/:id/draft", h.DraftClass)
		classes.PUT("/:id", h.UpdateClass)
		classes.DELETE("/:id", h.DeleteClass)
	}

	lessons := ebd.Group("/lessons")
	{
		lessons.GET("", h.ListLessons)
		lessons.GET("/draft", h.DraftLesson)
		lessons.POST("", h.CreateLesson)
		lessons.GET("/:id", h.GetLesson)
		lessons.GET("/:id/draft", h.DraftLesson)
		lessons.PUT("/:id", h.UpdateLesson)
		lessons.DELETE("/:id", h.DeleteLesson)
	}

	students := ebd.Group("/students")
	{
		students.GET("", h.ListStudents)
		students.POST("", h.CreateStudent)
		students.GET("/:id", h.GetStudent)
		students.PUT("/:id", h.UpdateStudent)
		students.DELETE("/:id", h.DeleteStudent)
	}
}
