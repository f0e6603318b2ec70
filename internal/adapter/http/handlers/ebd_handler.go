package handlers

import (
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	response "gestao_igreja/internal/adapter/http/dto/response"
	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

const scopeEBD = "ebd"

// EBDHandler serves the Sunday school: classes, lessons, students and attendance.
// Lessons and students are answered with their class name resolved.
type EBDHandler struct {
	usecase usecase.IEBDUseCase
}

func NewEBDHandler(uc usecase.IEBDUseCase) *EBDHandler {
	return &EBDHandler{usecase: uc}
}

func (h *EBDHandler) ListClasses(c *gin.Context) {
	var q request.SearchQuery
	if !bindQuery(c, scopeEBD, &q) {
		return
	}
	classes, err := h.usecase.ListClasses(c.Request.Context(), q.Q)
	if err != nil {
		abortWithError(c, scopeEBD, "list-classes", err)
		return
	}
	c.JSON(http.StatusOK, response.NewList[entities.EBDClass](classes))
}

func (h *EBDHandler) GetClass(c *gin.Context) {
	id, ok := bindID(c, scopeEBD)
	if !ok {
		return
	}
	class, err := h.usecase.GetClass(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeEBD, "get-class", err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *EBDHandler) DraftClass(c *gin.Context) {
	id, ok := optionalID(c, scopeEBD)
	if !ok {
		return
	}
	if id == 0 {
		c.JSON(http.StatusOK, usecase.ClassForm{})
		return
	}
	class, err := h.usecase.GetClass(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeEBD, "draft-class", err)
		return
	}
	c.JSON(http.StatusOK, usecase.ClassFormFrom(class))
}

func (h *EBDHandler) CreateClass(c *gin.Context) {
	h.saveClass(c, 0)
}

func (h *EBDHandler) UpdateClass(c *gin.Context) {
	if id, ok := bindID(c, scopeEBD); ok {
		h.saveClass(c, id)
	}
}

func (h *EBDHandler) saveClass(c *gin.Context, id int64) {
	var form usecase.ClassForm
	if !bindJSON(c, scopeEBD, &form) {
		return
	}
	class, err := h.usecase.SaveClass(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeEBD, "save-class", err)
		return
	}
	writeSaved(c, id, class)
}

func (h *EBDHandler) DeleteClass(c *gin.Context) {
	id, ok := bindID(c, scopeEBD)
	if !ok {
		return
	}
	if err := h.usecase.DeleteClass(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeEBD, "delete-class", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordAttendance stores the topic taught to a class on a date.
func (h *EBDHandler) RecordAttendance(c *gin.Context) {
	var form usecase.AttendanceForm
	if !bindJSON(c, scopeEBD, &form) {
		return
	}
	class, err := h.usecase.RecordAttendance(c.Request.Context(), form)
	if err != nil {
		abortWithError(c, scopeEBD, "attendance", err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *EBDHandler) ListLessons(c *gin.Context) {
	var q request.EBDListQuery
	if !bindQuery(c, scopeEBD, &q) {
		return
	}
	lessons, err := h.usecase.ListLessons(c.Request.Context(), q.ToUseCase())
	if err != nil {
		abortWithError(c, scopeEBD, "list-lessons", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(lessons, response.FromLessonView))
}

func (h *EBDHandler) GetLesson(c *gin.Context) {
	id, ok := bindID(c, scopeEBD)
	if !ok {
		return
	}
	lesson, err := h.usecase.GetLesson(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeEBD, "get-lesson", err)
		return
	}
	c.JSON(http.StatusOK, response.FromLessonView(lesson))
}

func (h *EBDHandler) DraftLesson(c *gin.Context) {
	id, ok := optionalID(c, scopeEBD)
	if !ok {
		return
	}
	if id == 0 {
		c.JSON(http.StatusOK, usecase.LessonForm{})
		return
	}
	lesson, err := h.usecase.GetLesson(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeEBD, "draft-lesson", err)
		return
	}
	c.JSON(http.StatusOK, usecase.LessonFormFrom(lesson.Lesson))
}

func (h *EBDHandler) CreateLesson(c *gin.Context) {
	h.saveLesson(c, 0)
}

func (h *EBDHandler) UpdateLesson(c *gin.Context) {
	if id, ok := bindID(c, scopeEBD); ok {
		h.saveLesson(c, id)
	}
}

func (h *EBDHandler) saveLesson(c *gin.Context, id int64) {
	var form usecase.LessonForm
	if !bindJSON(c, scopeEBD, &form) {
		return
	}
	lesson, err := h.usecase.SaveLesson(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeEBD, "save-lesson", err)
		return
	}
	writeSaved(c, id, response.FromLessonView(lesson))
}

func (h *EBDHandler) DeleteLesson(c *gin.Context) {
	id, ok := bindID(c, scopeEBD)
	if !ok {
		return
	}
	if err := h.usecase.DeleteLesson(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeEBD, "delete-lesson", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EBDHandler) ListStudents(c *gin.Context) {
	var q request.EBDListQuery
	if !bindQuery(c, scopeEBD, &q) {
		return
	}
	students, err := h.usecase.ListStudents(c.Request.Context(), q.ToUseCase())
	if err != nil {
		abortWithError(c, scopeEBD, "list-students", err)
		return
	}
	c.JSON(http.StatusOK, response.MapList(students, response.FromStudentView))
}

func (h *EBDHandler) GetStudent(c *gin.Context) {
	id, ok := bindID(c, scopeEBD)
	if !ok {
		return
	}
	student, err := h.usecase.GetStudent(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, scopeEBD, "get-student", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudentView(student))
}

func (h *EBDHandler) CreateStudent(c *gin.Context) {
	h.saveStudent(c, 0)
}

func (h *EBDHandler) UpdateStudent(c *gin.Context) {
	if id, ok := bindID(c, scopeEBD); ok {
		h.saveStudent(c, id)
	}
}

func (h *EBDHandler) saveStudent(c *gin.Context, id int64) {
	var form usecase.StudentForm
	if !bindJSON(c, scopeEBD, &form) {
		return
	}
	student, err := h.usecase.SaveStudent(c.Request.Context(), id, form)
	if err != nil {
		abortWithError(c, scopeEBD, "save-student", err)
		return
	}
	writeSaved(c, id, response.FromStudentView(student))
}

func (h *EBDHandler) DeleteStudent(c *gin.Context) {
	id, ok := bindID(c, scopeEBD)
	if !ok {
		return
	}
	if err := h.usecase.DeleteStudent(c.Request.Context(), id, request.DeleteConfirmation(c)); err != nil {
		abortWithError(c, scopeEBD, "delete-student", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EBDHandler) EBDStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, scopeEBD, "stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
