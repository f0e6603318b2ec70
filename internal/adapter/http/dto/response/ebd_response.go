package response

import "gestao_igreja/internal/usecase"

type LessonResponse struct {
	ID          int64  `json:"id"`
	ClassID     int64  `json:"class_id"`
	ClassName   string `json:"class_name"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func FromLessonView(v usecase.LessonView) LessonResponse {
	return LessonResponse{
		ID:          v.ID,
		ClassID:     v.ClassID,
		ClassName:   v.ClassName,
		Title:       v.Title,
		Date:        v.Date.ISO(),
		DateDisplay: v.Date.Display(),
		Description: v.Description,
		Status:      string(v.Status),
	}
}

type StudentResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ClassID    int64  `json:"class_id"`
	ClassName  string `json:"class_name"`
	Attendance int    `json:"attendance"`
	Status     string `json:"status"`
}

func FromStudentView(v usecase.StudentView) StudentResponse {
	return StudentResponse{
		ID:         v.ID,
		Name:       v.Name,
		ClassID:    v.ClassID,
		ClassName:  v.ClassName,
		Attendance: v.Attendance,
		Status:     string(v.Status),
	}
}
