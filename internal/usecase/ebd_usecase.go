package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"gestao_igreja/internal/domain/entities"
	"gestao_igreja/internal/usecase/interfaces"
)

var (
	ErrClassNotFound   = errors.New("ebd class not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrStudentNotFound = errors.New("student not found")
)

type EBDQuery struct {
	Search  string
	ClassID int64
}

type EBDStats struct {
	Classes           int `json:"classes"`
	TotalStudents     int `json:"total_students"`
	AverageAttendance int `json:"average_attendance"`
	LessonsPlanned    int `json:"lessons_planned"`
	LessonsCompleted  int `json:"lessons_completed"`
}

// LessonView is a lesson with its class reference resolved for display.
type LessonView struct {
	entities.Lesson
	ClassName string `json:"class_name"`
}

type StudentView struct {
	entities.Student
	ClassName string `json:"class_name"`
}

type ClassForm struct {
	Name       string      `json:"name" validate:"required"`
	Teacher    string      `json:"teacher" validate:"required"`
	Students   NumberInput `json:"students" validate:"omitempty,number"`
	Attendance NumberInput `json:"attendance" validate:"omitempty,number"`
	Topic      string      `json:"topic"`
	Schedule   string      `json:"schedule"`
}

type LessonForm struct {
	ClassID     int64  `json:"class_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=Planejada Concluída"`
}

type StudentForm struct {
	Name       string      `json:"name" validate:"required"`
	ClassID    int64       `json:"class_id" validate:"required"`
	Attendance NumberInput `json:"attendance" validate:"omitempty,number"`
	Status     string      `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

// AttendanceForm is "Registrar Frequência": the lesson topic given to a class on a date.
type AttendanceForm struct {
	ClassID int64  `json:"class_id" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Topic   string `json:"topic" validate:"required"`
}

func ClassFormFrom(c entities.EBDClass) ClassForm {
	return ClassForm{
		Name:       c.Name,
		Teacher:    c.Teacher,
		Students:   NumberInput(itoa(c.Students)),
		Attendance: NumberInput(itoa(c.Attendance)),
		Topic:      c.Topic,
		Schedule:   c.Schedule,
	}
}

func LessonFormFrom(l entities.Lesson) LessonForm {
	return LessonForm{
		ClassID:     l.ClassID,
		Title:       l.Title,
		Date:        l.Date.ISO(),
		Description: l.Description,
		Status:      string(l.Status),
	}
}

func StudentFormFrom(s entities.Student) StudentForm {
	return StudentForm{
		Name:       s.Name,
		ClassID:    s.ClassID,
		Attendance: NumberInput(itoa(s.Attendance)),
		Status:     string(s.Status),
	}
}

type IEBDUseCase interface {
	ListClasses(ctx context.Context, search string) ([]entities.EBDClass, error)
	GetClass(ctx context.Context, id int64) (entities.EBDClass, error)
	SaveClass(ctx context.Context, id int64, form ClassForm) (entities.EBDClass, error)
	DeleteClass(ctx context.Context, id int64, confirm ConfirmFunc) error
	RecordAttendance(ctx context.Context, form AttendanceForm) (entities.EBDClass, error)

	ListLessons(ctx context.Context, q EBDQuery) ([]LessonView, error)
	GetLesson(ctx context.Context, id int64) (LessonView, error)
	SaveLesson(ctx context.Context, id int64, form LessonForm) (LessonView, error)
	DeleteLesson(ctx context.Context, id int64, confirm ConfirmFunc) error

	ListStudents(ctx context.Context, q EBDQuery) ([]StudentView, error)
	GetStudent(ctx context.Context, id int64) (StudentView, error)
	SaveStudent(ctx context.Context, id int64, form StudentForm) (StudentView, error)
	DeleteStudent(ctx context.Context, id int64, confirm ConfirmFunc) error

	Stats(ctx context.Context) (EBDStats, error)
}

type EBDUseCase struct {
	classes  interfaces.IStore[entities.EBDClass]
	lessons  interfaces.IStore[entities.Lesson]
	students interfaces.IStore[entities.Student]
}

var _ IEBDUseCase = (*EBDUseCase)(nil)

func NewEBDUseCase(classes interfaces.IStore[entities.EBDClass], lessons interfaces.IStore[entities.Lesson], students interfaces.IStore[entities.Student]) *EBDUseCase {
	return &EBDUseCase{classes: classes, lessons: lessons, students: students}
}

func (u *EBDUseCase) ListClasses(ctx context.Context, search string) ([]entities.EBDClass, error) {
	classes, err := listRecords(ctx, u.classes)
	if err != nil {
		return nil, err
	}
	return Search(classes, search, func(c entities.EBDClass) []string {
		return []string{c.Name, c.Teacher}
	}), nil
}

func (u *EBDUseCase) GetClass(ctx context.Context, id int64) (entities.EBDClass, error) {
	return getRecord(ctx, u.classes, id, ErrClassNotFound)
}

func (u *EBDUseCase) SaveClass(ctx context.Context, id int64, form ClassForm) (entities.EBDClass, error) {
	if err := validateForm(form); err != nil {
		return entities.EBDClass{}, err
	}
	students, err := optionalInt("students", form.Students)
	if err != nil {
		return entities.EBDClass{}, err
	}
	attendance, err := optionalInt("attendance", form.Attendance)
	if err != nil {
		return entities.EBDClass{}, err
	}
	if attendance < 0 || attendance > 100 {
		return entities.EBDClass{}, invalidField("attendance", "max")
	}

	merge := func(c entities.EBDClass) entities.EBDClass {
		c.Name = strings.TrimSpace(form.Name)
		c.Teacher = strings.TrimSpace(form.Teacher)
		c.Students = students
		c.Attendance = attendance
		c.Topic = strings.TrimSpace(form.Topic)
		c.Schedule = strings.TrimSpace(form.Schedule)
		return c
	}
	if id != 0 {
		return updateRecord(ctx, u.classes, id, merge, ErrClassNotFound)
	}
	created, err := u.classes.Create(ctx, merge(entities.EBDClass{}))
	if err != nil {
		return entities.EBDClass{}, err
	}
	log.Printf("[ebd][usecase] created class_id=%d", created.ID)
	return created, nil
}

// DeleteClass leaves lessons and students pointing at the removed class; they are
// displayed with MissingClassName.
func (u *EBDUseCase) DeleteClass(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.classes, id, confirm, ErrClassNotFound)
}

func (u *EBDUseCase) RecordAttendance(ctx context.Context, form AttendanceForm) (entities.EBDClass, error) {
	if err := validateForm(form); err != nil {
		return entities.EBDClass{}, err
	}
	if _, err := parseFormDate("date", form.Date); err != nil {
		return entities.EBDClass{}, err
	}
	topic := strings.TrimSpace(form.Topic)
	updated, err := updateRecord(ctx, u.classes, form.ClassID, func(c entities.EBDClass) entities.EBDClass {
		c.Topic = topic
		return c
	}, ErrClassNotFound)
	if err != nil {
		return entities.EBDClass{}, err
	}
	log.Printf("[ebd][usecase] attendance recorded class_id=%d date=%s", updated.ID, form.Date)
	return updated, nil
}

func (u *EBDUseCase) ListLessons(ctx context.Context, q EBDQuery) ([]LessonView, error) {
	lessons, err := listRecords(ctx, u.lessons)
	if err != nil {
		return nil, err
	}
	classes, err := listRecords(ctx, u.classes)
	if err != nil {
		return nil, err
	}
	visible := Search(lessons, q.Search, func(l entities.Lesson) []string {
		return []string{l.Title, l.Description}
	})
	visible = Where(visible, func(l entities.Lesson) bool { return q.ClassID == 0 || l.ClassID == q.ClassID })

	out := make([]LessonView, 0, len(visible))
	for _, l := range visible {
		out = append(out, LessonView{Lesson: l, ClassName: className(classes, l.ClassID)})
	}
	return out, nil
}

func (u *EBDUseCase) GetLesson(ctx context.Context, id int64) (LessonView, error) {
	l, err := getRecord(ctx, u.lessons, id, ErrLessonNotFound)
	if err != nil {
		return LessonView{}, err
	}
	return u.lessonView(ctx, l)
}

// SaveLesson does not require ClassID to exist; the reference is weak.
func (u *EBDUseCase) SaveLesson(ctx context.Context, id int64, form LessonForm) (LessonView, error) {
	if err := validateForm(form); err != nil {
		return LessonView{}, err
	}
	date, err := parseFormDate("date", form.Date)
	if err != nil {
		return LessonView{}, err
	}
	status := entities.LessonStatus(orDefault(form.Status, string(entities.LessonStatusPlanejada)))

	merge := func(l entities.Lesson) entities.Lesson {
		l.ClassID = form.ClassID
		l.Title = strings.TrimSpace(form.Title)
		l.Date = date
		l.Description = strings.TrimSpace(form.Description)
		l.Status = status
		return l
	}

	var saved entities.Lesson
	if id != 0 {
		saved, err = updateRecord(ctx, u.lessons, id, merge, ErrLessonNotFound)
	} else {
		saved, err = u.lessons.Create(ctx, merge(entities.Lesson{}))
		if err == nil {
			log.Printf("[ebd][usecase] created lesson_id=%d class_id=%d", saved.ID, saved.ClassID)
		}
	}
	if err != nil {
		return LessonView{}, err
	}
	return u.lessonView(ctx, saved)
}

func (u *EBDUseCase) DeleteLesson(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.lessons, id, confirm, ErrLessonNotFound)
}

func (u *EBDUseCase) ListStudents(ctx context.Context, q EBDQuery) ([]StudentView, error) {
	students, err := listRecords(ctx, u.students)
	if err != nil {
		return nil, err
	}
	classes, err := listRecords(ctx, u.classes)
	if err != nil {
		return nil, err
	}
	visible := Search(students, q.Search, func(s entities.Student) []string { return []string{s.Name} })
	visible = Where(visible, func(s entities.Student) bool { return q.ClassID == 0 || s.ClassID == q.ClassID })

	out := make([]StudentView, 0, len(visible))
	for _, s := range visible {
		out = append(out, StudentView{Student: s, ClassName: className(classes, s.ClassID)})
	}
	return out, nil
}

func (u *EBDUseCase) GetStudent(ctx context.Context, id int64) (StudentView, error) {
	s, err := getRecord(ctx, u.students, id, ErrStudentNotFound)
	if err != nil {
		return StudentView{}, err
	}
	return u.studentView(ctx, s)
}

func (u *EBDUseCase) SaveStudent(ctx context.Context, id int64, form StudentForm) (StudentView, error) {
	if err := validateForm(form); err != nil {
		return StudentView{}, err
	}
	attendance, err := optionalInt("attendance", form.Attendance)
	if err != nil {
		return StudentView{}, err
	}
	if attendance < 0 || attendance > 100 {
		return StudentView{}, invalidField("attendance", "max")
	}
	status := entities.StudentStatus(orDefault(form.Status, string(entities.StudentStatusAtivo)))

	merge := func(s entities.Student) entities.Student {
		s.Name = strings.TrimSpace(form.Name)
		s.ClassID = form.ClassID
		s.Attendance = attendance
		s.Status = status
		return s
	}

	var saved entities.Student
	if id != 0 {
		saved, err = updateRecord(ctx, u.students, id, merge, ErrStudentNotFound)
	} else {
		saved, err = u.students.Create(ctx, merge(entities.Student{}))
		if err == nil {
			log.Printf("[ebd][usecase] created student_id=%d class_id=%d", saved.ID, saved.ClassID)
		}
	}
	if err != nil {
		return StudentView{}, err
	}
	return u.studentView(ctx, saved)
}

func (u *EBDUseCase) DeleteStudent(ctx context.Context, id int64, confirm ConfirmFunc) error {
	return deleteRecord(ctx, u.students, id, confirm, ErrStudentNotFound)
}

func (u *EBDUseCase) Stats(ctx context.Context) (EBDStats, error) {
	classes, err := listRecords(ctx, u.classes)
	if err != nil {
		return EBDStats{}, err
	}
	lessons, err := listRecords(ctx, u.lessons)
	if err != nil {
		return EBDStats{}, err
	}
	return ComputeEBDStats(classes, lessons), nil
}

func (u *EBDUseCase) lessonView(ctx context.Context, l entities.Lesson) (LessonView, error) {
	classes, err := listRecords(ctx, u.classes)
	if err != nil {
		return LessonView{}, err
	}
	return LessonView{Lesson: l, ClassName: className(classes, l.ClassID)}, nil
}

func (u *EBDUseCase) studentView(ctx context.Context, s entities.Student) (StudentView, error) {
	classes, err := listRecords(ctx, u.classes)
	if err != nil {
		return StudentView{}, err
	}
	return StudentView{Student: s, ClassName: className(classes, s.ClassID)}, nil
}

func className(classes []entities.EBDClass, id int64) string {
	if c, ok := Resolve(classes, id); ok {
		return c.Name
	}
	return MissingClassName
}

// ComputeEBDStats: average attendance is the rounded mean of the class percentages,
// 0 with no classes.
func ComputeEBDStats(classes []entities.EBDClass, lessons []entities.Lesson) EBDStats {
	s := EBDStats{Classes: len(classes)}
	attendance := 0
	for _, c := range classes {
		s.TotalStudents += c.Students
		attendance += c.Attendance
	}
	s.AverageAttendance = roundedMean(attendance, len(classes))
	for _, l := range lessons {
		switch l.Status {
		case entities.LessonStatusPlanejada:
			s.LessonsPlanned++
		case entities.LessonStatusConcluida:
			s.LessonsCompleted++
		}
	}
	return s
}
