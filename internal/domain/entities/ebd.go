package entities

// EBDClass is a Sunday-school class. Attendance is a percentage in [0, 100].
type EBDClass struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Teacher    string `json:"teacher" yaml:"teacher"`
	Students   int    `json:"students" yaml:"students"`
	Attendance int    `json:"attendance" yaml:"attendance"`
	Topic      string `json:"topic" yaml:"topic"`
	Schedule   string `json:"schedule" yaml:"schedule"`
}

func (c EBDClass) GetID() int64 { return c.ID }

type LessonStatus string

const (
	LessonStatusPlanejada LessonStatus = "Planejada"
	LessonStatusConcluida LessonStatus = "Concluída"
)

// Lesson belongs to a class through ClassID, a weak reference.
type Lesson struct {
	ID          int64        `json:"id" yaml:"id"`
	ClassID     int64        `json:"class_id" yaml:"class_id"`
	Title       string       `json:"title" yaml:"title"`
	Date        Date         `json:"date" yaml:"date"`
	Description string       `json:"description" yaml:"description"`
	Status      LessonStatus `json:"status" yaml:"status"`
}

func (l Lesson) GetID() int64 { return l.ID }

type StudentStatus string

const (
	StudentStatusAtivo   StudentStatus = "Ativo"
	StudentStatusInativo StudentStatus = "Inativo"
)

type Student struct {
	ID         int64         `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	ClassID    int64         `json:"class_id" yaml:"class_id"`
	Attendance int           `json:"attendance" yaml:"attendance"`
	Status     StudentStatus `json:"status" yaml:"status"`
}

func (s Student) GetID() int64 { return s.ID }
