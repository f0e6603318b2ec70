package entities

type CongregationStatus string

const (
	CongregationStatusAtiva         CongregationStatus = "Ativa"
	CongregationStatusEmCrescimento CongregationStatus = "Em Crescimento"
	CongregationStatusInativa       CongregationStatus = "Inativa"
)

const DefaultCongregationImage = "https://images.unsplash.com/photo-1438232992991-995b7058bbb3?q=80&w=2073&auto=format&fit=crop"

// Congregation is a branch of the church. Founded holds the year as text.
type Congregation struct {
	ID      int64              `json:"id" yaml:"id"`
	Name    string             `json:"name" yaml:"name"`
	Address string             `json:"address" yaml:"address"`
	Leader  string             `json:"leader" yaml:"leader"`
	Members int                `json:"members" yaml:"members"`
	Founded string             `json:"founded" yaml:"founded"`
	Phone   string             `json:"phone" yaml:"phone"`
	Email   string             `json:"email" yaml:"email"`
	Status  CongregationStatus `json:"status" yaml:"status"`
	Image   string             `json:"image" yaml:"image"`
}

func (c Congregation) GetID() int64 { return c.ID }
