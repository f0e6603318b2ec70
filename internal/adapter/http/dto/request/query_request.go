package request

import (
	"errors"
	"strconv"
	"strings"

	"gestao_igreja/internal/usecase"

	"github.com/gin-gonic/gin"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID reads the :id path parameter. It must be a positive integer.
func ParseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// DeleteConfirmation turns the ?confirm query flag into the use-case confirmation.
// Any value strconv.ParseBool accepts as true confirms.
func DeleteConfirmation(c *gin.Context) usecase.ConfirmFunc {
	ok, _ := strconv.ParseBool(c.Query("confirm"))
	return func() bool { return ok }
}

type SearchQuery struct {
	Q string `form:"q"`
}

type MemberListQuery struct {
	Q       string `form:"q"`
	Status  string `form:"status"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

func (q MemberListQuery) ToUseCase() usecase.MemberQuery {
	return usecase.MemberQuery{Search: q.Q, Status: q.Status, Page: q.Page, PerPage: q.PerPage}
}

type TransactionListQuery struct {
	Q      string `form:"q"`
	Type   string `form:"type"`
	Status string `form:"status"`
}

func (q TransactionListQuery) ToUseCase() usecase.TransactionQuery {
	return usecase.TransactionQuery{Search: q.Q, Type: q.Type, Status: q.Status}
}

type EventListQuery struct {
	Q    string `form:"q"`
	Type string `form:"type"`
}

func (q EventListQuery) ToUseCase() usecase.EventQuery {
	return usecase.EventQuery{Search: q.Q, Type: q.Type}
}

type RosterListQuery struct {
	Q      string `form:"q"`
	Status string `form:"status"`
}

func (q RosterListQuery) ToUseCase() usecase.RosterQuery {
	return usecase.RosterQuery{Search: q.Q, Status: q.Status}
}

type AssetListQuery struct {
	Q         string `form:"q"`
	Category  string `form:"category"`
	Condition string `form:"condition"`
}

func (q AssetListQuery) ToUseCase() usecase.AssetQuery {
	return usecase.AssetQuery{Search: q.Q, Category: q.Category, Condition: q.Condition}
}

type EBDListQuery struct {
	Q       string `form:"q"`
	ClassID int64  `form:"class_id"`
}

func (q EBDListQuery) ToUseCase() usecase.EBDQuery {
	return usecase.EBDQuery{Search: q.Q, ClassID: q.ClassID}
}

// CalendarQuery: zero year/month select the current month.
type CalendarQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}
