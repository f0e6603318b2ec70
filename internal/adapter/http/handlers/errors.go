package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gestao_igreja/internal/adapter/http/dto/request"
	"gestao_igreja/internal/usecase"
	"gestao_igreja/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

var notFoundErrors = []struct {
	err  error
	code string
	msg  string
}{
	{usecase.ErrMemberNotFound, "MEMBER_NOT_FOUND", "Member not found"},
	{usecase.ErrTransactionNotFound, "TRANSACTION_NOT_FOUND", "Transaction not found"},
	{usecase.ErrEventNotFound, "EVENT_NOT_FOUND", "Event not found"},
	{usecase.ErrBlockedDateNotFound, "BLOCKED_DATE_NOT_FOUND", "Blocked date not found"},
	{usecase.ErrRosterNotFound, "ROSTER_NOT_FOUND", "Roster not found"},
	{usecase.ErrGroupNotFound, "GROUP_NOT_FOUND", "Group not found"},
	{usecase.ErrClassNotFound, "CLASS_NOT_FOUND", "EBD class not found"},
	{usecase.ErrLessonNotFound, "LESSON_NOT_FOUND", "Lesson not found"},
	{usecase.ErrStudentNotFound, "STUDENT_NOT_FOUND", "Student not found"},
	{usecase.ErrCongregationNotFound, "CONGREGATION_NOT_FOUND", "Congregation not found"},
	{usecase.ErrAssetNotFound, "ASSET_NOT_FOUND", "Asset not found"},
	{usecase.ErrBeneficiaryNotFound, "BENEFICIARY_NOT_FOUND", "Beneficiary not found"},
	{usecase.ErrResourceNotFound, "RESOURCE_NOT_FOUND", "Resource not found"},
	{usecase.ErrUnknownAdvisoryTopic, "ADVISORY_TOPIC_NOT_FOUND", "Unknown advisory topic"},
}

func mapError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity).WithDetails(verr.Fields)
	}

	for _, nf := range notFoundErrors {
		if errors.Is(err, nf.err) {
			return pkg.NewDomainError(nf.code, nf.msg, err, http.StatusNotFound)
		}
	}

	switch {
	case errors.Is(err, request.ErrInvalidID), errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCalendarMonth):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid calendar month", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Delete must be confirmed with ?confirm=true", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrEventConflict):
		return pkg.NewDomainErrorSimple("EVENT_CONFLICT", "Já existe um evento neste horário e local", http.StatusConflict)
	case errors.Is(err, usecase.ErrDateBlocked):
		return pkg.NewDomainErrorSimple("DATE_BLOCKED", "Esta data está bloqueada para eventos", http.StatusConflict)
	case errors.Is(err, usecase.ErrAdvisoryBusy):
		return pkg.NewDomainErrorSimple("ADVISORY_BUSY", "Advisory generation already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoRecipients):
		return pkg.NewDomainErrorSimple("NO_RECIPIENTS", "No roster member has a registered e-mail", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainError("NOTIFICATION_FAILED", "Erro ao enviar notificação.", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// abortWithError logs under scope ("member", "event", ...) and writes the mapped error.
func abortWithError(c *gin.Context, scope, op string, err error) {
	appErr := mapError(err)
	log.Printf("[%s][handler] %s failed status=%d code=%s err=%v", scope, op, appErr.HTTPStatus, appErr.Code, err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWithAppError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindID reads :id and writes 400 itself when it is not valid.
func bindID(c *gin.Context, scope string) (int64, bool) {
	id, err := request.ParseID(c)
	if err != nil {
		abortWithError(c, scope, "parse-id", err)
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, scope string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Printf("[%s][handler] invalid payload err=%v", scope, err)
		abortWithAppError(c, errInvalidPayload)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, scope string, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.Printf("[%s][handler] invalid query err=%v", scope, err)
		abortWithAppError(c, errInvalidQuery)
		return false
	}
	return true
}

// writeSaved answers 201 for creates (id 0) and 200 for updates.
func writeSaved(c *gin.Context, id int64, body any) {
	if id == 0 {
		c.JSON(http.StatusCreated, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

// optionalID is bindID for routes registered both with and without :id.
func optionalID(c *gin.Context, scope string) (int64, bool) {
	if c.Param("id") == "" {
		return 0, true
	}
	return bindID(c, scope)
}
