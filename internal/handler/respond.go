package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/RaidLedger/internal/service"
)

// Error codes a frontend can branch on. The reason string in "error" is
// for display, the code in "code" is for logic.
const (
	CodeNotFound           = "not_found"
	CodePreconditionFailed = "precondition_failed"
	CodeValidationFailed   = "validation_failed"
	CodeUnauthorized       = "unauthorized"
	CodeForbidden          = "forbidden"
	CodeConflict           = "conflict"
	CodeInternal           = "internal"
)

func fail(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

func bindError(c *gin.Context, err error) {
	fail(c, http.StatusBadRequest, CodeValidationFailed, err.Error())
}

var notFoundErrs = []error{
	service.ErrUserNotFound,
	service.ErrRaidNotFound,
	service.ErrGroupNotFound,
	service.ErrJobNotFound,
	service.ErrPlayerNotFound,
	service.ErrItemNotFound,
	service.ErrItemTypeNotFound,
	service.ErrCurrencyNotFound,
	service.ErrSetNotFound,
	service.ErrScheduleNotFound,
}

var preconditionErrs = []error{
	service.ErrGroupFull,
	service.ErrAlreadyMember,
	service.ErrNotMember,
	service.ErrLeaderCannotLeave,
	service.ErrNoTargetSet,
	service.ErrSetAlreadyExists,
	service.ErrRequirementExists,
	service.ErrPlayerNotInGroup,
}

var validationErrs = []error{
	service.ErrItemLevelOutOfRange,
	service.ErrInvalidDistributionMethod,
	service.ErrItemLevelOutOfRaid,
	service.ErrInvalidIlvlRange,
	service.ErrFloorOutOfRange,
	service.ErrNonPositiveAmount,
	service.ErrNegativeWeeklyCap,
	service.ErrInvalidSetType,
	service.ErrDuplicateItem,
	service.ErrInvalidWeekday,
	service.ErrInvalidTime,
	service.ErrInvalidTimeRange,
}

var forbiddenErrs = []error{
	service.ErrNotSetOwner,
	service.ErrNotGroupLeader,
	service.ErrNotScheduleOwner,
}

// serviceError maps a service sentinel to its HTTP status and error code.
// Anything unmapped is an internal error and the raw message is withheld.
func serviceError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrs {
		if errors.Is(err, sentinel) {
			fail(c, http.StatusNotFound, CodeNotFound, err.Error())
			return
		}
	}
	for _, sentinel := range preconditionErrs {
		if errors.Is(err, sentinel) {
			fail(c, http.StatusConflict, CodePreconditionFailed, err.Error())
			return
		}
	}
	for _, sentinel := range validationErrs {
		if errors.Is(err, sentinel) {
			fail(c, http.StatusBadRequest, CodeValidationFailed, err.Error())
			return
		}
	}
	for _, sentinel := range forbiddenErrs {
		if errors.Is(err, sentinel) {
			fail(c, http.StatusForbidden, CodeForbidden, err.Error())
			return
		}
	}
	fail(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// currentUserID reads the user ID the auth middleware stored on the context
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		fail(c, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
		return "", false
	}
	return userID, true
}
