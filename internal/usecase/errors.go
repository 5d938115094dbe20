package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUnauthenticated           = errors.New("user not found in context")
	ErrDoctorNotFound            = errors.New("doctor not found")
	ErrPatientNotFound           = errors.New("patient profile not found")
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrWorkingHourNotFound       = errors.New("working hour not found")
	ErrAvailabilityBlockNotFound = errors.New("availability block not found")
	ErrNotOwner                  = errors.New("resource does not belong to you")
	ErrSlotNotAvailable          = errors.New("slot is not available")
	ErrAppointmentInPast         = errors.New("cannot book an appointment in the past")
	ErrInvalidStatusTransition   = errors.New("appointment status does not allow this action")
	ErrInvalidStatus             = errors.New("invalid appointment status")
	ErrInvalidTimeRange          = errors.New("start must be before end")
	ErrInvalidDateFormat         = errors.New("invalid date format, expected yyyy-MM-dd")
	ErrInvalidTimeFormat         = errors.New("invalid time format, expected HH:mm")
	ErrInvalidDaysAhead          = errors.New("daysAhead is out of range")
	ErrInvalidMode               = errors.New("unknown availability mode")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint containing constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
