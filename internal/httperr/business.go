package httperr

import "errors"

// Erros de negócio são resultados esperados (slot ocupado, fora do
// expediente), nunca exceções; um erro de I/O chega como erro comum,
// categoria distinta, e o caller decide retry.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Códigos usados pelo core de booking
const (
	CodeSlotTaken           = "slot_taken"
	CodeDayClosed           = "day_closed"
	CodeOutsideWorkingHours = "outside_working_hours"
	CodeTimeInPast          = "time_in_past"
	CodeInvalidDateOrTime   = "invalid_date_or_time"
	CodeServiceNotFound     = "service_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
)
