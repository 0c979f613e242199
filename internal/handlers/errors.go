package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
)

func asBusiness(err error, target *httperr.BusinessError) bool {
	return errors.As(err, target)
}

// mapBookingErrors traduz os resultados do use case de booking.
// slot_taken é 409: resultado esperado de uma corrida perdida; o cliente
// deve rebuscar a lista de horários (o slot mostrado já foi tomado).
func mapBookingErrors(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !asBusiness(err, &be) {
		httperr.Internal(c, "booking_failed", "Erro ao criar agendamento.")
		return
	}

	switch be.Code {
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, be.Code, "O horário acabou de ser ocupado. Atualize os horários disponíveis.")
	case httperr.CodeDayClosed:
		httperr.BadRequest(c, be.Code, "A loja não abre nesse dia.")
	case httperr.CodeOutsideWorkingHours:
		httperr.BadRequest(c, be.Code, "Horário fora do expediente.")
	case httperr.CodeTimeInPast:
		httperr.BadRequest(c, be.Code, "Esse horário já passou.")
	case httperr.CodeInvalidDateOrTime:
		httperr.BadRequest(c, be.Code, "Data ou horário inválidos.")
	case httperr.CodeServiceNotFound:
		httperr.BadRequest(c, be.Code, "Serviço inválido.")
	default:
		httperr.BadRequest(c, be.Code, "Não foi possível criar o agendamento.")
	}
}
