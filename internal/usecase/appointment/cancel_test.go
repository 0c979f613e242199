package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
)

func TestCancelFreesSlotForRebooking(t *testing.T) {
	repo := newMemRepo(corte())
	book := newBookUC(repo)
	cancel := NewCancel(repo, audit.NewDispatcher(nil))

	ap, err := book.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-05", Time: "10:00",
	})
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	// Cancel-and-rebook: o mesmo slot volta a aceitar reserva
	_, err = book.Execute(context.Background(), BookInput{
		CustomerName: "b", CustomerPhone: "0542222222",
		ServiceID: 1, Date: "2024-03-05", Time: "10:00",
	})
	assert.NoError(t, err)
}

func TestCancelUnknownAppointment(t *testing.T) {
	cancel := NewCancel(newMemRepo(), audit.NewDispatcher(nil))

	_, err := cancel.Execute(context.Background(), 1, 42)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestCancelByCode(t *testing.T) {
	repo := newMemRepo(corte())
	book := newBookUC(repo)
	cancel := NewCancelByCode(repo, audit.NewDispatcher(nil))

	ap, err := book.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-05", Time: "10:00",
	})
	require.NoError(t, err)

	// Telefone errado não revela nada
	_, err = cancel.Execute(context.Background(), ap.Code, "0549999999")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))

	// Telefone em formato local casa com o normalizado gravado
	got, err := cancel.Execute(context.Background(), ap.Code, "054-111-1111")
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)

	_, err = repo.GetAppointmentByCode(context.Background(), ap.Code)
	assert.Error(t, err)
}
