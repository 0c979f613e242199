package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	"github.com/BruksfildServices01/barberbook-api/internal/clock"
	settingsdomain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
	"github.com/BruksfildServices01/barberbook-api/internal/models"
)

// ======================================================
// FAKES EM MEMÓRIA
// ======================================================

// memRepo reproduz o contrato do repositório real, índice único
// (date, time) incluso: segundo insert na mesma chave vira slot_taken.
type memRepo struct {
	mu       sync.Mutex
	services map[uint]models.Service
	byKey    map[string]models.Appointment // date|time
	nextID   uint
}

func newMemRepo(services ...models.Service) *memRepo {
	r := &memRepo{
		services: map[uint]models.Service{},
		byKey:    map[string]models.Appointment{},
	}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *memRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return &s, nil
}

// outageRepo simula o banco fora do ar na consulta do serviço.
type outageRepo struct {
	*memRepo
}

func (r outageRepo) GetService(_ context.Context, _ uint) (*models.Service, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func (r *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ap.Date + "|" + ap.Time
	if _, exists := r.byKey[key]; exists {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	r.nextID++
	ap.ID = r.nextID
	r.byKey[key] = *ap
	return nil
}

func (r *memRepo) ListAppointmentsForDate(_ context.Context, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range r.byKey {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memRepo) ListAppointmentsForMonth(_ context.Context, yearMonth string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range r.byKey {
		if len(ap.Date) >= 7 && ap.Date[:7] == yearMonth {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memRepo) ListAppointmentsForPhone(_ context.Context, phone string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range r.byKey {
		if ap.CustomerPhone == phone {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.byKey {
		if ap.ID == id {
			cp := ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (r *memRepo) GetAppointmentByCode(_ context.Context, code string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.byKey {
		if ap.Code == code {
			cp := ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (r *memRepo) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, ap := range r.byKey {
		if ap.ID == id {
			delete(r.byKey, key)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

type memSettings struct {
	mu  sync.Mutex
	biz settingsdomain.Business
}

func (r *memSettings) Get(_ context.Context) (*settingsdomain.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := r.biz
	return &cp, nil
}

func (r *memSettings) Put(_ context.Context, b *settingsdomain.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.biz = *b
	return nil
}

// ======================================================
// SETUP
// ======================================================

// Segunda-feira de manhã; as reservas dos testes miram a terça seguinte.
var fixedNow = time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

func newBookUC(repo *memRepo) *Book {
	st := &memSettings{biz: settingsdomain.Defaults()}
	return NewBook(repo, st, clock.Fixed{T: fixedNow}, audit.NewDispatcher(nil))
}

func corte() models.Service {
	return models.Service{ID: 1, Name: "תספורת גברים", DurationMin: 30, Price: 60, Active: true}
}

// ======================================================
// TESTES
// ======================================================

func TestBookSuccess(t *testing.T) {
	repo := newMemRepo(corte())
	uc := newBookUC(repo)

	ap, err := uc.Execute(context.Background(), BookInput{
		CustomerName:  "דני",
		CustomerPhone: "0541234567",
		ServiceID:     1,
		Date:          "2024-03-05",
		Time:          "10:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ap.Code)
	assert.Equal(t, "+972541234567", ap.CustomerPhone)

	// Snapshot do serviço copiado por valor
	assert.Equal(t, "תספורת גברים", ap.ServiceName)
	assert.Equal(t, 30, ap.ServiceDurationMin)
	assert.Equal(t, 60.0, ap.Price)
}

func TestBookSlotTakenExactTime(t *testing.T) {
	repo := newMemRepo(corte())
	uc := newBookUC(repo)

	_, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-05", Time: "10:00",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), BookInput{
		CustomerName: "b", CustomerPhone: "0542222222",
		ServiceID: 1, Date: "2024-03-05", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

func TestBookSlotTakenOverlap(t *testing.T) {
	repo := newMemRepo(corte())
	uc := newBookUC(repo)

	_, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-05", Time: "10:00",
	})
	require.NoError(t, err)

	// 10:15–10:45 invade 10:00–10:30 mesmo sem começar junto
	_, err = uc.Execute(context.Background(), BookInput{
		CustomerName: "b", CustomerPhone: "0542222222",
		ServiceID: 1, Date: "2024-03-05", Time: "10:15",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	// Encostado no fim é livre
	_, err = uc.Execute(context.Background(), BookInput{
		CustomerName: "c", CustomerPhone: "0543333333",
		ServiceID: 1, Date: "2024-03-05", Time: "10:30",
	})
	assert.NoError(t, err)
}

func TestBookDayClosed(t *testing.T) {
	uc := newBookUC(newMemRepo(corte()))

	// 2024-03-09 é sábado (fechado no default)
	_, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-09", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDayClosed))
}

func TestBookOutsideWorkingHours(t *testing.T) {
	uc := newBookUC(newMemRepo(corte()))

	tests := []struct {
		name string
		time string
	}{
		{"antes da abertura", "08:30"},
		{"estoura o fim do turno", "18:45"}, // 18:45 + 30 > 19:00
		{"depois do fechamento", "20:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), BookInput{
				CustomerName: "a", CustomerPhone: "0541111111",
				ServiceID: 1, Date: "2024-03-05", Time: tt.time,
			})
			assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideWorkingHours))
		})
	}

	// Último encaixe exato do turno é válido
	_, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-05", Time: "18:30",
	})
	assert.NoError(t, err)
}

func TestBookTimeInPast(t *testing.T) {
	uc := newBookUC(newMemRepo(corte()))

	// Data passada
	_, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-02-26", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeInPast))

	// Hoje, antes do relógio: com o relógio fixo ao meio-dia, a manhã
	// do próprio dia já passou
	ucNoon := NewBook(
		newMemRepo(corte()),
		&memSettings{biz: settingsdomain.Defaults()},
		clock.Fixed{T: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)},
		audit.NewDispatcher(nil),
	)
	_, err = ucNoon.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-04", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeTimeInPast))

	// Hoje, depois do relógio
	_, err = ucNoon.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-04", Time: "14:00",
	})
	assert.NoError(t, err)
}

func TestBookInvalidInput(t *testing.T) {
	uc := newBookUC(newMemRepo(corte()))

	for _, tt := range []struct{ date, hm string }{
		{"05/03/2024", "10:00"},
		{"2024-03-05", "25:00"},
		{"2024-03-05", "abc"},
	} {
		_, err := uc.Execute(context.Background(), BookInput{
			CustomerName: "a", CustomerPhone: "0541111111",
			ServiceID: 1, Date: tt.date, Time: tt.hm,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime),
			"date=%s time=%s", tt.date, tt.hm)
	}
}

func TestBookServiceNotFoundOrInactive(t *testing.T) {
	inactive := corte()
	inactive.ID = 2
	inactive.Active = false

	uc := newBookUC(newMemRepo(corte(), inactive))

	_, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 99, Date: "2024-03-05", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))

	_, err = uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 2, Date: "2024-03-05", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

// A chave (date, time) é comparada como string crua no índice único;
// formas não acolchoadas ("9:30", "2024-3-5") têm que virar a forma
// canônica antes do insert, senão são chaves distintas do mesmo slot.
func TestBookCanonicalizesDateAndTime(t *testing.T) {
	repo := newMemRepo(corte())
	uc := newBookUC(repo)

	ap, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-3-5", Time: "9:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", ap.Date)
	assert.Equal(t, "09:30", ap.Time)

	// A forma acolchoada disputa a MESMA chave
	_, err = uc.Execute(context.Background(), BookInput{
		CustomerName: "b", CustomerPhone: "0542222222",
		ServiceID: 1, Date: "2024-03-05", Time: "09:30",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))

	// E vice-versa: canônica primeiro, crua depois
	_, err = uc.Execute(context.Background(), BookInput{
		CustomerName: "c", CustomerPhone: "0543333333",
		ServiceID: 1, Date: "2024-03-05", Time: "11:00",
	})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), BookInput{
		CustomerName: "d", CustomerPhone: "0544444444",
		ServiceID: 1, Date: "2024-3-5", Time: "11:0",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

// Queda do banco na consulta do serviço não pode virar service_not_found:
// erro de I/O sobe como veio e o caller decide retry.
func TestBookServiceLookupOutage(t *testing.T) {
	uc := NewBook(
		outageRepo{newMemRepo(corte())},
		&memSettings{biz: settingsdomain.Defaults()},
		clock.Fixed{T: fixedNow},
		audit.NewDispatcher(nil),
	)

	_, err := uc.Execute(context.Background(), BookInput{
		CustomerName: "a", CustomerPhone: "0541111111",
		ServiceID: 1, Date: "2024-03-05", Time: "10:00",
	})
	require.Error(t, err)
	assert.False(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

// Duas reservas simultâneas do mesmo slot: exatamente uma vence, a outra
// recebe slot_taken — o índice único decide o empate que a releitura não viu.
func TestBookConcurrentSameSlot(t *testing.T) {
	repo := newMemRepo(corte())
	uc := newBookUC(repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), BookInput{
				CustomerName:  "cliente",
				CustomerPhone: "0541111111",
				ServiceID:     1,
				Date:          "2024-03-05",
				Time:          "10:00",
			})
		}(i)
	}
	wg.Wait()

	ok, taken := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			taken++
		default:
			t.Fatalf("erro inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, taken)

	stored, err := repo.ListAppointmentsForDate(context.Background(), "2024-03-05")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
