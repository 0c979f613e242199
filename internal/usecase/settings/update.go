package settings

import (
	"context"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
	"github.com/BruksfildServices01/barberbook-api/internal/httperr"
)

type UpdateInput struct {
	ShopName    string
	SlotStepMin int
}

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *Update {
	return &Update{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *Update) Execute(
	ctx context.Context,
	userID uint,
	in UpdateInput,
) (*domain.Business, error) {

	if in.ShopName == "" || in.SlotStepMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_settings")
	}

	biz, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	biz.ShopName = in.ShopName
	biz.SlotStepMin = in.SlotStepMin

	if err := uc.repo.Put(ctx, biz); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "settings_updated",
		Entity: "settings",
	})

	return biz, nil
}
