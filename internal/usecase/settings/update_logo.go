package settings

import (
	"context"

	"github.com/BruksfildServices01/barberbook-api/internal/audit"
	domain "github.com/BruksfildServices01/barberbook-api/internal/domain/settings"
)

type UpdateLogo struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateLogo(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *UpdateLogo {
	return &UpdateLogo{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *UpdateLogo) Execute(
	ctx context.Context,
	userID uint,
	logoURL string,
) (*domain.Business, error) {

	biz, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	biz.LogoURL = logoURL

	if err := uc.repo.Put(ctx, biz); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "logo_updated",
		Entity: "settings",
	})

	return biz, nil
}
