package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/brand-management-backend/internal/apperror"
	"github.com/xw1nchester/brand-management-backend/internal/chain"
	"github.com/xw1nchester/brand-management-backend/internal/handlers"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock.go -package=mockchainservice . Service
type Service interface {
	GetAllActive(ctx context.Context) ([]chain.Chain, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/chains", func(chainRouter chi.Router) {
		chainRouter.Get("/", apperror.Middleware(h.getAllHandler))
	})
}

// @Tags		chain
// @Success	200	{array}		chain.Chain
// @Failure	500	{object}	apperror.Response
// @Router		/chains [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	chains, err := h.service.GetAllActive(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, chains)

	return nil
}
