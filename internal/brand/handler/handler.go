package handler

import (
	"context"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/xw1nchester/brand-management-backend/internal/apperror"
	"github.com/xw1nchester/brand-management-backend/internal/brand"
	"github.com/xw1nchester/brand-management-backend/internal/handlers"
	"go.uber.org/zap"
)

var (
	errInvalidID      = apperror.NewAppError("id should be positive integer")
	errInvalidChainID = apperror.NewAppError("chainId should be positive integer")
)

var validate = newValidator()

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

//go:generate mockgen -destination=mocks/mock.go -package=mockbrandservice . Service
type Service interface {
	GetAllActive(ctx context.Context) ([]brand.View, error)
	GetByChain(ctx context.Context, chainID int64) ([]brand.View, error)
	GetByID(ctx context.Context, id int64) (*brand.View, error)
	Create(ctx context.Context, input brand.Input) (*brand.View, error)
	Update(ctx context.Context, id int64, input brand.Input) (*brand.View, error)
	Delete(ctx context.Context, id int64) error
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
	router.Route("/brands", func(brandRouter chi.Router) {
		brandRouter.Get("/", apperror.Middleware(h.getAllHandler))
		brandRouter.Post("/", apperror.Middleware(h.createHandler))

		brandRouter.Route("/{id}", func(brandIDRouter chi.Router) {
			brandIDRouter.Get("/", apperror.Middleware(h.getByIDHandler))
			brandIDRouter.Put("/", apperror.Middleware(h.updateHandler))
			brandIDRouter.Delete("/", apperror.Middleware(h.deleteHandler))
		})
	})
}

func parsePositiveID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *handler) decodeRequest(r *http.Request) (*BrandRequest, error) {
	var dto BrandRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Debug(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return nil, apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return nil, apperror.NewValidationErr(err.(validator.ValidationErrors), validationMessages)
	}

	return &dto, nil
}

// @Tags		brand
// @Param		chainId	query		int	false	"Chain ID"
// @Success	200		{array}		brand.View
// @Failure	400,404	{object}	apperror.Response
// @Failure	500		{object}	apperror.Response
// @Router		/brands [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	var (
		brands []brand.View
		err    error
	)

	if raw := r.URL.Query().Get("chainId"); raw != "" {
		chainID, ok := parsePositiveID(raw)
		if !ok {
			return errInvalidChainID
		}

		brands, err = h.service.GetByChain(r.Context(), chainID)
	} else {
		brands, err = h.service.GetAllActive(r.Context())
	}
	if err != nil {
		return err
	}

	render.JSON(w, r, brands)

	return nil
}

// @Tags		brand
// @Param		id		path		int	true	"Brand ID"
// @Success	200		{object}	brand.View
// @Failure	400,404	{object}	apperror.Response
// @Failure	500		{object}	apperror.Response
// @Router		/brands/{id} [get]
func (h *handler) getByIDHandler(w http.ResponseWriter, r *http.Request) error {
	id, ok := parsePositiveID(chi.URLParam(r, "id"))
	if !ok {
		return errInvalidID
	}

	existingBrand, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, existingBrand)

	return nil
}

// @Tags		brand
// @Param		request		body		BrandRequest	true	"request body"
// @Success	201			{object}	brand.View
// @Failure	400,404,409	{object}	apperror.Response
// @Failure	500			{object}	apperror.Response
// @Router		/brands [post]
func (h *handler) createHandler(w http.ResponseWriter, r *http.Request) error {
	dto, err := h.decodeRequest(r)
	if err != nil {
		return err
	}

	createdBrand, err := h.service.Create(r.Context(), dto.ToInput())
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, createdBrand)

	return nil
}

// @Tags		brand
// @Param		id			path		int				true	"Brand ID"
// @Param		request		body		BrandRequest	true	"request body"
// @Success	200			{object}	brand.View
// @Failure	400,404,409	{object}	apperror.Response
// @Failure	500			{object}	apperror.Response
// @Router		/brands/{id} [put]
func (h *handler) updateHandler(w http.ResponseWriter, r *http.Request) error {
	id, ok := parsePositiveID(chi.URLParam(r, "id"))
	if !ok {
		return errInvalidID
	}

	dto, err := h.decodeRequest(r)
	if err != nil {
		return err
	}

	updatedBrand, err := h.service.Update(r.Context(), id, dto.ToInput())
	if err != nil {
		return err
	}

	render.JSON(w, r, updatedBrand)

	return nil
}

// @Tags		brand
// @Param		id			path	int	true	"Brand ID"
// @Success	204
// @Failure	400,404,409	{object}	apperror.Response
// @Failure	500			{object}	apperror.Response
// @Router		/brands/{id} [delete]
func (h *handler) deleteHandler(w http.ResponseWriter, r *http.Request) error {
	id, ok := parsePositiveID(chi.URLParam(r, "id"))
	if !ok {
		return errInvalidID
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
