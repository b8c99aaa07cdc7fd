package create_promotion

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/promotions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "некорректное окно действия промокода, ожидается RFC3339"
	msgInvalidPromotion   = "некорректные данные промокода"
	msgDuplicateCode      = "промокод с таким кодом уже существует"
	msgAccessDenied       = "операция доступна только менеджеру"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/promotions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /promotions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promotions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /promotions - Failed to parse validity window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrAccessDenied):
			h.logger.Warn("POST /promotions - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, promotions.ErrDuplicateCode):
			h.logger.Warn("POST /promotions - Duplicate code: code=%s", req.Code)
			handlers.RespondConflict(w, msgDuplicateCode)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /promotions - Invalid promotion data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPromotion)

		default:
			h.logger.Error("POST /promotions - Failed to create promotion: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promotions - Promotion created successfully: promotion_id=%d, code=%s, user_id=%d",
		result.ID, result.Code, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
