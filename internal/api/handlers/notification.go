package handlers

import (
	"net/http"

	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//
//	@Summary	Sent and failed customer emails
//	@Tags		Admin
//	@Produce	json
//	@Param		page		query		int	false	"Page number"
//	@Param		pageSize	query		int	false	"Items per page"
//	@Success	200			{object}	models.PaginatedResponse
//	@Security	BearerAuth
//	@Router		/admin/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := utils.ParsePagination(r)

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, paginated(notifications, total, page, pageSize))
	}
}
