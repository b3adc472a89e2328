package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httperr"
	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/httpresp"
	ucMenu "github.com/saiichandraa424-cpu/restaurant-reservations/internal/usecase/menu"
)

type MenuHandler struct {
	listUC *ucMenu.ListMenu
}

func NewMenuHandler(listUC *ucMenu.ListMenu) *MenuHandler {
	return &MenuHandler{listUC: listUC}
}

func (h *MenuHandler) List(c *gin.Context) {
	view, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_menu", "Failed to load menu.")
		return
	}

	httpresp.OK(c, view)
}
