package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/syedahad2205/dajaj-pos/internal/domain/menu"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/response"
)

// MenuHandler serves the static menu catalog
type MenuHandler struct {
	catalog *menu.Catalog
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalog *menu.Catalog) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// GetMenu returns all products and add-on definitions
// @Summary Get menu
// @Description Returns the full menu catalog with products and add-ons
// @Tags menu
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	response.OK(c, "Menu retrieved", gin.H{
		"products": h.catalog.Products(),
		"addons":   h.catalog.Addons(),
	})
}
