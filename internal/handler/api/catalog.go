package api

import (
	"net/http"

	resdto "campus-canteen/internal/handler/dto/response"
	"campus-canteen/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List canteens
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CanteenResponse
// @Router /canteens [get]
func (h *CatalogHandler) ListCanteens(c *gin.Context) {
	views, err := h.catalogQueries.ListCanteens(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.CanteenResponse](c, http.StatusOK, views)
}

// @Summary Canteen menu
// @Description Food items of a canteen in menu order, with stock and sell-out estimate
// @Tags catalog
// @Produce json
// @Param canteenId path string true "Canteen ID"
// @Success 200 {array} resdto.FoodItemResponse
// @Failure 404 {object} map[string]string
// @Router /canteens/{canteenId}/menu [get]
func (h *CatalogHandler) Menu(c *gin.Context) {
	views, err := h.catalogQueries.GetMenu(c.Request.Context(), c.Param("canteenId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.FoodItemResponse](c, http.StatusOK, views)
}

// @Summary Pickup slots
// @Tags catalog
// @Produce json
// @Param canteenId path string true "Canteen ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 404 {object} map[string]string
// @Router /canteens/{canteenId}/slots [get]
func (h *CatalogHandler) Slots(c *gin.Context) {
	views, err := h.catalogQueries.ListSlots(c.Request.Context(), c.Param("canteenId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	respondEach[resdto.SlotResponse](c, http.StatusOK, views)
}
