package handler

import (
	"net/http"

	"gifttax/internal/middleware"
	"gifttax/internal/service"
	"gifttax/pkg/response"

	"github.com/gin-gonic/gin"
)

type LawTableHandler struct {
	lawTableService service.LawTableService
	jwtSecret       []byte
}

func NewLawTableHandler(lawTableService service.LawTableService, jwtSecret []byte) *LawTableHandler {
	return &LawTableHandler{lawTableService: lawTableService, jwtSecret: jwtSecret}
}

func (h *LawTableHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/law-table")
	{
		group.GET("", h.GetLawTable)
		group.POST("/reload", middleware.RequireRole(h.jwtSecret, "admin"), h.ReloadLawTable)
	}
}

// GetLawTable reports the installed law table
// @Summary      Current law table
// @Description  Source, configured flag, metadata and load time of the law table in use
// @Tags         law-table
// @Produce      json
// @Success      200  {object}  response.Response{data=service.LawTableResponse}
// @Router       /api/law-table [get]
func (h *LawTableHandler) GetLawTable(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.lawTableService.Current()))
}

// ReloadLawTable re-reads the law table file and swaps it in
// @Summary      Reload law table
// @Description  Re-reads the law table file. A missing or placeholder file is installed as unconfigured.
// @Tags         law-table
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.LawTableResponse}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /api/law-table/reload [post]
func (h *LawTableHandler) ReloadLawTable(c *gin.Context) {
	res := h.lawTableService.Reload(c.Request.Context(), middleware.UserID(c))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
