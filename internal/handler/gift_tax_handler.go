package handler

import (
	"errors"
	"net/http"

	"gifttax/internal/calculator"
	"gifttax/internal/middleware"
	"gifttax/internal/model"
	"gifttax/internal/service"
	"gifttax/pkg/response"

	"github.com/gin-gonic/gin"
)

type GiftTaxHandler struct {
	giftTaxService service.GiftTaxService
	jwtSecret      []byte
}

func NewGiftTaxHandler(giftTaxService service.GiftTaxService, jwtSecret []byte) *GiftTaxHandler {
	return &GiftTaxHandler{giftTaxService: giftTaxService, jwtSecret: jwtSecret}
}

func (h *GiftTaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/gift-tax")
	{
		group.GET("/options", h.GetOptions)
		group.POST("/calculate", middleware.OptionalAuth(h.jwtSecret), h.Calculate)
	}
}

// GetOptions lists the selectable form values
// @Summary      Gift form options
// @Description  Relationship, residency and property type values with Korean labels
// @Tags         gift-tax
// @Produce      json
// @Success      200  {object}  response.Response{data=service.OptionsResponse}
// @Router       /api/gift-tax/options [get]
func (h *GiftTaxHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.giftTaxService.Options()))
}

// Calculate computes gift tax for one submission
// @Summary      Calculate gift tax
// @Description  Validates a gift submission (JSON or form) and returns the tax breakdown. A missing or placeholder law table still returns 200 with law_configured=false and no tax_due.
// @Tags         gift-tax
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        payload  body      model.GiftSubmission  true  "Gift submission"
// @Success      200      {object}  response.Response{data=service.GiftTaxResponse}
// @Failure      400      {object}  response.Response{fields=[]calculator.FieldError}
// @Failure      500      {object}  response.Response
// @Router       /api/gift-tax/calculate [post]
func (h *GiftTaxHandler) Calculate(c *gin.Context) {
	var req model.GiftSubmission
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	res, err := h.giftTaxService.Calculate(c.Request.Context(), req, middleware.UserID(c))
	if err != nil {
		var verrs calculator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, response.Invalid(http.StatusBadRequest, "Invalid gift submission", verrs))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
