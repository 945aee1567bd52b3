package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salesledger/internal/domain/dto"
	"github.com/guttosm/salesledger/internal/domain/models"
	"github.com/guttosm/salesledger/internal/service"
)

const (
	salesBasePath = "/api/v1/sales"
	dateLayout    = "2006-01-02"
)

// Handler provides HTTP handlers for sales and profit endpoints.
//
// Responsibilities:
//   - Validate incoming path/query parameters and request bodies
//   - Convert external date representations into calendar primitives
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.SalesService
	now func() time.Time
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.SalesService): Service dependency holding sales logic.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.SalesService) *Handler {
	return &Handler{svc: svc, now: func() time.Time { return time.Now().UTC() }}
}

// ListSales godoc
// @Summary      List sales
// @Description  Returns every recorded sale in storage order
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/sales [get]
func (h *Handler) ListSales(c *gin.Context) {
	sales, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list sales", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewSaleListResponse(sales, salesBasePath))
}

// GetSale godoc
// @Summary      Get sale by id
// @Tags         sales
// @Produce      json
// @Param        id   path      int  true  "Sale id"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/sales/{id} [get]
func (h *Handler) GetSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sale, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch sale", err))
		return
	}
	if sale == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("sale not found", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewSaleResponse(sale, salesBasePath))
}

// CreateSale godoc
// @Summary      Record a sale
// @Description  Stores a sale; the total is computed from its line items
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        sale  body      dto.SaleRequest  true  "Sale"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/sales [post]
func (h *Handler) CreateSale(c *gin.Context) {
	req, ok := h.bindSale(c)
	if !ok {
		return
	}

	saved, err := h.svc.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to save sale", err))
		return
	}
	c.JSON(http.StatusCreated, dto.NewSaleResponse(saved, salesBasePath))
}

// UpdateSale godoc
// @Summary      Update a sale
// @Description  Replaces customer, timestamp and the whole line item collection
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Sale id"
// @Param        sale  body      dto.SaleRequest  true  "Sale"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/sales/{id} [put]
func (h *Handler) UpdateSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := h.bindSale(c)
	if !ok {
		return
	}

	saved, err := h.svc.Update(c.Request.Context(), id, req.ToModel())
	if errors.Is(err, service.ErrSaleNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("sale not found", err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to update sale", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewSaleResponse(saved, salesBasePath))
}

// DeleteSale godoc
// @Summary      Delete a sale
// @Tags         sales
// @Param        id   path  int  true  "Sale id"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/sales/{id} [delete]
func (h *Handler) DeleteSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to delete sale", err))
		return
	}
	c.Status(http.StatusNoContent)
}

// DailyProfit godoc
// @Summary      Daily profit
// @Description  Exact sum of sale profits on the given calendar date
// @Tags         profits
// @Produce      json
// @Param        date  query     string  true  "Date in YYYY-MM-DD" example(2025-10-05)
// @Success      200   {object}  dto.ProfitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/sales/profits/daily [get]
func (h *Handler) DailyProfit(c *gin.Context) {
	s := c.Query("date")
	if s == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("date is required", nil))
		return
	}
	day, err := time.Parse(dateLayout, s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", err))
		return
	}

	profit, err := h.svc.DailyProfit(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute daily profit", err))
		return
	}
	c.JSON(http.StatusOK, dto.ProfitResponse{Period: day.Format(dateLayout), Profit: profit})
}

// MonthlyProfit godoc
// @Summary      Monthly profit
// @Tags         profits
// @Produce      json
// @Param        month  query     int  true  "Month (1-12)" example(10)
// @Param        year   query     int  true  "Year" example(2025)
// @Success      200    {object}  dto.ProfitResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/sales/profits/monthly [get]
func (h *Handler) MonthlyProfit(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("month must be an integer between 1 and 12", err))
		return
	}
	year, ok := parseYear(c)
	if !ok {
		return
	}

	profit, err := h.svc.MonthlyProfit(c.Request.Context(), time.Month(month), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute monthly profit", err))
		return
	}
	period := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	c.JSON(http.StatusOK, dto.ProfitResponse{Period: period, Profit: profit})
}

// YearlyProfit godoc
// @Summary      Yearly profit
// @Tags         profits
// @Produce      json
// @Param        year  query     int  true  "Year" example(2025)
// @Success      200   {object}  dto.ProfitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/sales/profits/yearly [get]
func (h *Handler) YearlyProfit(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}

	profit, err := h.svc.YearlyProfit(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute yearly profit", err))
		return
	}
	c.JSON(http.StatusOK, dto.ProfitResponse{Period: strconv.Itoa(year), Profit: profit})
}

// bindSale decodes and validates a SaleRequest, writing a 400 on failure.
func (h *Handler) bindSale(c *gin.Context) (dto.SaleRequest, bool) {
	var req dto.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid sale payload", err))
		return req, false
	}
	for i, li := range req.LineItems {
		if li.UnitPrice.IsNegative() || li.UnitCost.IsNegative() {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("line_items["+strconv.Itoa(i)+"]: prices must not be negative", nil))
			return req, false
		}
		if !models.FitsMoneyScale(li.UnitPrice) || !models.FitsMoneyScale(li.UnitCost) {
			msg := fmt.Sprintf("line_items[%d]: prices allow at most %d decimal places", i, models.MoneyScale)
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msg, nil))
			return req, false
		}
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = h.now()
	}
	// stored and grouped by calendar date in UTC on every driver
	req.Timestamp = req.Timestamp.UTC()
	return req, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("id must be a positive integer", err))
		return 0, false
	}
	return id, true
}

func parseYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("year must be an integer between 1 and 9999", err))
		return 0, false
	}
	return year, true
}
