package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/sampledata"
)

// QuoteHandler handles the quote REST endpoints.
type QuoteHandler struct {
	service *app.QuoteService
	samples func() []domain.QuoteData
}

// NewQuoteHandler creates a new quote handler. The admin loader uses the
// built-in sample quotes.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
		samples: sampledata.Quotes,
	}
}

type subjectQuery struct {
	Subject string `form:"subject" json:"subject" validate:"notempty"`
}

type attributedToQuery struct {
	AttributedTo string `form:"attributedTo" json:"attributedTo" validate:"notempty"`
}

// ListQuotes handles GET /quotes.json
//
// @Summary List all quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /quotes.json [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.FindAllQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// ListBySubject handles GET /quotesBySubject.json?subject=
//
// @Summary List quotes with a subject
// @Tags quotes
// @Produce json
// @Param subject query string true "Subject"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quotesBySubject.json [get]
func (h *QuoteHandler) ListBySubject(c *gin.Context) {
	var q subjectQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		respondWithBindError(c, err)
		return
	}

	quotes, err := h.service.FindBySubject(c.Request.Context(), q.Subject)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// ListByAttributedTo handles GET /quotesByAttributedTo.json?attributedTo=
//
// @Summary List quotes by attribution
// @Tags quotes
// @Produce json
// @Param attributedTo query string true "Person the quote is attributed to"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quotesByAttributedTo.json [get]
func (h *QuoteHandler) ListByAttributedTo(c *gin.Context) {
	var q attributedToQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		respondWithBindError(c, err)
		return
	}

	quotes, err := h.service.FindByAttributedTo(c.Request.Context(), q.AttributedTo)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// RandomQuote handles GET /randomQuote.json
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /randomQuote.json [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	quote, err := h.service.RandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// AddQuote handles POST /quote
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Quote data"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quote [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondWithBindError(c, err)
		return
	}

	quote, err := h.service.AddQuote(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// DeleteQuote handles DELETE /quotes/:id. Deleting an unknown id succeeds.
//
// @Summary Delete a quote
// @Tags quotes
// @Param id path int true "Quote ID"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "quote id must be an integer")
		return
	}

	if err := h.service.DeleteQuote(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// LoadSampleQuotes handles POST /admin/loadSampleQuotes
//
// @Summary Load the sample quotes into an empty store
// @Tags admin
// @Produce json
// @Success 200 {object} dto.LoadSampleResponse
// @Router /admin/loadSampleQuotes [post]
func (h *QuoteHandler) LoadSampleQuotes(c *gin.Context) {
	loaded, err := h.service.LoadSampleQuotes(c.Request.Context(), h.samples())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoadSampleResponse{Loaded: loaded})
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes.json", h.ListQuotes)
	rg.GET("/quotesBySubject.json", h.ListBySubject)
	rg.GET("/quotesByAttributedTo.json", h.ListByAttributedTo)
	rg.GET("/randomQuote.json", h.RandomQuote)
	rg.POST("/quote", h.AddQuote)
	rg.DELETE("/quotes/:id", h.DeleteQuote)

	admin := rg.Group("/admin")
	admin.POST("/loadSampleQuotes", h.LoadSampleQuotes)
}

// respondWithBindError writes 400 for a request that failed binding or
// validation.
func respondWithBindError(c *gin.Context, err error) {
	switch {
	case dto.IsValidationError(err):
		dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
	case domain.IsValidation(err):
		dto.HandleError(c, err)
	case errors.Is(err, dto.ErrBinding):
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "malformed request body")
	default:
		dto.HandleError(c, err)
	}
}
