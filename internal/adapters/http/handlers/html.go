package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.html"),
)

// quotesPage is the data rendered by templates/quotes.html.
type quotesPage struct {
	Quotes  []dto.QuoteResponse
	Filters []string
}

// PageHandler serves the server-rendered quote pages.
type PageHandler struct {
	service *app.QuoteService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(service *app.QuoteService) *PageHandler {
	return &PageHandler{service: service}
}

// Quotes handles GET /quotes.html. The optional attributedTo and subject
// parameters are combined with AND.
func (h *PageHandler) Quotes(c *gin.Context) {
	quotes, err := h.service.FindAllQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var filters []string

	if attributedTo, ok := c.GetQuery("attributedTo"); ok {
		quotes = domain.FilterByAttributedTo(quotes, attributedTo)
		filters = append(filters, attributedTo)
	}

	if subject, ok := c.GetQuery("subject"); ok {
		quotes = domain.FilterBySubject(quotes, subject)
		filters = append(filters, subject)
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "quotes.html", quotesPage{
		Quotes:  dto.NewQuoteListResponse(quotes),
		Filters: filters,
	}); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// RegisterPageRoutes registers the HTML routes on the given router group.
func (h *PageHandler) RegisterPageRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes.html", h.Quotes)
}
