package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogSvs      CatalogServicer
	providerTimeout time.Duration
}

func NewCatalogHandler(catalogSvs CatalogServicer, providerTimeout time.Duration) *CatalogHandler {
	return &CatalogHandler{catalogSvs: catalogSvs, providerTimeout: providerTimeout}
}

type ServiceResponse struct {
	ID          string          `json:"service"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	CategoryKey string          `json:"categoryKey,omitempty"`
	Type        string          `json:"type,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	Min         int64           `json:"min"`
	Max         int64           `json:"max"`
	Refill      bool            `json:"refill"`
	Cancel      bool            `json:"cancel"`
}

// Index GET RouteGroup + ServicesRoute. Каталог услуг с розничной ставкой за 1000.
func (h *CatalogHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, h.providerTimeout)
	defer cancel()

	services, err := h.catalogSvs.ListServices(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]ServiceResponse, len(services))
	for i, s := range services {
		response[i] = ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Category:    s.Category,
			CategoryKey: s.CategoryKey,
			Type:        s.Type,
			Rate:        s.RetailRate,
			Min:         s.Min,
			Max:         s.Max,
			Refill:      s.Refill,
			Cancel:      s.Cancel,
		}
	}
	c.JSON(http.StatusOK, response)
}

type QuoteParams struct {
	ServiceID string `binding:"required,max_bytes=64" json:"serviceId"`
	Quantity  int64  `binding:"required,gt=0"         json:"quantity"`
}

type QuoteResponse struct {
	ServiceID   string          `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Charge      decimal.Decimal `json:"charge"`
}

// Quote POST RouteGroup + QuoteRoute. Считает списание без размещения заказа.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var params QuoteParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, h.providerTimeout)
	defer cancel()

	quote, err := h.catalogSvs.Quote(ctx, params.ServiceID, params.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{
		ServiceID:   quote.Service.ID,
		ServiceName: quote.Service.Name,
		Quantity:    quote.Quantity,
		Rate:        quote.RetailRate,
		Charge:      quote.TotalCharge,
	})
}
