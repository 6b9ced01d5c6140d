package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/smmpanel/internal/service"
	"github.com/fsdevblog/smmpanel/internal/transport/payment"
	"github.com/gin-gonic/gin"
	"github.com/midtrans/midtrans-go/coreapi"
)

const (
	// WebhookSignatureHeader hex(HMAC-SHA256(secret, body)) общего платежного вебхука.
	WebhookSignatureHeader = "X-Webhook-Signature"

	maxWebhookBody = 64 << 10
)

// Ответы вебхуков. Повтор уже зачисленного платежа тоже 200, иначе шлюз будет слать его снова.
const (
	webhookCredited  = "credited"
	webhookDuplicate = "duplicate"
	webhookIgnored   = "ignored"
)

type WebhookHandler struct {
	svs               PaymentServicer
	webhookSecret     string
	midtransServerKey string
}

func NewWebhookHandler(svs PaymentServicer, webhookSecret, midtransServerKey string) *WebhookHandler {
	return &WebhookHandler{
		svs:               svs,
		webhookSecret:     webhookSecret,
		midtransServerKey: midtransServerKey,
	}
}

// Payment POST RouteGroup + PaymentWebhookRoute.
func (h *WebhookHandler) Payment(c *gin.Context) {
	body, err := readLimited(c, maxWebhookBody)
	if err != nil {
		abortWithBindError(c, err)
		return
	}

	credit, parseErr := payment.ParseWebhook(body, c.GetHeader(WebhookSignatureHeader), h.webhookSecret)
	if parseErr != nil {
		h.abortWithParseError(c, parseErr)
		return
	}
	h.credit(c, credit)
}

// Midtrans POST RouteGroup + MidtransWebhookRoute. Уведомление платежного шлюза Midtrans.
func (h *WebhookHandler) Midtrans(c *gin.Context) {
	var notification coreapi.TransactionStatusResponse
	if bindErr := c.ShouldBindJSON(&notification); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	credit, parseErr := payment.ParseMidtrans(&notification, h.midtransServerKey)
	if parseErr != nil {
		h.abortWithParseError(c, parseErr)
		return
	}
	h.credit(c, credit)
}

func (h *WebhookHandler) credit(c *gin.Context, credit *payment.Credit) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	credited, err := h.svs.CreditPayment(reqCtx, service.CreditPaymentArgs{
		PaymentID: credit.PaymentID,
		Source:    credit.Source,
		UserID:    credit.UserID,
		Amount:    credit.Amount,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	status := webhookCredited
	if !credited {
		status = webhookDuplicate
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "paymentId": credit.PaymentID})
}

func (h *WebhookHandler) abortWithParseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrNotSettled):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.JSON(http.StatusOK, gin.H{"status": webhookIgnored})
	case errors.Is(err, payment.ErrInvalidSignature):
		c.Status(http.StatusUnauthorized)
		_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta("Unauthenticated")
		c.Abort()
	default:
		c.Status(http.StatusBadRequest)
		_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta("InvalidRequest")
		c.Abort()
	}
}

func readLimited(c *gin.Context, limit int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	body, err := c.GetRawData()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return body, nil
}
