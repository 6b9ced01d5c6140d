// Package payment проверка и разбор уведомлений платежных шлюзов.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	SourceWebhook  = "webhook"
	SourceMidtrans = "midtrans"

	// MidtransOrderSeparator отделяет id юзера от суффикса в order_id платежа Midtrans: "<userId>_<nonce>".
	MidtransOrderSeparator = "_"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrMalformed        = errors.New("malformed notification")
	// ErrNotSettled уведомление о платеже, который еще не завершен или отменен. Зачислять нечего.
	ErrNotSettled = errors.New("payment not settled")
)

// Credit платеж, готовый к зачислению.
type Credit struct {
	PaymentID string
	Source    string
	UserID    string
	Amount    decimal.Decimal
}

// SignWebhook подпись тела общего вебхука: hex(HMAC-SHA256(secret, body)).
func SignWebhook(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseWebhook проверяет подпись и разбирает тело общего вебхука
// {"paymentId": "...", "userId": "...", "amount": "10.50"}.
func ParseWebhook(body []byte, signature, secret string) (*Credit, error) {
	if secret == "" || !hmac.Equal([]byte(SignWebhook(body, secret)), []byte(strings.ToLower(signature))) {
		return nil, ErrInvalidSignature
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}
	res := gjson.GetManyBytes(body, "paymentId", "userId", "amount")
	amount, err := decimal.NewFromString(res[2].String())
	if err != nil {
		return nil, fmt.Errorf("%w: amount `%s`", ErrMalformed, res[2].String())
	}
	credit := Credit{
		PaymentID: res[0].String(),
		Source:    SourceWebhook,
		UserID:    res[1].String(),
		Amount:    amount,
	}
	if credit.PaymentID == "" || credit.UserID == "" {
		return nil, fmt.Errorf("%w: paymentId and userId are required", ErrMalformed)
	}
	return &credit, nil
}

// MidtransSignature signature_key уведомления: hex(SHA512(order_id + status_code + gross_amount + serverKey)).
func MidtransSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// ParseMidtrans проверяет уведомление Midtrans. Зачисляются только settlement и принятый capture,
// для остальных статусов возвращается ErrNotSettled.
func ParseMidtrans(n *coreapi.TransactionStatusResponse, serverKey string) (*Credit, error) {
	if serverKey == "" {
		return nil, ErrInvalidSignature
	}
	expected := MidtransSignature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(n.SignatureKey))) {
		return nil, ErrInvalidSignature
	}

	switch {
	case n.TransactionStatus == "settlement":
	case n.TransactionStatus == "capture" && n.FraudStatus == "accept":
	default:
		return nil, fmt.Errorf("%w: status `%s`", ErrNotSettled, n.TransactionStatus)
	}

	idx := strings.LastIndex(n.OrderID, MidtransOrderSeparator)
	if idx <= 0 {
		return nil, fmt.Errorf("%w: order_id `%s`", ErrMalformed, n.OrderID)
	}
	amount, err := decimal.NewFromString(n.GrossAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: gross_amount `%s`", ErrMalformed, n.GrossAmount)
	}
	paymentID := n.TransactionID
	if paymentID == "" {
		paymentID = n.OrderID
	}
	return &Credit{
		PaymentID: SourceMidtrans + ":" + paymentID,
		Source:    SourceMidtrans,
		UserID:    n.OrderID[:idx],
		Amount:    amount,
	}, nil
}
