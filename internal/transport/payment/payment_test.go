package payment

import (
	"testing"

	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/stretchr/testify/require"
)

func TestParseWebhook(t *testing.T) {
	const secret = "s3cret"
	body := []byte(`{"paymentId":"pay-1","userId":"u-1","amount":"99.50"}`)

	credit, err := ParseWebhook(body, SignWebhook(body, secret), secret)
	require.NoError(t, err)
	require.Equal(t, "pay-1", credit.PaymentID)
	require.Equal(t, "u-1", credit.UserID)
	require.Equal(t, "99.5", credit.Amount.String())
	require.Equal(t, SourceWebhook, credit.Source)

	_, err = ParseWebhook(body, SignWebhook(body, "other"), secret)
	require.ErrorIs(t, err, ErrInvalidSignature)

	_, err = ParseWebhook(body, SignWebhook(body, ""), "")
	require.ErrorIs(t, err, ErrInvalidSignature)

	bad := []byte(`{"paymentId":"pay-1","amount":"ten"}`)
	_, err = ParseWebhook(bad, SignWebhook(bad, secret), secret)
	require.ErrorIs(t, err, ErrMalformed)

	missing := []byte(`{"paymentId":"pay-1","amount":"10"}`)
	_, err = ParseWebhook(missing, SignWebhook(missing, secret), secret)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestParseMidtrans(t *testing.T) {
	const serverKey = "SB-Mid-server-key"
	notification := func(status, fraud string) *coreapi.TransactionStatusResponse {
		n := &coreapi.TransactionStatusResponse{
			OrderID:           "user_42_1700000000",
			StatusCode:        "200",
			GrossAmount:       "10000.00",
			TransactionID:     "f3b4c1e2",
			TransactionStatus: status,
			FraudStatus:       fraud,
		}
		n.SignatureKey = MidtransSignature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
		return n
	}

	credit, err := ParseMidtrans(notification("settlement", ""), serverKey)
	require.NoError(t, err)
	require.Equal(t, "user_42", credit.UserID)
	require.Equal(t, "midtrans:f3b4c1e2", credit.PaymentID)
	require.Equal(t, "10000", credit.Amount.String())

	_, err = ParseMidtrans(notification("capture", "accept"), serverKey)
	require.NoError(t, err)

	_, err = ParseMidtrans(notification("capture", "challenge"), serverKey)
	require.ErrorIs(t, err, ErrNotSettled)

	_, err = ParseMidtrans(notification("pending", ""), serverKey)
	require.ErrorIs(t, err, ErrNotSettled)

	tampered := notification("settlement", "")
	tampered.GrossAmount = "99999.00"
	_, err = ParseMidtrans(tampered, serverKey)
	require.ErrorIs(t, err, ErrInvalidSignature)
}
