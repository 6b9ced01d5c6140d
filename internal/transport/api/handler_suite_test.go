package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/logger"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/service/tokens"
	"github.com/fsdevblog/smmpanel/internal/transport/api/mocks"
	"github.com/fsdevblog/smmpanel/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testWebhookSecret   = "webhook secret"
	testMidtransKey     = "SB-Mid-server-test"
	testProviderTimeout = 3 * time.Second
)

// handlerSuite общий каркас тестов хендлеров: роутер на моках сервисов и выпуск токенов.
type handlerSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret []byte

	user  domain.Identity
	admin domain.Identity

	accountSvs *mocks.MockAccountServicer
	catalogSvs *mocks.MockCatalogServicer
	orderSvs   *mocks.MockOrderServicer
	ledgerSvs  *mocks.MockLedgerServicer
	rewardSvs  *mocks.MockRewardServicer
	paymentSvs *mocks.MockPaymentServicer
	markupSvs  *mocks.MockMarkupServicer
	reconSvs   *mocks.MockReconciliationServicer
	adminSvs   *mocks.MockAdminServicer
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(s.T())

	s.jwtSecret = []byte("super secret key")
	s.user = domain.Identity{UserID: gofakeit.UUID(), Email: gofakeit.Email()}
	s.admin = domain.Identity{UserID: gofakeit.UUID(), Email: gofakeit.Email(), IsAdmin: true}

	s.accountSvs = mocks.NewMockAccountServicer(ctrl)
	s.catalogSvs = mocks.NewMockCatalogServicer(ctrl)
	s.orderSvs = mocks.NewMockOrderServicer(ctrl)
	s.ledgerSvs = mocks.NewMockLedgerServicer(ctrl)
	s.rewardSvs = mocks.NewMockRewardServicer(ctrl)
	s.paymentSvs = mocks.NewMockPaymentServicer(ctrl)
	s.markupSvs = mocks.NewMockMarkupServicer(ctrl)
	s.reconSvs = mocks.NewMockReconciliationServicer(ctrl)
	s.adminSvs = mocks.NewMockAdminServicer(ctrl)

	router, err := New(RouterArgs{
		Logger:                logger.New(io.Discard),
		Metrics:               metrics.New(),
		Verifier:              tokens.NewJWTVerifier(s.jwtSecret),
		WebhookSecret:         testWebhookSecret,
		MidtransServerKey:     testMidtransKey,
		ProviderTimeout:       testProviderTimeout,
		AccountService:        s.accountSvs,
		CatalogService:        s.catalogSvs,
		OrderService:          s.orderSvs,
		LedgerService:         s.ledgerSvs,
		RewardService:         s.rewardSvs,
		PaymentService:        s.paymentSvs,
		MarkupService:         s.markupSvs,
		ReconciliationService: s.reconSvs,
		AdminService:          s.adminSvs,
	})
	s.Require().NoError(err)
	s.router = router
}

// request выполняет запрос от имени identity. Nil identity означает запрос без токена.
func (s *handlerSuite) request(
	method, url string,
	body any,
	identity *domain.Identity,
	opts ...func(*testutils.RequestOptions),
) *http.Response {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	if identity != nil {
		opts = append(opts, testutils.WithBearer(testutils.BearerToken(s.T(), *identity, s.jwtSecret)))
	}
	opts = append(opts, testutils.WithHeader("Content-Type", "application/json"))

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   reader,
	}, opts...)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = res.Body.Close() })
	return res
}

// decode читает JSON ответа в v.
func (s *handlerSuite) decode(res *http.Response, v any) {
	s.Require().NoError(json.NewDecoder(res.Body).Decode(v))
}

// errorKind вид ошибки из тела {"error": ..., "message": ...}.
func (s *handlerSuite) errorKind(res *http.Response) (string, string) {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	s.decode(res, &body)
	return body.Error, body.Message
}

// decimalEq сравнивает суммы по значению: "10" и "10.00" равны.
type decimalEq struct {
	want decimal.Decimal
}

func eqDecimal(s string) gomock.Matcher {
	return decimalEq{want: decimal.RequireFromString(s)}
}

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return "is decimal " + m.want.String()
}
