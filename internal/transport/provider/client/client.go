// Package client шлюз к вышестоящему SMM провайдеру. Все действия идут на один endpoint формой с полями
// key и action. Ответ декодируется как вариант: объект с ключом error означает отказ провайдера,
// иначе полезная нагрузка конкретного действия.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	ActionServices     = "services"
	ActionAdd          = "add"
	ActionStatus       = "status"
	ActionCancel       = "cancel"
	ActionRefill       = "refill"
	ActionRefillStatus = "refill_status"
	ActionBalance      = "balance"
)

const DefaultTimeout = 15 * time.Second

// Исходы вызова для метрик.
const (
	outcomeOK          = "ok"
	outcomeRejected    = "rejected"
	outcomeUnavailable = "unavailable"
	outcomeAmbiguous   = "ambiguous"
)

// Client реализация шлюза провайдера поверх resty. Внутренних повторов нет: повтор после неизвестного
// исхода мог бы создать второй заказ у провайдера.
type Client struct {
	rc      *resty.Client
	apiKey  string
	limiter *rate.Limiter
	metrics *metrics.Metrics
	log     *logrus.Entry
}

func New(baseURL, apiKey string, timeout time.Duration, l *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		rc:      rc,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Inf, 1),
		log: l.WithFields(logrus.Fields{
			"component": "provider",
			"module":    "client",
		}),
	}
}

// SetRateLimit ограничивает частоту запросов к провайдеру. rps <= 0 снимает ограничение.
func (c *Client) SetRateLimit(rps float64) *Client {
	if rps <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
		return c
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	return c
}

func (c *Client) SetMetrics(m *metrics.Metrics) *Client {
	c.metrics = m
	return c
}

// Services возвращает каталог провайдера. Услуги с нечитаемой ставкой пропускаются.
func (c *Client) Services(ctx context.Context) ([]domain.ProviderService, error) {
	res, err := c.call(ctx, ActionServices, nil)
	if err != nil {
		return nil, err
	}
	if !res.IsArray() {
		return nil, unavailable(ActionServices, errors.New("services response is not an array"))
	}

	items := res.Array()
	services := make([]domain.ProviderService, 0, len(items))
	for _, item := range items {
		rateValue, rateErr := decimal.NewFromString(item.Get("rate").String())
		if rateErr != nil || item.Get("service").String() == "" {
			c.log.WithField("service", item.Get("service").String()).
				Warn("skip provider service with unreadable id or rate")
			continue
		}
		services = append(services, domain.ProviderService{
			ID:       item.Get("service").String(),
			Name:     item.Get("name").String(),
			Category: item.Get("category").String(),
			Type:     item.Get("type").String(),
			Rate:     rateValue,
			Min:      item.Get("min").Int(),
			Max:      item.Get("max").Int(),
			Refill:   item.Get("refill").Bool(),
			Cancel:   item.Get("cancel").Bool(),
		})
	}
	return services, nil
}

// AddOrder создает заказ у провайдера и возвращает его id. Если ответ успешный, но id в нем нет,
// исход считается неизвестным.
func (c *Client) AddOrder(ctx context.Context, serviceID, link string, quantity int64) (string, error) {
	res, err := c.call(ctx, ActionAdd, map[string]string{
		"service":  serviceID,
		"link":     link,
		"quantity": strconv.FormatInt(quantity, 10),
	})
	if err != nil {
		return "", err
	}
	orderID := res.Get("order").String()
	if orderID == "" {
		return "", &domain.ProviderAmbiguousError{
			Action: ActionAdd,
			Cause:  fmt.Errorf("no order id in response: %s", truncate(res.Raw)),
		}
	}
	return orderID, nil
}

// Status возвращает состояния заказов по их id у провайдера. Заказы, которых провайдер не знает,
// возвращаются с заполненным Err.
func (c *Client) Status(ctx context.Context, orderIDs []string) (map[string]domain.ProviderOrderStatus, error) {
	if len(orderIDs) == 0 {
		return map[string]domain.ProviderOrderStatus{}, nil
	}
	res, err := c.call(ctx, ActionStatus, map[string]string{"orders": strings.Join(orderIDs, ",")})
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]domain.ProviderOrderStatus, len(orderIDs))
	// Часть провайдеров отвечает на единственный заказ плоским объектом.
	if len(orderIDs) == 1 && res.Get("status").Exists() {
		statuses[orderIDs[0]] = parseOrderStatus(res)
		return statuses, nil
	}
	for _, id := range orderIDs {
		item := res.Get(gjson.Escape(id))
		if !item.Exists() {
			continue
		}
		statuses[id] = parseOrderStatus(item)
	}
	return statuses, nil
}

func (c *Client) Cancel(ctx context.Context, orderID string) error {
	res, err := c.call(ctx, ActionCancel, map[string]string{"orders": orderID})
	if err != nil {
		return err
	}
	var cancelErr string
	res.ForEach(func(_, item gjson.Result) bool {
		if item.Get("order").String() != orderID {
			return true
		}
		cancelErr = item.Get("cancel.error").String()
		return false
	})
	if cancelErr == "" {
		cancelErr = res.Get("cancel.error").String()
	}
	if cancelErr != "" {
		return domain.NewProviderRejectedError(ActionCancel, cancelErr)
	}
	return nil
}

// Refill запрашивает докрутку и возвращает id заявки.
func (c *Client) Refill(ctx context.Context, orderID string) (string, error) {
	res, err := c.call(ctx, ActionRefill, map[string]string{"order": orderID})
	if err != nil {
		return "", err
	}
	refill := res.Get("refill")
	if msg := refill.Get("error").String(); msg != "" {
		return "", domain.NewProviderRejectedError(ActionRefill, msg)
	}
	if refill.String() == "" || refill.IsObject() {
		return "", domain.NewProviderRejectedError(ActionRefill, "no refill id in response")
	}
	return refill.String(), nil
}

func (c *Client) RefillStatus(ctx context.Context, refillID string) (string, error) {
	res, err := c.call(ctx, ActionRefillStatus, map[string]string{"refill": refillID})
	if err != nil {
		return "", err
	}
	status := res.Get("status")
	if msg := status.Get("error").String(); msg != "" {
		return "", domain.NewProviderRejectedError(ActionRefillStatus, msg)
	}
	return status.String(), nil
}

func (c *Client) Balance(ctx context.Context) (*domain.ProviderBalance, error) {
	res, err := c.call(ctx, ActionBalance, nil)
	if err != nil {
		return nil, err
	}
	balance, parseErr := decimal.NewFromString(res.Get("balance").String())
	if parseErr != nil {
		return nil, unavailable(ActionBalance, fmt.Errorf("parse balance: %s", parseErr.Error()))
	}
	return &domain.ProviderBalance{Balance: balance, Currency: res.Get("currency").String()}, nil
}

// call выполняет действие action и возвращает разобранный ответ. Ошибки нормализуются:
//   - отказ провайдера ({"error": ...}) в *domain.ProviderRejectedError;
//   - запрос точно не доставлен или не изменял состояние (ошибка соединения, 4xx, 5xx кроме add,
//     ограничитель) в domain.ErrProviderUnavailable;
//   - запрос мог быть принят (таймаут ответа, 504, любой 5xx на add, нечитаемое тело) в
//     *domain.ProviderAmbiguousError.
func (c *Client) call(ctx context.Context, action string, params map[string]string) (gjson.Result, error) {
	if waitErr := c.limiter.Wait(ctx); waitErr != nil {
		c.metrics.ProviderCall(action, outcomeUnavailable, 0)
		return gjson.Result{}, unavailable(action, waitErr)
	}

	form := map[string]string{"key": c.apiKey, "action": action}
	for k, v := range params {
		form[k] = v
	}

	start := time.Now()
	resp, err := c.rc.R().
		SetContext(ctx).
		SetFormData(form).
		Post("")
	elapsed := time.Since(start)

	if err != nil {
		if isNotDelivered(err) {
			c.metrics.ProviderCall(action, outcomeUnavailable, elapsed)
			return gjson.Result{}, unavailable(action, err)
		}
		c.metrics.ProviderCall(action, outcomeAmbiguous, elapsed)
		c.log.WithError(err).WithField("action", action).Warn("provider call outcome unknown")
		return gjson.Result{}, &domain.ProviderAmbiguousError{Action: action, Cause: err}
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusGatewayTimeout,
		action == ActionAdd && code >= http.StatusInternalServerError:
		// ошибка шлюза или сервера после отправки не означает, что заказ не создан.
		c.metrics.ProviderCall(action, outcomeAmbiguous, elapsed)
		return gjson.Result{}, &domain.ProviderAmbiguousError{Action: action, Cause: NewStatusCodeError(code)}
	case code < 200 || code >= 300:
		c.metrics.ProviderCall(action, outcomeUnavailable, elapsed)
		return gjson.Result{}, unavailable(action, NewStatusCodeError(code))
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		c.metrics.ProviderCall(action, outcomeAmbiguous, elapsed)
		return gjson.Result{}, &domain.ProviderAmbiguousError{
			Action: action,
			Cause:  fmt.Errorf("unreadable response: %s", truncate(string(body))),
		}
	}

	res := gjson.ParseBytes(body)
	if res.IsObject() {
		if msg := res.Get("error"); msg.Exists() {
			c.metrics.ProviderCall(action, outcomeRejected, elapsed)
			return gjson.Result{}, domain.NewProviderRejectedError(action, msg.String())
		}
	}

	c.metrics.ProviderCall(action, outcomeOK, elapsed)
	return res, nil
}

func parseOrderStatus(item gjson.Result) domain.ProviderOrderStatus {
	charge, _ := decimal.NewFromString(item.Get("charge").String())
	return domain.ProviderOrderStatus{
		Status:     item.Get("status").String(),
		StartCount: valueOrNA(item.Get("start_count").String()),
		Remains:    valueOrNA(item.Get("remains").String()),
		Charge:     charge,
		Currency:   item.Get("currency").String(),
		Err:        item.Get("error").String(),
	}
}

// isNotDelivered сообщает, что запрос гарантированно не дошел до провайдера.
func isNotDelivered(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func unavailable(action string, cause error) error {
	return fmt.Errorf("provider action `%s`: %w: %s", action, domain.ErrProviderUnavailable, cause.Error())
}

func valueOrNA(v string) string {
	if v == "" {
		return domain.NotAvailable
	}
	return v
}

func truncate(s string) string {
	const maxLen = 256
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
