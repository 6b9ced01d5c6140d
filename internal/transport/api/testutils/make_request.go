package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
)

type RequestOptions struct {
	headers map[string]string
	query   url.Values
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest прогоняет запрос через роутер без сети и возвращает ответ рекордера.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
		query:   make(url.Values),
	}
	for _, opt := range opts {
		opt(&options)
	}

	target, err := url.Parse(args.URL)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if len(options.query) > 0 {
		q := target.Query()
		for k, vs := range options.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	request := httptest.NewRequest(args.Method, target.String(), args.Body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers[name] = value
	}
}

// WithQuery добавляет параметр query строки к URL запроса.
func WithQuery(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.query.Add(name, value)
	}
}
