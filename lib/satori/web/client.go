// Package web talks to the real platform: a resty transport carrying the
// session token explicitly through every exchange, and a goquery parser
// for the server-rendered pages.
package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mhorod/satori-cli/lib/satori"
	"github.com/mhorod/satori-cli/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

// the cookie the platform tracks sessions with
const tokenCookie = "satori_token"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	http    *resty.Client
	baseURL *url.URL
}

type ClientOptions struct {
	BaseURL string
	// defaults to 30s
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseURL, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseURL.Hostname()))
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "satori/http")

	return &Client{http: client, baseURL: baseURL}, nil
}

func (c *Client) request(ctx context.Context, tok satori.Token) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if tok != "" {
		req.SetCookie(&http.Cookie{Name: tokenCookie, Value: string(tok)})
	}
	return req
}

// page converts a resty response into a transport page, carrying forward
// the request token unless the server issued a new one.
func page(res *resty.Response, tok satori.Token, err error) (satori.Page, error) {
	if err != nil {
		return satori.Page{}, err
	}
	if res.StatusCode() >= http.StatusBadRequest {
		return satori.Page{}, fmt.Errorf("server answered %s", res.Status())
	}
	next := tok
	for _, cookie := range res.Cookies() {
		if cookie.Name == tokenCookie {
			next = satori.Token(cookie.Value)
		}
	}
	return satori.Page{Body: string(res.Body()), Token: next}, nil
}

func (c *Client) Get(ctx context.Context, tok satori.Token, path string) (satori.Page, error) {
	res, err := c.request(ctx, tok).Get(path)
	return page(res, tok, err)
}

func (c *Client) Post(ctx context.Context, tok satori.Token, path string, form url.Values) (satori.Page, error) {
	res, err := c.request(ctx, tok).
		SetFormDataFromValues(form).
		Post(path)
	return page(res, tok, err)
}

func (c *Client) SubmitFile(ctx context.Context, tok satori.Token, path string, fields url.Values, fileField, filePath string) (satori.Page, error) {
	res, err := c.request(ctx, tok).
		SetFormDataFromValues(fields).
		SetFile(fileField, filePath).
		Post(path)
	return page(res, tok, err)
}
