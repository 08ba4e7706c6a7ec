package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// tokenType is sent verbatim as the Authorization scheme.
const tokenType = "OAuth"

// UnexpectedStatusError is returned when the API answers with anything but 200.
type UnexpectedStatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%v: %s answered %d", homework.ErrUnexpectedResponseCode, e.Endpoint, e.StatusCode)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return homework.ErrUnexpectedResponseCode
}

// Client implements homework.Source over the Practicum homework API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *logrus.Entry
}

func NewClient(token, endpoint string, timeout time.Duration, logger *logrus.Entry) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: tokenType},
	)
	return &Client{
		httpClient: &http.Client{
			Transport: &oauth2.Transport{Source: ts, Base: http.DefaultTransport},
			Timeout:   timeout,
		},
		endpoint: endpoint,
		logger:   logger,
	}
}

// FetchStatuses requests homework statuses changed since from.
func (c *Client) FetchStatuses(ctx context.Context, from time.Time) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint %q: %v", homework.ErrFetch, c.endpoint, err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(from.Unix(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: http.NewRequestWithContext: %v", homework.ErrFetch, err)
	}

	c.logger.WithField("from_date", from.Unix()).Debug("Requesting homework statuses")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", homework.ErrFetch, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", homework.ErrFetch, err)
	}

	if res.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status_code": res.StatusCode,
			"body":        string(body),
		}).Debug("Homework API returned a non-200 response")
		return nil, &UnexpectedStatusError{StatusCode: res.StatusCode, Endpoint: c.endpoint}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", homework.ErrShape, err)
	}
	c.logger.WithField("payload", payload).Debug("Homework API response decoded")
	return payload, nil
}
