// Package client reads transactions, debts and budgets from the HTTP API.
//
// Client implements overview.Source, so all views can be computed on
// data fetched from a remote backend.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/senior-finance/backend/internal/finance"
	"github.com/senior-finance/backend/internal/models"
	"github.com/senior-finance/backend/internal/overview"
	"github.com/senior-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

var _ overview.Source = (*Client)(nil)

// New returns a client for the API at baseURL. If httpClient is nil,
// http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: u, http: httpClient}, nil
}

// ResponseError is returned for all responses with a status code
// outside of the 2xx range.
type ResponseError struct {
	Status  int
	Message string // The error reported by the API, if any
}

func (e ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("API returned %d: %s", e.Status, e.Message)
}

// get sends a GET request and decodes the body into target
func (c *Client) get(ctx context.Context, path string, query url.Values, target any) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Debug().Str("url", u.String()).Int("status", resp.StatusCode).Msg("client")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error *string `json:"error"`
		}

		// The body is not guaranteed to be JSON, e.g. for proxies in between
		respErr := ResponseError{Status: resp.StatusCode}
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error != nil {
			respErr.Message = *body.Error
		}

		return respErr
	}

	err = json.NewDecoder(resp.Body).Decode(target)
	if err != nil {
		return fmt.Errorf("could not decode response from %s: %w", u.Path, err)
	}

	return nil
}

type transaction struct {
	models.DefaultModel
	Title       string                    `json:"title"`
	Amount      decimal.Decimal           `json:"amount"`
	Category    string                    `json:"category"`
	Type        finance.TransactionType   `json:"type"`
	Date        types.Date                `json:"date"`
	IsRecurring bool                      `json:"isRecurring"`
	Status      finance.TransactionStatus `json:"status"`
	DueDateText string                    `json:"dueDateText"`
	Icon        string                    `json:"icon"`
}

// FetchTransactions returns the transactions matching the filter, newest first.
func (c *Client) FetchTransactions(ctx context.Context, filter overview.TransactionFilter) ([]finance.Transaction, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}

	if filter.Category != "" {
		query.Set("category", filter.Category)
	}

	if filter.Recurring {
		query.Set("recurring", "true")
	}

	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	// The API limits to 50 transactions unless told otherwise
	limit := -1
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	query.Set("limit", strconv.Itoa(limit))

	var response struct {
		Data []transaction `json:"data"`
	}

	err := c.get(ctx, "/v1/transactions", query, &response)
	if err != nil {
		return nil, err
	}

	transactions := make([]finance.Transaction, 0, len(response.Data))
	for _, t := range response.Data {
		transactions = append(transactions, models.Transaction{
			DefaultModel: t.DefaultModel,
			Title:        t.Title,
			Amount:       t.Amount,
			Category:     t.Category,
			Type:         t.Type,
			Date:         t.Date,
			IsRecurring:  t.IsRecurring,
			Status:       t.Status,
			DueDateText:  t.DueDateText,
			Icon:         t.Icon,
		}.Domain())
	}

	return transactions, nil
}

type debt struct {
	models.DefaultModel
	Type                  finance.DebtType `json:"type"`
	Name                  string           `json:"name"`
	TotalAmount           decimal.Decimal  `json:"totalAmount"`
	DueDateDay            int              `json:"dueDateDay"`
	MonthlyPayment        decimal.Decimal  `json:"monthlyPayment"`
	TotalInstallments     int              `json:"totalInstallments"`
	RemainingInstallments int              `json:"remainingInstallments"`
	StartDate             types.Date       `json:"startDate"`
}

// FetchDebts returns all debts. A single malformed debt fails the whole fetch.
func (c *Client) FetchDebts(ctx context.Context) ([]finance.Debt, error) {
	var response struct {
		Data []debt `json:"data"`
	}

	err := c.get(ctx, "/v1/debts", nil, &response)
	if err != nil {
		return nil, err
	}

	debts := make([]finance.Debt, 0, len(response.Data))
	for _, d := range response.Data {
		domain, err := models.Debt{
			DefaultModel:          d.DefaultModel,
			Type:                  d.Type,
			Name:                  d.Name,
			TotalAmount:           d.TotalAmount,
			DueDateDay:            d.DueDateDay,
			MonthlyPayment:        d.MonthlyPayment,
			TotalInstallments:     d.TotalInstallments,
			RemainingInstallments: d.RemainingInstallments,
			StartDate:             d.StartDate,
		}.Domain()
		if err != nil {
			return nil, err
		}

		debts = append(debts, domain)
	}

	return debts, nil
}

type budgetStatus struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
}

// FetchBudgetStatuses returns the status of all budgets for the month,
// ordered by category.
//
// Percentage and tier are computed again from spent and limit so that
// they follow the same rounding as local evaluations.
func (c *Client) FetchBudgetStatuses(ctx context.Context, month types.Month) ([]finance.BudgetStatus, error) {
	query := url.Values{}
	query.Set("month", month.String())

	var response struct {
		Data []budgetStatus `json:"data"`
	}

	err := c.get(ctx, "/v1/budgets/status", query, &response)
	if err != nil {
		return nil, err
	}

	statuses := make([]finance.BudgetStatus, 0, len(response.Data))
	for _, s := range response.Data {
		status, err := finance.Evaluate(s.Category, s.Spent, s.Limit)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}
