package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
)

func (c *HTTPClient) Balances(ctx context.Context, groupID string) (*models.BalanceReport, error) {
	var r models.BalanceReport
	if err := c.doJSON(ctx, http.MethodGet, "/balances/"+url.PathEscape(groupID), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) SettlementSuggestions(ctx context.Context, groupID string) ([]models.SettlementTransaction, error) {
	var r models.SettlementSuggestions
	if err := c.doJSON(ctx, http.MethodGet, "/settlements/suggestions/"+url.PathEscape(groupID), nil, &r); err != nil {
		return nil, err
	}
	return r.Settlements, nil
}

func (c *HTTPClient) Settlements(ctx context.Context, groupID string) ([]models.Settlement, error) {
	var settlements list[models.Settlement]
	if err := c.doJSON(ctx, http.MethodGet, "/settlements/"+url.PathEscape(groupID), nil, &settlements); err != nil {
		return nil, err
	}
	return settlements, nil
}

func (c *HTTPClient) CreateSettlement(ctx context.Context, req models.CreateSettlementRequest) (*models.Settlement, error) {
	var s models.Settlement
	if err := c.doJSON(ctx, http.MethodPost, "/settlements", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
