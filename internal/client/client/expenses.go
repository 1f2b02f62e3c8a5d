package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
	"github.com/dmitrijs2005/billbreak/internal/netx"
)

func (c *HTTPClient) Expenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	var expenses list[models.Expense]
	if err := c.doJSON(ctx, http.MethodGet, "/expenses/"+url.PathEscape(groupID), nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *HTTPClient) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	var e models.Expense
	if err := c.doJSON(ctx, http.MethodPost, "/expenses", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) UpdateExpense(ctx context.Context, expenseID string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	var e models.Expense
	if err := c.doJSON(ctx, http.MethodPut, "/expenses/"+url.PathEscape(expenseID), req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) DeleteExpense(ctx context.Context, expenseID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/expenses/"+url.PathEscape(expenseID), nil, nil)
}

// VoiceExpense uploads a WAV recording; the backend transcribes it and
// books the parsed expense in groupID.
func (c *HTTPClient) VoiceExpense(ctx context.Context, groupID string, audio io.Reader) (*models.VoiceExpenseResult, error) {
	body, contentType, err := netx.MultipartBody(
		[]netx.FormField{{Name: "group_id", Value: groupID}},
		netx.FormFile{
			Field:       "audio",
			FileName:    fmt.Sprintf("expense-%d.wav", c.now().UnixMilli()),
			ContentType: "audio/wav",
			Content:     audio,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build voice upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/expenses/voice", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var res models.VoiceExpenseResult
	if err := c.send(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
