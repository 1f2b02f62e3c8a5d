package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/billbreak/internal/client/models"
)

func (c *HTTPClient) Groups(ctx context.Context) ([]models.Group, error) {
	var groups list[models.Group]
	if err := c.doJSON(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *HTTPClient) Group(ctx context.Context, groupID string) (*models.Group, error) {
	var g models.Group
	if err := c.doJSON(ctx, http.MethodGet, "/groups/"+url.PathEscape(groupID), nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *HTTPClient) CreateGroup(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error) {
	var g models.Group
	if err := c.doJSON(ctx, http.MethodPost, "/groups", req, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *HTTPClient) UpdateGroup(ctx context.Context, groupID string, req models.UpdateGroupRequest) error {
	return c.doJSON(ctx, http.MethodPut, "/groups/"+url.PathEscape(groupID), req, nil)
}

func (c *HTTPClient) DeleteGroup(ctx context.Context, groupID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/groups/"+url.PathEscape(groupID), nil, nil)
}

func (c *HTTPClient) AddGroupMember(ctx context.Context, groupID string, req models.AddMemberRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/groups/"+url.PathEscape(groupID)+"/members", req, nil)
}
