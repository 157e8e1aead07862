package upstream

import (
	"context"

	"github.com/lernia/console-backend/internal/model"
)

// DashboardStats fetches the aggregate counters for the landing screen.
func (c *Client) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var out struct {
		envelope
		Stats model.DashboardStats `json:"stats"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/dashboard/stats", nil, &out); err != nil {
		return model.DashboardStats{}, err
	}
	return out.Stats, nil
}
