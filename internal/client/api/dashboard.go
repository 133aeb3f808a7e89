package api

import "context"

// Dashboard fetches the aggregate (user, files, folders) snapshot. Views
// call it again after every mutation instead of patching local state.
func (c *Client) Dashboard(ctx context.Context) *DashboardResult {
	out := &DashboardResult{}
	c.get(ctx, "/dashboard", out)
	return out
}
