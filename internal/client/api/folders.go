package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdrive/internal/common"
)

// CreateFolder creates a folder under parentID, or in the root when
// parentID is nil.
func (c *Client) CreateFolder(ctx context.Context, name string, parentID *int64) *FolderResult {
	out := &FolderResult{}

	if strings.TrimSpace(name) == "" {
		out.fail(common.ErrorEmptyName.Error())
		return out
	}

	c.postJSON(ctx, "/folders/create", map[string]any{
		"name":     strings.TrimSpace(name),
		"parentId": parentID,
	}, out)
	return out
}

// RenameFolder changes the folder's name.
func (c *Client) RenameFolder(ctx context.Context, folderID int64, name string) *Result {
	out := &Result{}

	if strings.TrimSpace(name) == "" {
		out.fail(common.ErrorEmptyName.Error())
		return out
	}

	c.postJSON(ctx, "/folders/rename", map[string]any{
		"folderId": folderID,
		"name":     strings.TrimSpace(name),
	}, out)
	return out
}

// DeleteFolder removes the folder.
func (c *Client) DeleteFolder(ctx context.Context, folderID int64) *Result {
	out := &Result{}
	c.delete(ctx, fmt.Sprintf("/folders/%d", folderID), out)
	return out
}

// FolderContents lists the files belonging to one folder.
func (c *Client) FolderContents(ctx context.Context, folderID int64) *FolderContentsResult {
	out := &FolderContentsResult{}
	c.get(ctx, fmt.Sprintf("/folders/%d", folderID), out)
	return out
}
