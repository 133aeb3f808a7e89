package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/google/uuid"
)

// UploadFile sends one file as a multipart request. The multipart writer
// supplies its own boundary-bearing content type. A nil folderID targets
// the root.
func (c *Client) UploadFile(ctx context.Context, r io.Reader, fileName, displayName string, folderID *int64) *UploadResult {
	out := &UploadResult{}

	if strings.TrimSpace(displayName) == "" {
		out.fail(common.ErrorEmptyName.Error())
		return out
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		out.fail("preparing upload: " + err.Error())
		return out
	}
	if _, err := io.Copy(fw, r); err != nil {
		out.fail("reading file: " + err.Error())
		return out
	}
	if err := mw.WriteField("displayName", strings.TrimSpace(displayName)); err != nil {
		out.fail("preparing upload: " + err.Error())
		return out
	}
	if folderID != nil {
		if err := mw.WriteField("folderId", strconv.FormatInt(*folderID, 10)); err != nil {
			out.fail("preparing upload: " + err.Error())
			return out
		}
	}
	if err := mw.Close(); err != nil {
		out.fail("preparing upload: " + err.Error())
		return out
	}

	c.do(ctx, http.MethodPost, "/files/upload", &buf, mw.FormDataContentType(), out)
	return out
}

// RenameFile sets the file's display name; the original upload name is
// never touched.
func (c *Client) RenameFile(ctx context.Context, fileID int64, displayName string) *Result {
	out := &Result{}

	if strings.TrimSpace(displayName) == "" {
		out.fail(common.ErrorEmptyName.Error())
		return out
	}

	c.postJSON(ctx, "/files/rename", map[string]any{
		"fileId":      fileID,
		"displayName": strings.TrimSpace(displayName),
	}, out)
	return out
}

// DeleteFile removes the file record and its stored content.
func (c *Client) DeleteFile(ctx context.Context, fileID int64) *Result {
	out := &Result{}
	c.delete(ctx, fmt.Sprintf("/files/%d", fileID), out)
	return out
}

// DownloadFile streams the file's binary content to w. The body is copied
// as it arrives; nothing is buffered in full. A failed response never
// writes to w.
func (c *Client) DownloadFile(ctx context.Context, fileID int64, w io.Writer) *DownloadResult {
	out := &DownloadResult{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(fmt.Sprintf("/files/%d/download", fileID)), nil)
	if err != nil {
		out.fail("invalid request: " + err.Error())
		return out
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	c.attachCredential(req)

	resp, err := c.http.Do(req)
	if err != nil {
		out.fail("request failed: " + err.Error())
		return out
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// error bodies are JSON on this endpoint too
		data, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(data, out); err != nil || out.Message == "" {
			out.Message = resp.Status
		}
		out.OK = false
		c.reactToAuthFailure(ctx, resp.StatusCode, &out.Result)
		return out
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		out.fail("saving file: " + err.Error())
		return out
	}

	out.OK = true
	out.BytesWritten = n
	return out
}
