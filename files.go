package siteforge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/imroc/req/v3"
	"github.com/siteforge/siteforge-go/remotepath"
)

const (
	v1FilesList   = "/api/v1/files/list"
	v1FilesUpload = "/api/v1/files/upload"
	v1FilesDelete = "/api/v1/files/delete"
)

// acceptedExtensions is the set of file types the service hosts.
// Folders are implicit from key prefixes and never uploaded.
var acceptedExtensions = map[string]struct{}{
	"png":   {},
	"jpg":   {},
	"svg":   {},
	"webp":  {},
	"woff2": {},
}

// IsAcceptedType reports whether the service accepts a file, based on
// its extension.
func IsAcceptedType(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	_, ok := acceptedExtensions[ext]
	return ok
}

// FilesAPI exposes the remote file tree: listings, uploads, deletes and
// the recursive purge and directory upload engines.
type FilesAPI struct {
	c *Client
}

func newFilesAPI(c *Client) *FilesAPI {
	return &FilesAPI{c: c}
}

// List returns the immediate children of a remote directory, split into
// subfolders and files. Listings are never cached; every traversal
// re-fetches.
func (f *FilesAPI) List(ctx context.Context, dir remotepath.Path) (*ListResponse, error) {
	r, err := f.c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if !dir.IsEmpty() {
		r.SetQueryParam("path", dir.String())
	}

	var result ListResponse
	resp, err := r.
		SetSuccessResult(&result).
		SetErrorResult(&APIError{}).
		Get(v1FilesList)

	if err := checkStatus(resp, err, http.StatusOK, "files list"); err != nil {
		return nil, err
	}

	return &result, nil
}

// Upload sends one local file into the remote directory and returns its
// public URL. The local existence and file type guards run before any
// network call is made.
func (f *FilesAPI) Upload(ctx context.Context, dir remotepath.Path, localPath string, opts ...UploadOption) (*UploadResponse, error) {
	r, err := f.c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(localPath)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
	}
	if !IsAcceptedType(localPath) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(localPath))
	}

	var options uploadOptions
	for _, opt := range opts {
		opt(&options)
	}

	if !dir.IsEmpty() {
		r.SetQueryParam("path", dir.String())
	}

	var result UploadResponse
	resp, err := r.
		SetFile("file", localPath).
		SetSuccessResult(&result).
		SetErrorResult(&APIError{}).
		SetUploadCallbackWithInterval(func(up req.UploadInfo) {
			if options.progress == nil {
				return
			}
			options.progress(up.UploadedSize, up.FileSize)
		}, time.Second).
		Put(v1FilesUpload)

	if err := checkStatus(resp, err, http.StatusCreated, "files upload"); err != nil {
		return nil, err
	}

	f.c.log.Info("upload",
		"path", dir.Append(filepath.Base(localPath)).String(),
		"size", humanize.Bytes(uint64(info.Size())),
		"url", result.URL)
	return &result, nil
}

// Delete removes one file from a remote directory. The upstream service
// returns no confirmation body.
func (f *FilesAPI) Delete(ctx context.Context, dir remotepath.Path, name string) error {
	r, err := f.c.authedRequest(ctx)
	if err != nil {
		return err
	}

	body := &DeleteRequest{Name: name}
	if !dir.IsEmpty() {
		body.Path = dir.String()
	}

	resp, err := r.
		SetBody(body).
		SetErrorResult(&APIError{}).
		Post(v1FilesDelete)

	if err := checkStatus(resp, err, http.StatusOK, "files delete"); err != nil {
		return err
	}

	f.c.log.Info("delete", "path", dir.Append(name).String())
	return nil
}
