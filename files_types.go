package siteforge

import (
	"time"
)

// FolderInfo is one subfolder entry in a remote listing.
type FolderInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// FileInfo is one file entry in a remote listing.
type FileInfo struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	ETag         string    `json:"etag"`
	URL          string    `json:"url"`
	Extension    string    `json:"extension"`
}

// ListResponse holds the immediate children of one remote directory.
type ListResponse struct {
	Folders []*FolderInfo `json:"folders"`
	Files   []*FileInfo   `json:"files"`
}

// ===================================================================================================

// UploadResponse is the response from a file upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// DeleteRequest identifies one remote file to delete. Path is omitted
// for the root directory.
type DeleteRequest struct {
	Path string `json:"path,omitempty"`
	Name string `json:"name"`
}

// ===================================================================================================

// UploadResult records the outcome of one local file processed by
// UploadDir. URL is set only on success.
type UploadResult struct {
	LocalPath string `json:"localPath"`
	OK        bool   `json:"ok"`
	URL       string `json:"url,omitempty"`
}

// ProgressFunc receives upload progress updates.
type ProgressFunc func(uploadedBytes int64, totalBytes int64)

type uploadOptions struct {
	progress ProgressFunc
}

// UploadOption customizes a single upload.
type UploadOption func(*uploadOptions)

// WithProgress reports upload progress roughly once per second.
func WithProgress(fn ProgressFunc) UploadOption {
	return func(o *uploadOptions) {
		o.progress = fn
	}
}
