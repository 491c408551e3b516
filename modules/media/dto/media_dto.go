package dto

import "io"

// UploadFile is one file from the multipart request, already opened.
type UploadFile struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

type UploadFailure struct {
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

type UploadResponse struct {
	FileLinks []string        `json:"fileLinks"`
	Failures  []UploadFailure `json:"failures,omitempty"`
	// Category is echoed back untouched; it is client-side metadata only and
	// is not persisted with the stored objects.
	Category string `json:"category,omitempty"`
}

type ListImagesResponse struct {
	Images []string `json:"images"`
}
