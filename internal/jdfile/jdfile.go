// Package jdfile reads job-description text from local files for the CLI.
package jdfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF-")

// Read returns the job-description text stored at path. PDF files are
// extracted with a PDF text reader; everything else is treated as UTF-8
// plain text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read jd file %s: %w", path, err)
	}
	text, err := FromBytes(data, path)
	if err != nil {
		return "", fmt.Errorf("read jd file %s: %w", path, err)
	}
	return text, nil
}

// FromBytes extracts job-description text from an in-memory payload.
// name is used only for extension sniffing.
func FromBytes(data []byte, name string) (string, error) {
	if isPDF(data, name) {
		return extractPDF(data)
	}
	return strings.TrimSpace(string(data)), nil
}

func isPDF(data []byte, name string) bool {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return true
	}
	return bytes.HasPrefix(data, pdfMagic)
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
