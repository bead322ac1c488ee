package backend

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/guonaihong/gout"
	gbytes "github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

// UploadKind selects the backend upload endpoint
type UploadKind string

const (
	UploadImage UploadKind = "image"
	UploadIcon  UploadKind = "icon"
	UploadLogo  UploadKind = "logo"
)

// ParseUploadKind validates a kind received from a request path
func ParseUploadKind(s string) (UploadKind, error) {
	switch k := UploadKind(strings.ToLower(strings.TrimSpace(s))); k {
	case UploadImage, UploadIcon, UploadLogo:
		return k, nil
	default:
		return "", fmt.Errorf("unsupported upload kind %q", s)
	}
}

// UploadResult is what the backend returns for a stored file
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// ErrTooLarge is returned when content exceeds the configured upload limit
var ErrTooLarge = errors.New("file exceeds upload limit")

// UploadLimit returns the configured upload limit in bytes, 0 means unlimited
func (c *Client) UploadLimit() int64 {
	return c.uploadLimit
}

// CheckUploadSize fails with ErrTooLarge when size exceeds the upload limit
func (c *Client) CheckUploadSize(filename string, size int64) error {
	if c.uploadLimit > 0 && size > c.uploadLimit {
		return errors.Wrapf(ErrTooLarge, "%s is %s, limit %s",
			filename, gbytes.Format(size), gbytes.Format(c.uploadLimit))
	}
	return nil
}

// Upload posts content as multipart field "file" to /upload-<kind>
func (c *Client) Upload(ctx context.Context, kind UploadKind, filename string, content []byte) (UploadResult, error) {
	var res UploadResult
	if err := c.CheckUploadSize(filename, int64(len(content))); err != nil {
		return res, err
	}

	path := "/upload-" + string(kind)
	df, err := c.flow(http.MethodPost, path)
	if err != nil {
		return res, err
	}
	df = df.SetForm(gout.H{
		"file": gout.FormType{FileName: filepath.Base(filename), File: gout.FormMem(content)},
	})
	env, err := c.send(ctx, df, http.MethodPost, path)
	if err != nil {
		return res, errors.Wrapf(err, "upload %s", kind)
	}
	if _, err := env.Decode(&res); err != nil {
		return res, err
	}
	return res, nil
}
