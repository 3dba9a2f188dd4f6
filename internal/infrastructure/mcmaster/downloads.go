package mcmaster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type linkItem struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

type productLinksResponse struct {
	Links []linkItem `json:"Links"`
}

// CADFile is one downloadable CAD asset with its catalog key, e.g.
// "2-D DWG" or "3-D STEP".
type CADFile struct {
	Key string
	URL string
}

// ProductLinks groups the downloadable assets of a product.
type ProductLinks struct {
	Images     []string
	CAD        []CADFile
	Datasheets []string
}

// cadExtensions maps substrings of catalog link keys to file extensions.
// Keys that match none of these are not CAD files.
var cadExtensions = []struct {
	marker string
	ext    string
}{
	{"DWG", ".dwg"},
	{"STEP", ".step"},
	{"DXF", ".dxf"},
	{"IGES", ".iges"},
	{"SLDPRT", ".sldprt"},
	{"SLDDRW", ".slddrw"},
	{"SAT", ".sat"},
	{"EDRW", ".edrw"},
	{"PDF", ".pdf"},
}

func cadExtension(key string) (string, bool) {
	for _, c := range cadExtensions {
		if strings.Contains(key, c.marker) {
			return c.ext, true
		}
	}
	return "", false
}

// GetProductLinks fetches the download links of a product, grouped by
// asset kind.
func (c *Client) GetProductLinks(ctx context.Context, partNumber string) (*ProductLinks, error) {
	var resp productLinksResponse
	err := c.doJSON(ctx, http.MethodGet, "/products/"+url.PathEscape(partNumber), nil, &resp)
	if err != nil {
		return nil, err
	}

	links := &ProductLinks{}
	for _, link := range resp.Links {
		switch {
		case strings.Contains(link.Key, "Image"):
			links.Images = append(links.Images, link.Value)
		case strings.Contains(link.Key, "Datasheet"):
			links.Datasheets = append(links.Datasheets, link.Value)
		default:
			if _, ok := cadExtension(link.Key); ok {
				links.CAD = append(links.CAD, CADFile{Key: link.Key, URL: link.Value})
			}
		}
	}
	return links, nil
}

// DownloadImages saves all product images under dir/<part>/images and
// returns the written paths.
func (c *Client) DownloadImages(ctx context.Context, partNumber, dir string) ([]string, error) {
	links, err := c.GetProductLinks(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if len(links.Images) == 0 {
		return nil, nil
	}

	outDir := filepath.Join(dir, partNumber, "images")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outDir, err)
	}

	var written []string
	for i, imageURL := range links.Images {
		name := partNumber + ".jpg"
		if len(links.Images) > 1 {
			name = fmt.Sprintf("%s_%d.jpg", partNumber, i+1)
		}
		path := filepath.Join(outDir, name)
		if err := c.downloadFile(ctx, imageURL, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	c.logger.Info("downloaded images",
		zap.String("part", partNumber), zap.Int("count", len(written)))
	return written, nil
}

// DownloadCAD saves the product's CAD files under dir/<part>/cad and
// returns the written paths. An empty formats slice downloads every
// available file; otherwise only keys matching a requested format
// (case-insensitive substring, e.g. "step", "dwg") are fetched.
func (c *Client) DownloadCAD(ctx context.Context, partNumber, dir string, formats []string) ([]string, error) {
	links, err := c.GetProductLinks(ctx, partNumber)
	if err != nil {
		return nil, err
	}

	var selected []CADFile
	for _, f := range links.CAD {
		if len(formats) == 0 || matchesFormat(f.Key, formats) {
			selected = append(selected, f)
		}
	}
	if len(selected) == 0 {
		return nil, nil
	}

	outDir := filepath.Join(dir, partNumber, "cad")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outDir, err)
	}

	var written []string
	for _, f := range selected {
		ext, _ := cadExtension(f.Key)
		name := partNumber + "_" + sanitizeKey(f.Key) + ext
		path := filepath.Join(outDir, name)
		if err := c.downloadFile(ctx, f.URL, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	c.logger.Info("downloaded CAD files",
		zap.String("part", partNumber), zap.Int("count", len(written)))
	return written, nil
}

// DownloadDatasheets saves the product datasheets under
// dir/<part>/datasheets and returns the written paths.
func (c *Client) DownloadDatasheets(ctx context.Context, partNumber, dir string) ([]string, error) {
	links, err := c.GetProductLinks(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if len(links.Datasheets) == 0 {
		return nil, nil
	}

	outDir := filepath.Join(dir, partNumber, "datasheets")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outDir, err)
	}

	var written []string
	for i, sheetURL := range links.Datasheets {
		name := partNumber + ".pdf"
		if len(links.Datasheets) > 1 {
			name = fmt.Sprintf("%s_%d.pdf", partNumber, i+1)
		}
		path := filepath.Join(outDir, name)
		if err := c.downloadFile(ctx, sheetURL, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	c.logger.Info("downloaded datasheets",
		zap.String("part", partNumber), zap.Int("count", len(written)))
	return written, nil
}

func matchesFormat(key string, formats []string) bool {
	upper := strings.ToUpper(key)
	for _, f := range formats {
		if strings.Contains(upper, strings.ToUpper(f)) {
			return true
		}
	}
	return false
}

// sanitizeKey turns a link key like "3-D STEP" into a filename fragment.
func sanitizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", "_"))
}

// downloadFile fetches an authenticated URL straight to disk.
func (c *Client) downloadFile(ctx context.Context, rawURL, path string) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.absoluteURL(rawURL), nil)
	if err != nil {
		return fmt.Errorf("building download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: HTTP %d", rawURL, resp.StatusCode)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
