package feed

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/farxc/cnpj_registry/internal/logger"
)

// ReceitaCNAEURL is the classification table published with the open CNPJ
// data dump.
var ReceitaCNAEURL = "https://arquivos.receitafederal.gov.br/dados/cnpj/dados_abertos_cnpj/Cnaes.zip"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Download saves the body at url into destDir and returns the file path.
func Download(ctx context.Context, client *http.Client, url, destDir string, log *logger.Logger) (string, error) {
	const component = "Downloader"

	if client == nil {
		client = &http.Client{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	log.Debug(component, "Starting download: url=%s", url)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download %s: status %s", url, resp.Status)
	}

	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return "", err
	}

	name := path.Base(req.URL.Path)
	if name == "" || name == "/" || name == "." {
		name = "feed.zip"
	}
	outputPath := filepath.Join(destDir, name)

	out, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer out.Close()

	bytesWritten, err := io.Copy(out, resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	log.Info(component, "Download completed: path=%s size=%d bytes", outputPath, bytesWritten)
	return outputPath, nil
}

// Unzip extracts every regular file of zipPath into destDir and returns the
// extracted paths in archive order.
func Unzip(zipPath, destDir string, log *logger.Logger) ([]string, error) {
	const component = "Unzipper"

	if err := os.MkdirAll(destDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip file %s: %w", zipPath, err)
	}
	defer r.Close()

	var extracted []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		filePath := filepath.Join(destDir, f.Name)
		if !strings.HasPrefix(filePath, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return nil, fmt.Errorf("invalid file path in archive (possible zip slip): %s", f.Name)
		}

		if err := extractFile(f, filePath); err != nil {
			return nil, err
		}
		extracted = append(extracted, filePath)
	}

	log.Info(component, "Extraction completed: destDir=%s extractedFiles=%d", destDir, len(extracted))
	return extracted, nil
}

func extractFile(f *zip.File, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return err
	}

	dest, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", filePath, err)
	}
	defer dest.Close()

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open zipped file %s: %w", f.Name, err)
	}
	defer src.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return fmt.Errorf("failed to extract file %s: %w", f.Name, err)
	}
	return nil
}
