package extract

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// extractPDF reads the text layer with MuPDF and falls back to the pure Go
// reader when MuPDF fails or finds nothing.
func extractPDF(data []byte) (string, error) {
	text, err := extractPDFFitz(data)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if err != nil {
		log.Printf("fitz: %v, falling back to plain pdf reader", err)
	}

	plain, plainErr := extractPDFPlain(data)
	if plainErr != nil {
		if err != nil {
			return "", fmt.Errorf("%w; %w", err, plainErr)
		}
		return "", plainErr
	}
	return plain, nil
}

func extractPDFFitz(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
			log.Println(lastErr)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText)
	}

	result := strings.Join(pages, "\n")
	if strings.TrimSpace(result) == "" && lastErr != nil {
		return "", lastErr
	}
	return result, nil
}

func extractPDFPlain(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("pdf page %d: %v", i, err)
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}
