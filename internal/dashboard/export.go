package dashboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ziadkadry99/content-studio/internal/content"
)

// ExportFilename is the name the export is downloaded under.
const ExportFilename = "content-export.json"

// Export writes cards as a pretty-printed JSON array. No cards is "[]".
func Export(w io.Writer, cards []content.Item) error {
	if cards == nil {
		cards = []content.Item{}
	}
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
