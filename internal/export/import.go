package export

import (
	"encoding/json"
	"fmt"

	"github.com/cosmic-tools/cosmic-ledger/internal/common"
)

// ParseDocument decodes an import document. The document must contain an
// `expenses` field holding an array; anything else is rejected with
// ErrInvalidFormat. Goals and settings are optional.
func ParseDocument(raw []byte) (Document, error) {
	var probe struct {
		Expenses json.RawMessage `json:"expenses"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}
	if len(probe.Expenses) == 0 || string(probe.Expenses) == "null" {
		return Document{}, fmt.Errorf("%w: no expenses found in document", common.ErrInvalidFormat)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}
	if doc.Expenses == nil {
		return Document{}, fmt.Errorf("%w: expenses must be an array", common.ErrInvalidFormat)
	}
	return doc, nil
}
