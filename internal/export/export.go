// Package export produces and consumes the ledger's interchange
// documents: a JSON backup of the whole state and a CSV listing of the
// expenses.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// Version is the interchange document version written on export.
const Version = "2.0.0"

// UserInfo identifies the exporting user. It comes from the identity
// provider (here, configuration) and is carried opaquely.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SettingsDoc is the settings section of an export document.
type SettingsDoc struct {
	User     UserInfo `json:"user"`
	Currency string   `json:"currency"`
	Budget   float64  `json:"budget"`
}

// Document is the JSON export/import shape.
type Document struct {
	ExportDate time.Time       `json:"exportDate"`
	Version    string          `json:"version"`
	Settings   SettingsDoc     `json:"settings"`
	Expenses   []model.Expense `json:"expenses"`
	Goals      []model.Goal    `json:"goals"`
}

// NewDocument assembles an export document from the current state.
func NewDocument(expenses []model.Expense, goals []model.Goal, settings model.Settings, user UserInfo, now time.Time) Document {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	if goals == nil {
		goals = []model.Goal{}
	}
	return Document{
		Expenses: expenses,
		Goals:    goals,
		Settings: SettingsDoc{
			Budget:   settings.Budget,
			Currency: settings.Currency,
			User:     user,
		},
		ExportDate: now,
		Version:    Version,
	}
}

// MarshalIndent renders the document as indented JSON.
func (d Document) MarshalIndent() ([]byte, error) {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return raw, nil
}

// CSV renders the expense list as a CSV document: a fixed header row,
// then one row per expense with every field quoted except the amount.
func CSV(expenses []model.Expense) string {
	var b strings.Builder
	b.WriteString("Title,Amount,Category,Date,Created At")

	for _, e := range expenses {
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("%q,%s,%q,%q,%q",
			e.Title,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Category,
			e.DayKey(),
			e.CreatedAt.Format(time.RFC3339),
		))
	}
	return b.String()
}
