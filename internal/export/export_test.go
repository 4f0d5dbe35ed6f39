package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-tools/cosmic-ledger/internal/common"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func sampleExpenses() []model.Expense {
	return []model.Expense{
		{
			ID:        "1709290000000",
			Title:     "Lunch, \"deluxe\"",
			Amount:    249.5,
			Category:  "food",
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:        "1709290000001",
			Title:     "Bus",
			Amount:    40,
			Category:  "transport",
			Date:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
		},
	}
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	settings := model.Settings{Budget: 7000, Currency: "€"}
	user := UserInfo{Name: "Ada", Email: "ada@example.com"}

	doc := NewDocument(sampleExpenses(), nil, settings, user, now)

	assert.Equal(t, Version, doc.Version)
	assert.Equal(t, now, doc.ExportDate)
	assert.Equal(t, 7000.0, doc.Settings.Budget)
	assert.Equal(t, "€", doc.Settings.Currency)
	assert.Equal(t, user, doc.Settings.User)
	require.NotNil(t, doc.Goals, "nil goals must export as an empty array")
	assert.Empty(t, doc.Goals)
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	goals := []model.Goal{{ID: "g1", Title: "Emergency fund", Target: 10000, Current: 2500}}
	doc := NewDocument(sampleExpenses(), goals, model.DefaultSettings(), UserInfo{}, now)

	raw, err := doc.MarshalIndent()
	require.NoError(t, err)

	parsed, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, doc.Expenses, parsed.Expenses)
	assert.Equal(t, doc.Goals, parsed.Goals)
	assert.Equal(t, doc.Settings, parsed.Settings)
	assert.Equal(t, doc.Version, parsed.Version)
}

func TestCSV(t *testing.T) {
	got := CSV(sampleExpenses())

	want := strings.Join([]string{
		"Title,Amount,Category,Date,Created At",
		`"Lunch, \"deluxe\"",249.5,"food","2024-03-01","2024-03-01T12:30:00Z"`,
		`"Bus",40,"transport","2024-03-02","2024-03-02T08:00:00Z"`,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCSV_Empty(t *testing.T) {
	assert.Equal(t, "Title,Amount,Category,Date,Created At", CSV(nil))
}

func TestParseDocument_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "definitely not json"},
		{"missing expenses", `{"version":"2.0.0","goals":[]}`},
		{"null expenses", `{"expenses":null}`},
		{"expenses not an array", `{"expenses":{"a":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidFormat)
		})
	}
}

func TestParseDocument_MinimalDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"expenses":[]}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Expenses)
	assert.NotNil(t, doc.Expenses)
}
