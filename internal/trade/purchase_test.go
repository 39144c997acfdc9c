package trade

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdexapp/verdex/internal/api"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testProjects() []api.Project {
	return []api.Project{
		{ID: 1, Titulo: "Reflorestamento Amazônia", Valor: dec("45.00")},
		{ID: 2, Titulo: "Energia Solar Nordeste", Valor: dec("25.00")},
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "10,50", "1.2.3", "-5", "0", "-0.01"} {
		_, err := ParseAmount(raw)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", raw)
	}
}

func TestParseAmountAccepts(t *testing.T) {
	got, err := ParseAmount(" 50.25 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("50.25")))
}

func TestImpliedTonsScenario(t *testing.T) {
	// amount=50, price=25.00 → 2.00 tons
	tons := ImpliedTons(dec("50"), dec("25.00"))
	assert.Equal(t, "2.00", FormatTons(tons))
}

func TestImpliedTonsZeroPrice(t *testing.T) {
	assert.True(t, ImpliedTons(dec("50"), decimal.Zero).IsZero())
}

func TestNewPurchaseIntentValid(t *testing.T) {
	intent, err := NewPurchaseIntent("50", 2, testProjects())
	require.NoError(t, err)
	assert.Equal(t, "Energia Solar Nordeste", intent.Project.Titulo)
	assert.Equal(t, "2.00", FormatTons(intent.Tons()))
}

func TestNewPurchaseIntentUnknownProject(t *testing.T) {
	_, err := NewPurchaseIntent("50", 99, testProjects())
	assert.ErrorIs(t, err, ErrNoProject)
}

func TestNewPurchaseIntentBelowMinimum(t *testing.T) {
	// amount=0.10, price=25.00 → 0.004 tons < 0.01
	_, err := NewPurchaseIntent("0.10", 2, testProjects())
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestNewPurchaseIntentExactMinimum(t *testing.T) {
	// 0.25 / 25.00 = exactly 0.01 tons
	_, err := NewPurchaseIntent("0.25", 2, testProjects())
	assert.NoError(t, err)
}

func TestNewPurchaseIntentInvalidAmountShortCircuits(t *testing.T) {
	_, err := NewPurchaseIntent("nope", 1, testProjects())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
