package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadTruncatesWithEllipsis(t *testing.T) {
	assert.Equal(t, "Reflores…", pad("Reflorestamento", 9))
}

func TestPadFills(t *testing.T) {
	assert.Equal(t, "abc  ", pad("abc", 5))
}

func TestPadRuneAware(t *testing.T) {
	// "Amazônia" is 8 runes; must not be cut mid-rune.
	got := pad("Amazônia", 8)
	assert.Equal(t, "Amazônia", got)
}

func TestTableRenderContainsRows(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "ID", Width: 4},
		{Title: "Projeto", Width: 20},
	})
	tbl.AddRow(Row{"1", "Reflorestamento"})
	tbl.AddRow(Row{"2", "Energia Solar"})

	out := tbl.Render()
	assert.Contains(t, out, "Reflorestamento")
	assert.Contains(t, out, "Energia Solar")
	assert.Equal(t, 4, len(strings.Split(strings.TrimRight(out, "\n"), "\n")))
}

func TestTruncateCNPJ(t *testing.T) {
	assert.Equal(t, "1234…90", TruncateCNPJ("12345678000190"))
	assert.Equal(t, "123", TruncateCNPJ("123"))
}
