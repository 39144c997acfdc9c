package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#2DC653") // eco green — success, credits in
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — pending, warnings
	ColorError     = lipgloss.Color("#FF4444") // red — errors, insufficient funds
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — amounts
	ColorMeta      = lipgloss.Color("#555555") // dim gray — timestamps, hints
	ColorBorder    = lipgloss.Color("#14532D") // dark green — UI chrome
	ColorAccent    = lipgloss.Color("#38B2AC") // teal — identifiers, e-mails
	ColorHighlight = lipgloss.Color("#80ED99") // light green — selected rows
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleSelected = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true).
			MarginBottom(1)
)

// Banner returns the verdex ASCII banner.
func Banner() string {
	art := `
  ██╗   ██╗███████╗██████╗ ██████╗ ███████╗██╗  ██╗
  ██║   ██║██╔════╝██╔══██╗██╔══██╗██╔════╝╚██╗██╔╝
  ██║   ██║█████╗  ██████╔╝██║  ██║█████╗   ╚███╔╝
  ╚██╗ ██╔╝██╔══╝  ██╔══██╗██║  ██║██╔══╝   ██╔██╗
   ╚████╔╝ ███████╗██║  ██║██████╔╝███████╗██╔╝ ██╗
    ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝`

	tagline := StyleMeta.Render("     Créditos de carbono no seu terminal  🌱")
	return StyleSuccess.Render(art) + "\n" + tagline + "\n"
}

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Val formats an amount.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// Ident formats an identifier (e-mail, CNPJ, payment id).
func Ident(s string) string { return StyleAccent.Render(s) }

// Hint formats a usage hint.
func Hint(s string) string { return StyleMeta.Render(s) }

// TruncateCNPJ masks a CNPJ for display: 12.345.678/****-90 style is not
// required; keep first 4 and last 2 digits.
func TruncateCNPJ(cnpj string) string {
	if len(cnpj) <= 6 {
		return cnpj
	}
	return cnpj[:4] + "…" + cnpj[len(cnpj)-2:]
}
