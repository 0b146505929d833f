package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Header lipgloss.Style
	Prompt lipgloss.Style
	Card   lipgloss.Style
	Error  lipgloss.Style
	Win    lipgloss.Style
	Lose   lipgloss.Style
	Push   lipgloss.Style
	Info   lipgloss.Style
}

// newStyles binds the table styles to a renderer so colour support is
// detected on the console's own writer
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Card: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Push: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
