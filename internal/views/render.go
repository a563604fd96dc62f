package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// The list pane gets the wider column; the detail pane wraps notes to fit
// its narrower one.
const (
	listPaneWidth   = 64
	detailPaneWidth = 48
	noteWrapWidth   = detailPaneWidth - 4
)

type AppData struct {
	Title         string
	Counts        string
	ListPane      string
	DetailPane    string
	StatusLine    string
	StatusIsError bool
	Notification  string
	Footer        string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderApp assembles the frame: title and counts on one header line, the
// list pane beside the narrower detail pane, then status, notification and
// footer. Empty sections are omitted entirely rather than rendered blank.
func RenderApp(data AppData) string {
	header := titleStyle.Render(data.Title)
	if data.Counts != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Bottom, header, countStyle.Render("  "+data.Counts))
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Width(listPaneWidth).Render(data.ListPane),
		paneStyle.Width(detailPaneWidth).Render(data.DetailPane),
	)

	parts := []string{header, panes}
	if data.StatusLine != "" {
		if data.StatusIsError {
			parts = append(parts, errorStyle.Render("error: "+data.StatusLine))
		} else {
			parts = append(parts, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Notification != "" {
		parts = append(parts, noticeStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		parts = append(parts, footerStyle.Render(data.Footer))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderMarkdown renders note or help markdown wrapped to the detail pane
// width. Rendering failures fall back to the raw markdown; a note is better
// unstyled than missing.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(noteWrapWidth),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
