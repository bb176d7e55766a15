package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/sift/pkg/utils"
	"github.com/ionut-t/sift/ui/styles"
)

// successNotification displays a success message
func (m *model) successNotification(msg string) tea.Cmd {
	m.notification = styles.Success.Render(msg)
	return utils.ClearAfter(NotificationDuration)
}

// errorNotification displays an error message and records it in the log
func (m *model) errorNotification(err error) tea.Cmd {
	m.logger.Error().Err(err).Msg("notification")
	m.notification = styles.Error.Render(err.Error())
	return utils.ClearAfter(NotificationDuration)
}
