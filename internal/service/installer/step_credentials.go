package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TelegramTokenStep collects the Telegram bot token
type TelegramTokenStep struct {
	input textinput.Model
}

func NewTelegramTokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789:ABCDEF..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &TelegramTokenStep{
		input: ti,
	}
}

func (s *TelegramTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TelegramTokenStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" && s.input.Value() != "" {
			state.EnvVars["FLASHBOT_TELEGRAM_TOKEN"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *TelegramTokenStep) View(state *InstallState) string {
	return "Enter your Telegram Bot Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// OpenRouterKeyStep collects the OpenRouter API key
type OpenRouterKeyStep struct {
	input textinput.Model
}

func NewOpenRouterKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "sk-or-v1-..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &OpenRouterKeyStep{
		input: ti,
	}
}

func (s *OpenRouterKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *OpenRouterKeyStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" && s.input.Value() != "" {
			state.EnvVars["FLASHBOT_OPENROUTER_API_KEY"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *OpenRouterKeyStep) View(state *InstallState) string {
	return "Enter your OpenRouter API Key:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// AdminChatStep collects the optional admin notification chat
type AdminChatStep struct {
	input textinput.Model
}

func NewAdminChatStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "123456789"
	ti.EchoMode = textinput.EchoNormal

	return &AdminChatStep{
		input: ti,
	}
}

func (s *AdminChatStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AdminChatStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if v := s.input.Value(); v != "" {
				state.EnvVars["FLASHBOT_ADMIN_CHAT_ID"] = v
			}
			return nil, nil
		}
	}
	return s, cmd
}

func (s *AdminChatStep) View(state *InstallState) string {
	return "Enter an admin chat ID for startup notifications (optional):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm, leave empty to skip)\n"
}
