package tui

import (
	"context"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/cf-cookie-client/internal/render"
	"github.com/MKhiriev/cf-cookie-client/internal/service"
	"github.com/MKhiriev/cf-cookie-client/internal/utils"
	"github.com/MKhiriev/cf-cookie-client/models"
)

type cookiesState int

const (
	cookiesStateInput cookiesState = iota
	cookiesStateLoading
	cookiesStateLoaded
)

// CookiesModel shows the server's cached cookie set for a URL. It is reached
// either from the menu (the user types the URL) or straight from a finished
// refresh via a showCookiesFor payload.
type CookiesModel struct {
	svc *service.RefreshService

	urlInput textinput.Model

	state     cookiesState
	targetURL string
	cookies   map[string]string
	notice    string
	status    string
}

func NewCookiesModel(svc *service.RefreshService) *CookiesModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "example.com"
	urlInput.CharLimit = 2048

	return &CookiesModel{svc: svc, urlInput: urlInput}
}

func (m *CookiesModel) Init() tea.Cmd {
	m.state = cookiesStateInput
	m.notice = ""
	m.status = ""
	m.urlInput.Focus()
	return textinput.Blink
}

func (m *CookiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showCookiesFor:
		m.state = cookiesStateLoading
		m.notice = ""
		m.status = ""
		m.targetURL = msg.targetURL
		m.urlInput.SetValue(msg.targetURL)
		return m, m.cmdLoad(msg.targetURL)

	case cookiesLoadedMsg:
		if msg.err != nil {
			m.state = cookiesStateInput
			m.notice = "No cached cookies yet (" + render.RequestError(msg.err) + ") - run a refresh first?"
			return m, nil
		}
		m.state = cookiesStateLoaded
		m.targetURL = msg.targetURL
		m.cookies = msg.cookies
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.name + " to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case cookiesStateInput:
			return m.updateInput(msg)
		case cookiesStateLoaded:
			return m.updateLoaded(msg)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *CookiesModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }

	case key.Matches(msg, keys.enter):
		targetURL, err := utils.NormalizeTargetURL(m.urlInput.Value())
		if err != nil {
			m.notice = "Enter a valid URL, e.g. example.com"
			return m, nil
		}
		m.notice = ""
		m.status = ""
		m.state = cookiesStateLoading
		m.targetURL = targetURL
		return m, m.cmdLoad(targetURL)
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m *CookiesModel) updateLoaded(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()

	case key.Matches(msg, keys.enter):
		m.state = cookiesStateInput
		m.notice = ""
		m.status = ""
		return m, nil

	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	return m, nil
}

func (m *CookiesModel) cmdLoad(targetURL string) tea.Cmd {
	return func() tea.Msg {
		cookies, err := m.svc.CachedCookies(context.Background(), targetURL)
		return cookiesLoadedMsg{targetURL: targetURL, cookies: cookies, err: err}
	}
}

// cmdCopy puts the clearance cookie on the clipboard, falling back to the
// first Cloudflare cookie (then the first cookie overall) by sorted name.
func (m *CookiesModel) cmdCopy() tea.Cmd {
	name, value, ok := pickClipboardCookie(m.cookies)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return copiedMsg{name: name, err: clipboard.WriteAll(value)}
	}
}

func pickClipboardCookie(cookies map[string]string) (name, value string, ok bool) {
	if len(cookies) == 0 {
		return "", "", false
	}
	if v, exists := cookies["cf_clearance"]; exists {
		return "cf_clearance", v, true
	}

	names := make([]string, 0, len(cookies))
	for n := range cookies {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, n := range names {
		if models.IsCloudflareCookie(n) {
			return n, cookies[n], true
		}
	}
	return names[0], cookies[names[0]], true
}

func (m *CookiesModel) View() string {
	switch m.state {
	case cookiesStateLoading:
		return renderPage("CACHED COOKIES", "Loading cookies for "+m.targetURL+"...", "")

	case cookiesStateLoaded:
		body := render.Cookies(m.targetURL, m.cookies)
		if m.status != "" {
			body += "\n\n" + m.status
		}
		return renderPage("CACHED COOKIES", body, "y: copy clearance cookie │ enter: another URL │ esc: menu")
	}

	body := "Target URL:\n" + m.urlInput.View()
	if m.notice != "" {
		body += "\n\n" + m.notice
	}
	return renderPage("CACHED COOKIES", body, "enter: show cookies │ esc: menu")
}
