package payslip

import (
	"fmt"
	"strings"
)

func (s *Service) EmailSettings() SettingsView {
	return view(s.mailer.Settings())
}

// UpdateEmailSettings replaces the transport settings. A blank password
// keeps the one already set.
func (s *Service) UpdateEmailSettings(next EmailSettings) (SettingsView, error) {
	next.Host = strings.TrimSpace(next.Host)
	next.From = strings.TrimSpace(next.From)
	next.Username = strings.TrimSpace(next.Username)
	if next.Port == 0 {
		next.Port = 587
	}
	if next.Port < 1 || next.Port > 65535 {
		return SettingsView{}, fmt.Errorf("%w: port must be 1-65535", ErrInvalidSettings)
	}
	if next.From != "" && !strings.Contains(next.From, "@") {
		return SettingsView{}, fmt.Errorf("%w: sender must be an email address", ErrInvalidSettings)
	}
	if next.Password == "" {
		next.Password = s.mailer.Settings().Password
	}
	if err := s.mailer.Configure(next); err != nil {
		return SettingsView{}, err
	}
	return view(s.mailer.Settings()), nil
}

func view(st EmailSettings) SettingsView {
	return SettingsView{
		Host:        st.Host,
		Port:        st.Port,
		Username:    st.Username,
		From:        st.From,
		UseTLS:      st.UseTLS,
		PasswordSet: st.Password != "",
		Configured:  st.Host != "" && st.From != "",
	}
}
