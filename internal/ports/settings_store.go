package ports

import "github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"

// SettingsStore persists plot settings.
type SettingsStore interface {
	Load() (domain.Settings, error)
	Save(s domain.Settings) error
}
