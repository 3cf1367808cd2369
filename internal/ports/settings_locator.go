package ports

// SettingsLocator finds the settings file nearest to a directory or note file.
type SettingsLocator interface {
	Locate(start string) (path string, err error)
}
