package config

const (
	defaultDatabase  = "~/.local/share/scoutbase/scoutbase.db"
	defaultSourceDir = "~/.local/share/scoutbase/scans"
	defaultBoardDir  = "~/.config/scoutbase/boards"
	defaultExportDir = "~/.local/share/scoutbase/exports"
	defaultLogDir    = "~/.local/share/scoutbase/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Database:  defaultDatabase,
			SourceDir: defaultSourceDir,
			BoardDir:  defaultBoardDir,
			ExportDir: defaultExportDir,
			LogDir:    defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
