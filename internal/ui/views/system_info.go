package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	DBPath       string
	DBExists     bool // true = Found, false = Not Found
	MonthlyLimit string
	BinaryBackup string
	TextBackup   string
	YAMLExport   string
	LogLevel     string
	AppDataDir   string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Monthly Limit", data.MonthlyLimit},
		{"Binary Backup", data.BinaryBackup},
		{"Text Backup", data.TextBackup},
		{"YAML Export", data.YAMLExport},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
