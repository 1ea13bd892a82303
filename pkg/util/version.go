package util

// 以下变量在构建时通过 -ldflags 注入
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// VersionInfo 构建版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
}

// GetVersion 返回当前构建的版本信息
func GetVersion() VersionInfo {
	return VersionInfo{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
	}
}
