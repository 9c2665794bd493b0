package util

// 构建时通过 -ldflags 注入
var (
	version   = "dev"
	gitCommit = "none"
	buildDate = "unknown"
)

// Version 描述二进制的构建信息
type Version struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
}

func GetVersion() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
	}
}
