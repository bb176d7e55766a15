package constants

const (
	AppName = "sift"

	DefaultBaseURL      = "http://localhost:8000"
	DefaultHistoryLimit = 20
	DefaultChartHeight  = 12

	LogFileName = "sift.log"
)
