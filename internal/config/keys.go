package config

const (
	KeyNWSBaseURL = "nws_base_url"
	KeyUserAgent  = "user_agent"
	KeyLogLevel   = "log_level"
)
