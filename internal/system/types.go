package system

// Capabilities records which optional OS facilities answered the startup probe
type Capabilities struct {
	BootTime           bool `json:"boot_time"`
	ProcessEnumeration bool `json:"process_enumeration"`
	Sampling           bool `json:"sampling"`
}

// SystemInfo represents general system information
type SystemInfo struct {
	Platform        string `json:"platform"`
	PlatformRelease string `json:"platform_release"`
	PlatformVersion string `json:"platform_version"`
	Architecture    string `json:"architecture"`
	RuntimeVersion  string `json:"runtime_version"`
	CPUCount        int    `json:"cpu_count"`
	Hostname        string `json:"hostname"`
	BootTime        string `json:"boot_time,omitempty"`
	UptimeSeconds   *int64 `json:"uptime_seconds,omitempty"`
	UptimePretty    string `json:"uptime_pretty,omitempty"`
}

// ProcessRecord is one row of the process list. Everything except Name is
// optional; the fallback path only fills Name.
type ProcessRecord struct {
	PID   *int32   `json:"pid"`
	Name  string   `json:"name"`
	User  *string  `json:"user"`
	CPU   *float64 `json:"cpu"`
	RSS   *uint64  `json:"rss"`
	Error string   `json:"error,omitempty"`
}

// Sample is one CPU/RAM reading
type Sample struct {
	Timestamp  string  `json:"ts"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
}
