package conf

type Config struct {
	SSHConfigPath string
	Log           Log
	Process       Process
	Ping          Ping
	Monitor       Monitor
}

type Log struct {
	Level string
}

type Process struct {
	TopN int
}

type Ping struct {
	TimeoutSec int
}

type Monitor struct {
	DurationSec int
	IntervalSec float64
}
