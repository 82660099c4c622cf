package sshc

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/kevinburke/ssh_config"
)

// ResolveHostName maps an SSH alias to its HostName. Only a Host block that
// names the alias literally counts; wildcard blocks such as "Host *" never
// redirect a name, and IP literals are returned as typed. Anything that goes
// wrong leaves the name as typed too.
func ResolveHostName(name string, configPath string) string {
	if name == "" || strings.ContainsAny(name, "*?!") || net.ParseIP(name) != nil {
		return name
	}
	cfg, err := decodeFile(configPath)
	if err != nil {
		return name
	}
	hostname := lookupHostName(cfg, name)
	if hostname == "" {
		return name
	}
	// %h is the alias itself
	return strings.ReplaceAll(hostname, "%h", name)
}

func decodeFile(configPath string) (*ssh_config.Config, error) {
	configPath = expandConfigPath(configPath)

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SSH config file %s: %w", configPath, err)
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SSH config: %w", err)
	}
	return cfg, nil
}

// lookupHostName returns the HostName of the first block whose pattern list
// holds alias verbatim. Matches rejects blocks where alias is negated.
func lookupHostName(cfg *ssh_config.Config, alias string) string {
	for _, host := range cfg.Hosts {
		if !namesAlias(host, alias) || !host.Matches(alias) {
			continue
		}
		for _, node := range host.Nodes {
			kv, ok := node.(*ssh_config.KV)
			if ok && strings.EqualFold(kv.Key, "HostName") && kv.Value != "" {
				return kv.Value
			}
		}
	}
	return ""
}

func namesAlias(host *ssh_config.Host, alias string) bool {
	for _, p := range host.Patterns {
		if p.String() == alias {
			return true
		}
	}
	return false
}

func expandConfigPath(configPath string) string {
	configPath = os.ExpandEnv(configPath)
	if strings.HasPrefix(configPath, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			configPath = filepath.Join(home, configPath[2:])
		}
	}
	return configPath
}
