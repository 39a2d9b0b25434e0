package app

import "navshell/internal/config"

// ConfigReloadedMsg carries a configuration that replaced the running one.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a configuration change that was rejected.
type ConfigErrorMsg struct {
	Err error
}
