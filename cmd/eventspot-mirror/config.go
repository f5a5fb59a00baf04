package main

import (
	"context"
	"flag"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	opaPath

	syncInterval
	debugClient
)

func parseExternalConfig(ctx context.Context, flags FlagMap) FlagMap {
	flags[listenAddress] = env.GetVariableOrDefault(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = env.GetVariableOrDefault(ctx, "SERVICE_PORT", flags[servicePort])
	flags[configPath] = env.GetVariableOrDefault(ctx, "MIRROR_CONFIG_PATH", flags[configPath])
	flags[opaPath] = env.GetVariableOrDefault(ctx, "POLICY_PATH", flags[opaPath])
	flags[syncInterval] = env.GetVariableOrDefault(ctx, "SYNC_INTERVAL", flags[syncInterval])
	flags[debugClient] = env.GetVariableOrDefault(ctx, "EVENTSPOT_CLIENT_DEBUG", flags[debugClient])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	flag.Func("config", "path to the account configuration", apply(configPath))
	flag.Func("policies", "an authorization policy file", apply(opaPath))
	flag.Func("interval", "time between scheduled syncs, 0 disables them", apply(syncInterval))
	flag.Parse()

	return flags
}

func defaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   "8080",

		configPath: "/opt/diwise/config/accounts.yaml",
		opaPath:    "/opt/diwise/config/authz.rego",

		syncInterval: "15m",
		debugClient:  "false",
	}
}

// interval returns the configured time between scheduled syncs
func (f FlagMap) interval() (time.Duration, error) {
	return time.ParseDuration(f[syncInterval])
}
