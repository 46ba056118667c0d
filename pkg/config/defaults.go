package config

import "net"

/**
 * Environment variables
 */

// REST server env names
const RestHostEnvName = "WINGWEIGHT_HOST"
const RestPortEnvName = "WINGWEIGHT_PORT"

// logging level env name (debug, info, warn, error)
const LogLevelEnvName = "LOG_LEVEL"

/**
 * Parameters
 */

// REST server host and port
const DefaultRestHost = "0.0.0.0"
const DefaultRestPort = "8080"

// relative tolerance when comparing an estimate against a reference prediction
var ReferenceTolerance = 1e-9

// GetRestAddress returns host:port, taking values from the environment when set.
func GetRestAddress(getenv func(string) string) string {
	host, port := getenv(RestHostEnvName), getenv(RestPortEnvName)
	if host == "" {
		host = DefaultRestHost
	}
	if port == "" {
		port = DefaultRestPort
	}
	return net.JoinHostPort(host, port)
}
