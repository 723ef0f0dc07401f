package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-a webhook receiver address in format [host]:[port]
//	-backend-url backend project URL
//	-anon-key backend anon API key
//	-sheets-url spreadsheet webhook URL
//	-session-db client session database DSN
//	-sheet-db receiver sheet database DSN
//	-c/-config json file path with configs
//	-request-timeout backend request timeout (e.g. "15s")
//	-log-level zerolog level name
//	-reconcile-at daily rebuild time "HH:MM"
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("infaq", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var backendURL, anonKey, sheetsURL string
	var sessionDSN, sheetDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var logLevel, reconcileAt string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backendURL, "backend-url", "", "Backend project URL")
	fs.StringVar(&anonKey, "anon-key", "", "Backend anon API key")
	fs.StringVar(&sheetsURL, "sheets-url", "", "Spreadsheet webhook URL")
	fs.StringVar(&sessionDSN, "session-db", "", "Client session database DSN")
	fs.StringVar(&sheetDSN, "sheet-db", "", "Receiver sheet database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 15s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&reconcileAt, "reconcile-at", "", "Daily reconcile time HH:MM")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel},
		Backend: Backend{
			URL:            backendURL,
			AnonKey:        anonKey,
			RequestTimeout: requestTimeout,
		},
		Sheets: Sheets{ScriptURL: sheetsURL},
		Storage: Storage{
			SessionDB: DB{DSN: sessionDSN},
			SheetDB:   DB{DSN: sheetDSN},
		},
		Server:       Server{HTTPAddress: serverAddress.String()},
		Workers:      Workers{ReconcileAt: reconcileAt},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
