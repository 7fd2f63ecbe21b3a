package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sskit/ssconfig/client"
	"github.com/sskit/ssconfig/configtree"
	"github.com/sskit/ssconfig/internal/config"
	"github.com/sskit/ssconfig/internal/logger"
	"github.com/sskit/ssconfig/transport"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// registered before config.GetSettings triggers flag.Parse
	var path string
	var output string
	flag.StringVar(&path, "p", "", "Config path to fetch (e.g. node/service)")
	flag.StringVar(&output, "o", "tree", "Output format: tree, keys or value")

	log := logger.NewLogger("ssconfig")
	settings, err := config.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting settings")
	}
	log = log.SetLevel(settings.App.LogLevel)

	c := newClient(settings, log)

	if err := run(context.Background(), c, path, output); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("config fetch failed")
	}
}

// newClient wires the locator, transport, and timeouts from settings.
func newClient(settings *config.Settings, log *logger.Logger) *client.ManagerClient {
	var locatorOpts []client.LocatorOption
	if settings.Discovery.EndpointEnvVar != "" {
		locatorOpts = append(locatorOpts, client.WithEndpointEnvVar(settings.Discovery.EndpointEnvVar))
	}
	if settings.Discovery.EndpointFile != "" {
		locatorOpts = append(locatorOpts, client.WithEndpointFile(settings.Discovery.EndpointFile))
	}
	if settings.Discovery.PollInterval > 0 {
		locatorOpts = append(locatorOpts, client.WithPollInterval(settings.Discovery.PollInterval))
	}
	locatorOpts = append(locatorOpts, client.WithLocatorLogger(log))

	var rt transport.RequestReplier
	switch settings.Request.Transport {
	case config.TransportHTTP:
		rt = transport.NewHTTP()
	default:
		rt = transport.NewZMQ()
	}

	return client.New(
		client.WithLocator(client.NewLocator(locatorOpts...)),
		client.WithTransport(rt),
		client.WithRequestTimeout(settings.Request.Timeout),
		client.WithDiscoveryTimeout(settings.Discovery.Timeout),
		client.WithLogger(log),
	)
}

// run fetches path and writes the requested view to stdout.
func run(ctx context.Context, c *client.ManagerClient, path, output string) error {
	switch output {
	case "tree":
		tree, err := c.GetConfig(ctx, path)
		if err != nil {
			return err
		}
		return printTree(tree)
	case "keys":
		tree, err := c.GetConfig(ctx, path)
		if err != nil {
			return err
		}
		for _, key := range tree.Keys() {
			fmt.Println(key)
		}
		return nil
	case "value":
		val, err := c.GetValue(ctx, path)
		if err != nil {
			return err
		}
		raw, err := val.Serialize()
		if err != nil {
			return err
		}
		fmt.Println(raw)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want tree, keys or value)", output)
	}
}

func printTree(tree *configtree.Node) error {
	data, err := json.MarshalIndent(tree.RawMap(), "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
