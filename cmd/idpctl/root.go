package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/config"
	"github.com/kbukum/idprovider/logger"
	"github.com/kbukum/idprovider/monocloud"
)

const appName = "idpctl"

// cli holds state shared by the subcommands.
type cli struct {
	configFile string
	envFile    string
	cfg        config.Config
	log        *logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Inspect the MonoCloud identity-provider integration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: ./idpctl.yml, ./config/idpctl.yml)")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", ".env file (default: ./.env.idpctl, ./.env)")

	root.AddCommand(
		c.newDescribeCmd(),
		c.newClaimsCmd(),
		c.newInspectCmd(),
		newVersionCmd(),
	)
	return root
}

func (c *cli) loadConfig() error {
	var opts []config.LoaderOption
	if c.configFile != "" {
		opts = append(opts, config.WithConfigFile(c.configFile))
	}
	if c.envFile != "" {
		opts = append(opts, config.WithEnvFile(c.envFile))
	}
	opts = append(opts, config.WithEnvPrefixes("MONOCLOUD", "LOGGING"))

	if err := config.LoadConfig(appName, &c.cfg, opts...); err != nil {
		return err
	}
	c.cfg.ApplyDefaults()
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	logger.Init(&c.cfg.Logging)
	logger.RegisterComponents(appName, "config", "provider")
	c.log = logger.Get(appName)
	c.log.Debug("configuration loaded", logger.Fields(
		"environment", c.cfg.Environment,
		logger.FieldIssuer, c.cfg.MonoCloud.Issuer,
	))
	return nil
}

// descriptor builds the MonoCloud descriptor from the loaded configuration.
func (c *cli) descriptor() (monocloud.Descriptor, error) {
	opts, err := config.ProviderOptions[monocloud.Profile](c.cfg.MonoCloud)
	if err != nil {
		return monocloud.Descriptor{}, err
	}
	return monocloud.New(opts), nil
}

// effectiveShape is the descriptor's effective claims with optional
// address and profile extensions loaded from files layered on top.
func (c *cli) effectiveShape(addressFile, extendFile string) (*claims.Shape, error) {
	d, err := c.descriptor()
	if err != nil {
		return nil, err
	}
	shape := d.EffectiveClaims()
	if addressFile != "" {
		ext, err := config.LoadShape(addressFile)
		if err != nil {
			return nil, err
		}
		shape = claims.Override(shape, monocloud.AddressExtension(ext))
	}
	if extendFile != "" {
		ext, err := config.LoadShape(extendFile)
		if err != nil {
			return nil, err
		}
		shape = claims.Override(shape, ext)
	}
	return shape, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
