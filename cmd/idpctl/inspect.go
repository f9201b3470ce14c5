package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/logger"
	"github.com/kbukum/idprovider/monocloud"
	"github.com/kbukum/idprovider/provider"
)

type inspectOutput struct {
	Header  map[string]any `json:"header"`
	Claims  *claims.Record `json:"claims"`
	Missing []string       `json:"missing,omitempty"`
	User    *provider.User `json:"user,omitempty"`
}

func (c *cli) newInspectCmd() *cobra.Command {
	var (
		extendFile  string
		addressFile string
	)

	cmd := &cobra.Command{
		Use:   "inspect <token|->",
		Short: "Decode an ID token without verifying it and partition its claims",
		Long: "Decode an ID token without verifying its signature and split its claims into\n" +
			"the ones the effective shape declares and the extra ones. Pass - to read the\n" +
			"token from stdin. The output must not be trusted for authorization.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readToken(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			shape, err := c.effectiveShape(addressFile, extendFile)
			if err != nil {
				return err
			}

			mc := jwt.MapClaims{}
			token, _, err := jwt.NewParser().ParseUnverified(raw, mc)
			if err != nil {
				return fmt.Errorf("decode token: %w", err)
			}

			rec := claims.Partition(shape, mc)
			out := inspectOutput{
				Header:  token.Header,
				Claims:  rec,
				Missing: rec.Missing(),
			}
			if user, err := mapUser(c, mc); err == nil {
				out.User = &user
			} else {
				c.log.Debug("profile mapping skipped", logger.ErrorFields("map_user", err))
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&extendFile, "extend", "", "JSON claim-shape extension for the profile")
	cmd.Flags().StringVar(&addressFile, "address", "", "JSON claim-shape extension for the address claim")
	return cmd
}

// mapUser decodes the claims into a Profile and applies the descriptor's
// user mapping.
func mapUser(c *cli, mc jwt.MapClaims) (provider.User, error) {
	data, err := json.Marshal(mc)
	if err != nil {
		return provider.User{}, err
	}
	var p monocloud.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return provider.User{}, err
	}
	d, err := c.descriptor()
	if err != nil {
		return provider.User{}, err
	}
	return d.MapUser(p, nil)
}

func readToken(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return strings.TrimSpace(arg), nil
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read token from stdin: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no token on stdin")
	}
	return line, nil
}
