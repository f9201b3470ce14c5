package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/kbukum/idprovider/claims"
	"github.com/kbukum/idprovider/logger"
	"github.com/kbukum/idprovider/monocloud"
	"github.com/kbukum/idprovider/provider"
)

type oauth2View struct {
	AuthURL     string   `json:"auth_url,omitempty"`
	TokenURL    string   `json:"token_url,omitempty"`
	RedirectURL string   `json:"redirect_url,omitempty"`
	Scopes      []string `json:"scopes"`
}

type describeOutput struct {
	provider.Info
	Claims  *claims.Shape     `json:"claims"`
	Options monocloud.Options `json:"options"`
	OAuth2  oauth2View        `json:"oauth2"`
}

func (c *cli) newDescribeCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the provider descriptor an engine would register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.descriptor()
			if err != nil {
				return err
			}

			reg := provider.NewRegistry()
			if err := reg.Register(d); err != nil {
				return err
			}
			if strict {
				if err := d.Options.Validate(d.Kind); err != nil {
					c.log.Error("provider options rejected", logger.ErrorFields("describe", err))
					return err
				}
			}

			oc := d.Options.OAuth2Config(c.cfg.RedirectURL, oauth2.Endpoint{})
			return writeJSON(cmd.OutOrStdout(), describeOutput{
				Info:    d.Info(),
				Claims:  d.EffectiveClaims(),
				Options: d.Options.Redacted(),
				OAuth2: oauth2View{
					AuthURL:     oc.Endpoint.AuthURL,
					TokenURL:    oc.Endpoint.TokenURL,
					RedirectURL: oc.RedirectURL,
					Scopes:      oc.Scopes,
				},
			})
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "also validate client credentials and issuer")
	return cmd
}
