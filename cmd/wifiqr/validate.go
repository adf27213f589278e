package main

import (
	"fmt"

	"github.com/itsChris/wifiqr/internal/i18n"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check network details without generating a QR code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, "validate")
			if err != nil {
				return err
			}
			cred, err := creds.credential(cmd)
			if err != nil {
				return reportError(env, err)
			}
			if err := checkCredential(env, cred); err != nil {
				return err
			}
			fmt.Fprintln(env.out, i18n.Message(env.locale, i18n.KeyValid))
			return nil
		},
	}
	creds.register(cmd)
	return cmd
}
