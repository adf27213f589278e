package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/itsChris/wifiqr/internal/i18n"
	"github.com/itsChris/wifiqr/internal/wifi"
	"github.com/spf13/cobra"
)

// credentialFlags are the network fields shared by generate, payload and
// validate.
type credentialFlags struct {
	ssid          string
	password      string
	passwordStdin bool
	security      string
	hidden        bool
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.ssid, "ssid", "", "network name")
	fs.StringVar(&f.password, "password", "", "network password (prefer --password-stdin)")
	fs.BoolVar(&f.passwordStdin, "password-stdin", false, "read the password from the first line of stdin")
	fs.StringVar(&f.security, "security", "WPA", "security type (WPA, WEP, nopass)")
	fs.BoolVar(&f.hidden, "hidden", false, "network does not broadcast its SSID")
}

func (f *credentialFlags) credential(cmd *cobra.Command) (wifi.Credential, error) {
	security, err := wifi.ParseSecurityType(f.security)
	if err != nil {
		return wifi.Credential{}, err
	}

	password := f.password
	if f.passwordStdin {
		if cmd.Flags().Changed("password") {
			return wifi.Credential{}, errors.New("--password and --password-stdin are mutually exclusive")
		}
		password, err = readLine(cmd.InOrStdin())
		if err != nil {
			return wifi.Credential{}, fmt.Errorf("read password from stdin: %w", err)
		}
	}

	return wifi.Credential{
		SSID:     f.ssid,
		Password: password,
		Security: security,
		Hidden:   f.hidden,
	}, nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// checkCredential validates c and prints every violation as
// "CODE: message". It returns errReported when c is invalid.
func checkCredential(env *cmdEnv, c wifi.Credential) error {
	result := c.Validate()
	if result.IsValid() {
		return nil
	}

	env.logger.Info("validation_failed",
		"errors", result.Errors,
		"ssid_length", len([]rune(c.SSID)),
		"security", c.Security.String(),
		"component", "cli",
	)
	for _, code := range result.Errors {
		fmt.Fprintf(env.errOut, "%s: %s\n", code, i18n.CodeMessage(env.locale, string(code)))
	}
	return errReported
}

// coder is implemented by errors that carry a stable error code.
type coder interface {
	Code() string
}

// reportError prints a localized message for coded errors and returns
// errReported; other errors are returned unchanged.
func reportError(env *cmdEnv, err error) error {
	var c coder
	if !errors.As(err, &c) {
		return err
	}
	fmt.Fprintf(env.errOut, "%s: %s\n  %v\n", c.Code(), i18n.CodeMessage(env.locale, c.Code()), err)
	return errReported
}
