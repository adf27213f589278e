package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/itsChris/wifiqr/internal/export"
	"github.com/itsChris/wifiqr/internal/i18n"
	"github.com/itsChris/wifiqr/internal/qr"
	"github.com/itsChris/wifiqr/internal/wifi"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	creds        credentialFlags
	terminal     bool
	base64       bool
	dataURL      bool
	printPayload bool
	noFile       bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a WiFi QR code PNG",
		Example: `  wifiqr generate --ssid Home --password-stdin < pass.txt
  wifiqr generate --ssid Cafe --security nopass --terminal --no-file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	opts.creds.register(cmd)
	fs := cmd.Flags()
	fs.String("output", "", "file name for the PNG (default wifi-qr; .png is appended)")
	fs.String("dir", "", "directory to write the PNG into (default .)")
	fs.BoolVar(&opts.terminal, "terminal", false, "also draw the QR code in the terminal")
	fs.BoolVar(&opts.base64, "base64", false, "print the PNG as base64 to stdout")
	fs.BoolVar(&opts.dataURL, "data-url", false, "print the PNG as a data URL to stdout")
	fs.BoolVar(&opts.printPayload, "print-payload", false, "print the encoded WIFI: string to stdout")
	fs.BoolVar(&opts.noFile, "no-file", false, "do not write a PNG file")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	env, err := setup(cmd, "generate")
	if err != nil {
		return err
	}

	cred, err := opts.creds.credential(cmd)
	if err != nil {
		return reportError(env, err)
	}
	if err := checkCredential(env, cred); err != nil {
		return err
	}

	res, err := wifi.EncodeCredential(cred)
	if err != nil {
		env.logger.Error("qr_encode_failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
			"operation", "generate",
			"component", "cli",
		)
		return reportError(env, err)
	}

	env.logger.Info("qr_generated",
		"ssid_length", len([]rune(cred.SSID)),
		"security", res.Credential.Security.String(),
		"hidden", cred.Hidden,
		"payload_bytes", len(res.Payload),
		"png_bytes", len(res.Image.PNG),
		"modules", res.Image.Modules,
		"component", "cli",
	)

	// Machine-readable output owns stdout; the summary moves to stderr.
	summaryOut := env.out
	if opts.base64 || opts.dataURL || opts.printPayload {
		summaryOut = env.errOut
	}

	if opts.printPayload {
		fmt.Fprintln(env.out, res.Payload)
	}
	if opts.base64 {
		fmt.Fprintln(env.out, res.Image.Base64())
	}
	if opts.dataURL {
		fmt.Fprintln(env.out, res.Image.DataURL())
	}
	if opts.terminal {
		if err := qr.Fprint(summaryOut, res.Payload); err != nil {
			return reportError(env, err)
		}
	}

	savedAs := ""
	if !opts.noFile {
		exporter := export.NewExporter(env.cfg.Output.Dir, env.logger)
		path, err := exporter.Export(res.Image, env.cfg.Output.Filename)
		if err != nil {
			return reportError(env, err)
		}
		savedAs = path
	}

	printSummary(summaryOut, env.locale, res, savedAs)
	return nil
}

func printSummary(w io.Writer, l i18n.Locale, res *wifi.Result, savedAs string) {
	c := res.Credential
	fmt.Fprintf(w, "%-16s %s\n", i18n.Message(l, i18n.KeyNetwork), c.SSID)
	fmt.Fprintf(w, "%-16s %s\n", i18n.Message(l, i18n.KeySecurity), i18n.SecurityLabel(l, c.Security.String()))
	if c.Security.RequiresPassword() {
		fmt.Fprintf(w, "%-16s %s\n", i18n.Message(l, i18n.KeyPassword), c.MaskedPassword())
	}
	if c.Hidden {
		fmt.Fprintf(w, "%-16s %s\n", i18n.Message(l, i18n.KeyHiddenNetwork), i18n.Message(l, i18n.KeyYes))
	}
	if savedAs != "" {
		fmt.Fprintf(w, "%s %s (%s)\n", i18n.Message(l, i18n.KeySavedAs), savedAs, humanize.Bytes(uint64(len(res.Image.PNG))))
	}
	fmt.Fprintln(w, i18n.Message(l, i18n.KeyScanHint))
}

func newPayloadCmd() *cobra.Command {
	var creds credentialFlags
	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Print the WIFI: configuration string without rendering an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, "payload")
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
			fmt.Fprintln(env.out, cred.Config())
			return nil
		},
	}
	creds.register(cmd)
	return cmd
}
