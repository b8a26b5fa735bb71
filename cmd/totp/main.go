// Package main implements totp, a command-line generator and verifier for
// RFC 6238 time-based one-time passwords.
package main

import (
	"encoding/base32"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhahn/go-otp/pkg/otp"
	"github.com/jhahn/go-otp/pkg/totp"
)

// Version is set via ldflags.
var Version = "dev"

func main() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// App builds the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "totp",
		Usage:   "generate and verify time-based one-time passwords",
		Version: Version,
		Commands: []*cli.Command{
			generateCommand(),
			verifyCommand(),
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Print the code for a time step",
		Flags:   codeFlags(),
		Action:  generate,
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Check a passcode against the shared secret",
		Flags: append(codeFlags(), &cli.StringFlag{
			Name:     "code",
			Aliases:  []string{"c"},
			Usage:    "passcode to check",
			Required: true,
		}),
		Action: verify,
	}
}

// codeFlags returns the derivation parameters shared by both commands.
func codeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "secret",
			Aliases:  []string{"s"},
			Usage:    "base32-encoded shared secret",
			EnvVars:  []string{"TOTP_SECRET"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "HMAC hash: SHA1, SHA256, or SHA512",
			Value:   "SHA1",
		},
		&cli.IntFlag{
			Name:    "digits",
			Aliases: []string{"d"},
			Usage:   "code width",
			Value:   6,
		},
		&cli.UintFlag{
			Name:  "period",
			Usage: "time step in seconds",
			Value: totp.DefaultPeriod,
		},
		&cli.Int64Flag{
			Name:  "epoch",
			Usage: "Unix time the counter starts from",
		},
		&cli.Int64Flag{
			Name:    "time",
			Aliases: []string{"t"},
			Usage:   "Unix time to derive the code for (default: now)",
		},
	}
}

func generate(c *cli.Context) error {
	algo, secret, opts, err := deriveParams(c)
	if err != nil {
		return err
	}

	code, err := totp.GenerateCodeCustom(algo, secret, flagTime(c), opts)
	if err != nil {
		return err
	}

	fmt.Println(code)
	return nil
}

func verify(c *cli.Context) error {
	algo, secret, opts, err := deriveParams(c)
	if err != nil {
		return err
	}

	ok, err := totp.ValidateCustom(algo, c.String("code"), secret, flagTime(c), opts)
	if err != nil {
		return err
	}
	if !ok {
		return cli.Exit("invalid code", 1)
	}

	fmt.Println("valid")
	return nil
}

// deriveParams resolves the shared flags into library arguments.
func deriveParams(c *cli.Context) (otp.Algorithm, []byte, totp.Options, error) {
	algo, err := otp.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return 0, nil, totp.Options{}, err
	}

	secret, err := decodeSecret(c.String("secret"))
	if err != nil {
		return 0, nil, totp.Options{}, err
	}

	opts := totp.Options{
		Digits: otp.Digits(c.Int("digits")),
		Period: c.Uint("period"),
		Epoch:  c.Int64("epoch"),
	}
	return algo, secret, opts, nil
}

// flagTime returns the --time flag as a time.Time, defaulting to now.
func flagTime(c *cli.Context) time.Time {
	if ts := c.Int64("time"); ts != 0 {
		return time.Unix(ts, 0)
	}
	return time.Now()
}

// decodeSecret accepts the secret as padded or unpadded base32, upper or
// lower case. The error deliberately omits the input so the secret cannot
// end up in logs.
func decodeSecret(s string) ([]byte, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimRight(s, "=")
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(s)
	if err != nil {
		return nil, errors.New("secret is not valid base32")
	}
	return raw, nil
}
