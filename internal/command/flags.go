// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/aocctl/internal/client"
)

// NewGlobalFlags returns the flags every command carries. path is the config
// file and may be empty.
func NewGlobalFlags(path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "session",
			Usage: "Advent of Code session cookie",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOC_SESSION"),
				cli.EnvVar("AOCCTL_SESSION"),
				yaml.YAML("session", altsrc.StringSourcer(path)),
			),
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "base URL of the puzzle site",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOCCTL_BASE_URL"),
				yaml.YAML("base_url", altsrc.StringSourcer(path)),
			),
			Value: client.DefaultBaseURL,
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "root directory of the input cache",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOCCTL_CACHE_DIR"),
				yaml.YAML("cache.dir", altsrc.StringSourcer(path)),
			),
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "cache backend, local or s3",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AOCCTL_CACHE_BACKEND"),
				yaml.YAML("cache.backend", altsrc.StringSourcer(path)),
			),
			Value: backendLocal,
			Validator: func(value string) error {
				return FlagValidators(value, BackendValidator)
			},
		},
	}

	flags = append(flags, newS3Flags(path)...)
	return
}

func newS3Flags(path string) []cli.Flag {
	names := []struct{ name, key, usage string }{
		{"s3-bucket", "cache.s3.bucket", "bucket for the s3 backend"},
		{"s3-prefix", "cache.s3.prefix", "key prefix for the s3 backend"},
		{"s3-region", "cache.s3.region", "AWS region for the s3 backend"},
		{"s3-profile", "cache.s3.profile", "AWS shared config profile for the s3 backend"},
		{"s3-endpoint", "cache.s3.endpoint", "endpoint override for S3-compatible stores"},
	}

	flags := make([]cli.Flag, 0, len(names))
	for _, n := range names {
		flags = append(flags, &cli.StringFlag{
			Name:    n.name,
			Usage:   n.usage,
			Sources: cli.NewValueSourceChain(yaml.YAML(n.key, altsrc.StringSourcer(path))),
		})
	}
	return flags
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// NewOutputFlag constructs the --output flag, namespaced to the command in
// the config file.
func NewOutputFlag(ns string, path string) *cli.StringFlag {
	return NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format, raw or json",
		Sources: cli.NewValueSourceChain(cli.EnvVar("AOCCTL_OUTPUT")),
		Value:   outputRaw,
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	})
}

// NewTitlesFlag constructs the --titles flag, namespaced to the command in
// the config file.
func NewTitlesFlag(ns string, path string) *cli.BoolWithInverseFlag {
	return &cli.BoolWithInverseFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with table output",
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(path)),
			yaml.YAML("titles", altsrc.StringSourcer(path)),
		),
		Value: true,
	}
}
