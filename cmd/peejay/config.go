package main

import (
	"github.com/spf13/pflag"

	"github.com/mcvoid/peejay"
)

// extensionFlag pairs one peejay.ExtensionSet bit with the flag name used
// to enable it, following cmd/magicschema's Flags/Config split (one
// struct field and RegisterFlags call per CLI-tunable setting).
type extensionFlag struct {
	name string
	bit  peejay.ExtensionSet
}

var extensionFlags = []extensionFlag{
	{"bash-comments", peejay.BashComments},
	{"single-line-comments", peejay.SingleLineComments},
	{"multi-line-comments", peejay.MultiLineComments},
	{"array-trailing-comma", peejay.ArrayTrailingComma},
	{"object-trailing-comma", peejay.ObjectTrailingComma},
	{"single-quote-string", peejay.SingleQuoteString},
	{"leading-plus", peejay.LeadingPlus},
	{"extra-whitespace", peejay.ExtraWhitespace},
	{"identifier-object-key", peejay.IdentifierObjectKey},
	{"string-escapes", peejay.StringEscapes},
	{"numbers", peejay.Numbers},
}

// parserConfig holds the CLI's view of the library's Option set, bound to
// pflag variables by RegisterFlags and turned into peejay.Option values by
// options.
type parserConfig struct {
	enabled             map[string]*bool
	allExtensions       bool
	maxDepth            int
	maxStringLength     int
	maxIdentifierLength int
	logLevel            string
}

func newParserConfig() *parserConfig {
	return &parserConfig{enabled: make(map[string]*bool, len(extensionFlags))}
}

// RegisterFlags adds one boolean flag per extension plus the shared policy
// and logging flags to flags, matching magicschema's
// Config.RegisterFlags(rootCmd.Flags()) idiom.
func (c *parserConfig) RegisterFlags(flags *pflag.FlagSet) {
	for _, ef := range extensionFlags {
		c.enabled[ef.name] = flags.Bool(ef.name, false, "enable the "+ef.name+" grammar extension")
	}
	flags.BoolVar(&c.allExtensions, "all-extensions", false, "enable every grammar extension")
	flags.IntVar(&c.maxDepth, "max-depth", 0, "maximum array/object nesting depth (0 uses the library default)")
	flags.IntVar(&c.maxStringLength, "max-string-length", 0, "maximum decoded string length (0 uses the library default)")
	flags.IntVar(&c.maxIdentifierLength, "max-identifier-length", 0, "maximum decoded identifier length (0 uses the library default)")
	flags.StringVar(&c.logLevel, "log-level", "info", "diagnostic log level: debug, info, warn, error")
}

// options translates the bound flag values into peejay.Option values.
func (c *parserConfig) options() []peejay.Option {
	var opts []peejay.Option
	if c.allExtensions {
		opts = append(opts, peejay.WithAllExtensions())
	} else {
		var ext peejay.ExtensionSet
		for _, ef := range extensionFlags {
			if *c.enabled[ef.name] {
				ext |= ef.bit
			}
		}
		if ext != 0 {
			opts = append(opts, peejay.WithExtension(ext))
		}
	}
	if c.maxDepth > 0 {
		opts = append(opts, peejay.WithMaxStackDepth(c.maxDepth))
	}
	if c.maxStringLength > 0 {
		opts = append(opts, peejay.WithMaxStringLength(c.maxStringLength))
	}
	if c.maxIdentifierLength > 0 {
		opts = append(opts, peejay.WithMaxIdentifierLength(c.maxIdentifierLength))
	}
	return opts
}
