package peejay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtensionSetHas(t *testing.T) {
	ext := BashComments | Numbers
	require.True(t, ext.Has(BashComments))
	require.True(t, ext.Has(Numbers))
	require.True(t, ext.Has(BashComments|Numbers))
	require.False(t, ext.Has(SingleQuoteString))
	require.False(t, ext.Has(BashComments|SingleQuoteString))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, ExtensionSet(0), cfg.extensions)
	require.Equal(t, defaultMaxStackDepth, cfg.maxStackDepth)
	require.Equal(t, defaultMaxStringLength, cfg.maxStringLength)
	require.Equal(t, defaultMaxIdentifierLength, cfg.maxIdentifierLength)
}

func TestWithAllExtensions(t *testing.T) {
	cfg := defaultConfig()
	WithAllExtensions()(&cfg)
	for _, bit := range []ExtensionSet{
		BashComments, SingleLineComments, MultiLineComments,
		ArrayTrailingComma, ObjectTrailingComma, SingleQuoteString,
		LeadingPlus, ExtraWhitespace, IdentifierObjectKey,
		StringEscapes, Numbers,
	} {
		require.True(t, cfg.extensions.Has(bit))
	}
}

func TestWithExtensionAccumulates(t *testing.T) {
	cfg := defaultConfig()
	WithExtension(BashComments)(&cfg)
	WithExtension(Numbers)(&cfg)
	require.True(t, cfg.extensions.Has(BashComments))
	require.True(t, cfg.extensions.Has(Numbers))
	require.False(t, cfg.extensions.Has(SingleQuoteString))
}

func TestWithPolicyOverrides(t *testing.T) {
	cfg := defaultConfig()
	WithMaxStackDepth(5)(&cfg)
	WithMaxStringLength(10)(&cfg)
	WithMaxIdentifierLength(20)(&cfg)
	require.Equal(t, 5, cfg.maxStackDepth)
	require.Equal(t, 10, cfg.maxStringLength)
	require.Equal(t, 20, cfg.maxIdentifierLength)
}
