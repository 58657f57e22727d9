package emit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldRender(t *testing.T) {
	tests := []struct {
		name     string
		field    *Field
		expected string
	}{
		{
			"defaults to private",
			NewField("_count", Type("int")),
			"private int _count;\n",
		},
		{
			"public with value",
			NewField("Count", Type("int")).Visibility(Public).Value("0"),
			"public int Count = 0;\n",
		},
		{
			"static readonly",
			NewField("_cache", DictOf(Type("string"), Type("int"))).Static().Readonly(),
			"private static readonly Dictionary<string, int> _cache;\n",
		},
		{
			"const omits static and readonly",
			NewField("Max", Type("int")).Visibility(Public).Static().Readonly().Const().Value("99"),
			"public const int Max = 99;\n",
		},
		{
			"conditional modifier off",
			NewField("_count", Type("int")).Static(false),
			"private int _count;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.field.Render(NewIndenter())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFieldDocAndAttributes(t *testing.T) {
	f := NewField("_count", Type("int")).
		Doc(func(d *XmlDoc) { d.Summary("Backing count.") }).
		Attribute("NonSerialized")
	got, err := f.Render(NewIndenter())
	require.NoError(t, err)
	expected := "/// <summary>\n" +
		"/// Backing count.\n" +
		"/// </summary>\n" +
		"[NonSerialized]\n" +
		"private int _count;\n"
	assert.Equal(t, expected, got)
}

func TestConstFieldGuard(t *testing.T) {
	t.Run("const without value fails at render", func(t *testing.T) {
		f := NewField("Max", Type("int")).Const()
		_, err := f.Render(NewIndenter())
		require.Error(t, err)
		assert.True(t, IsMissingConstInitializer(err))
		assert.True(t, errors.Is(err, ErrInvalidModel))
		assert.Contains(t, err.Error(), "Max")
	})

	t.Run("const with blank value fails at render", func(t *testing.T) {
		f := NewField("Max", Type("int")).Const().Value("   ")
		_, err := f.Render(NewIndenter())
		assert.True(t, IsMissingConstInitializer(err))
	})

	t.Run("value added after const fixes the model", func(t *testing.T) {
		f := NewField("Max", Type("int")).Const()
		f.Value("1")
		got, err := f.Render(NewIndenter())
		require.NoError(t, err)
		assert.Equal(t, "private const int Max = 1;\n", got)
	})
}
