package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodRender(t *testing.T) {
	tests := []struct {
		name     string
		method   *Method
		expected string
	}{
		{
			"void no parameters",
			NewMethod("Run"),
			"public void Run()\n{\n}\n",
		},
		{
			"return type and parameters",
			NewMethod("Add").
				Returns(Type("int")).
				Param(Type("int"), "a").
				Param(Type("int"), "b").
				Body(func(b *Block) { b.Return("a + b") }),
			"public int Add(int a, int b)\n{\n\treturn a + b;\n}\n",
		},
		{
			"modifier order is fixed",
			NewMethod("Run").Override().Static().Visibility(Protected),
			"protected static override void Run()\n{\n}\n",
		},
		{
			"virtual",
			NewMethod("Run").Virtual(),
			"public virtual void Run()\n{\n}\n",
		},
		{
			"generic with constraint",
			NewMethod("First").
				TypeParam("T").
				Constraint("T", "class").
				Returns(Type("T")).
				Param(ListOf(Type("T")), "items"),
			"public T First<T>(List<T> items) where T : class\n{\n}\n",
		},
		{
			"two type parameters two constraints",
			NewMethod("Map").
				TypeParam("T").
				TypeParam("U").
				Constraint("T", "class").
				Constraint("U", "new()"),
			"public void Map<T, U>() where T : class where U : new()\n{\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.method.Render(NewIndenter())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMethodBodilessForms(t *testing.T) {
	t.Run("abstract renders terminator", func(t *testing.T) {
		m := NewMethod("Run").Abstract()
		got, err := m.Render(NewIndenter())
		require.NoError(t, err)
		assert.Equal(t, "public abstract void Run();\n", got)
	})

	t.Run("abstract ignores a configured body", func(t *testing.T) {
		m := NewMethod("Run").
			Abstract().
			Body(func(b *Block) { b.Return("1") })
		got, err := m.Render(NewIndenter())
		require.NoError(t, err)
		assert.Equal(t, "public abstract void Run();\n", got)
		assert.NotContains(t, got, "{")
	})

	t.Run("partial without body renders terminator", func(t *testing.T) {
		m := NewMethod("OnChanged").Partial()
		got, err := m.Render(NewIndenter())
		require.NoError(t, err)
		assert.Equal(t, "public partial void OnChanged();\n", got)
	})

	t.Run("partial with body renders fully", func(t *testing.T) {
		m := NewMethod("OnChanged").
			Partial().
			Body(func(b *Block) { b.Call("Refresh") })
		got, err := m.Render(NewIndenter())
		require.NoError(t, err)
		assert.Equal(t, "public partial void OnChanged()\n{\n\tRefresh();\n}\n", got)
	})
}

func TestMethodDocAndAttributes(t *testing.T) {
	m := NewMethod("Add").
		Returns(Type("int")).
		Param(Type("int"), "a").
		Doc(func(d *XmlDoc) {
			d.Param("a", "The addend.").Summary("Adds a to the count.").Returns("The new count.")
		}).
		Attribute("Pure")
	got, err := m.Render(NewIndenter())
	require.NoError(t, err)
	expected := "/// <summary>\n" +
		"/// Adds a to the count.\n" +
		"/// </summary>\n" +
		"/// <param name=\"a\">The addend.</param>\n" +
		"/// <returns>\n" +
		"/// The new count.\n" +
		"/// </returns>\n" +
		"[Pure]\n" +
		"public int Add(int a)\n" +
		"{\n" +
		"}\n"
	assert.Equal(t, expected, got)
}
