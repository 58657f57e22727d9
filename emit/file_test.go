package emit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileUsings(t *testing.T) {
	t.Run("duplicates are ignored", func(t *testing.T) {
		f := NewFile().Using("System").Using("System")
		f.Class("Foo")
		got, err := f.Render()
		require.NoError(t, err)
		assert.Equal(t, "using System;\n\npublic class Foo\n{\n}\n", got)
	})

	t.Run("rendered sorted regardless of insertion order", func(t *testing.T) {
		f := NewFile().Using("System.Linq", "System", "System.Collections.Generic", "System")
		f.Class("Foo")
		got, err := f.Render()
		require.NoError(t, err)
		expected := "using System;\n" +
			"using System.Collections.Generic;\n" +
			"using System.Linq;\n" +
			"\n" +
			"public class Foo\n{\n}\n"
		assert.Equal(t, expected, got)
	})

	t.Run("no usings emits no blank line", func(t *testing.T) {
		f := NewFile()
		f.Class("Foo")
		got, err := f.Render()
		require.NoError(t, err)
		assert.Equal(t, "public class Foo\n{\n}\n", got)
	})
}

func TestFileNamespace(t *testing.T) {
	f := NewFile().Using("System").Namespace("Demo.Domain")
	f.Class("Foo")
	got, err := f.Render()
	require.NoError(t, err)
	expected := "using System;\n" +
		"\n" +
		"namespace Demo.Domain\n" +
		"{\n" +
		"\tpublic class Foo\n" +
		"\t{\n" +
		"\t}\n" +
		"}\n"
	assert.Equal(t, expected, got)
}

func TestFileContainersInInsertionOrder(t *testing.T) {
	f := NewFile()
	f.Struct("Point")
	f.Class("Foo")
	got, err := f.Render()
	require.NoError(t, err)
	expected := "public struct Point\n" +
		"{\n" +
		"}\n" +
		"\n" +
		"public class Foo\n" +
		"{\n" +
		"}\n"
	assert.Equal(t, expected, got)
}

func TestFileRenderIdempotent(t *testing.T) {
	f := NewFile().Using("System").Namespace("Demo")
	f.AddClass("Foo", func(c *Class) {
		c.Field("_count", Type("int"))
		c.Method("Run").Body(func(b *Block) {
			b.If("_count > 0", func(body *Block) {
				body.Call("Console.WriteLine", "_count")
			})
		})
	})
	first, err := f.Render()
	require.NoError(t, err)
	second, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileHeader(t *testing.T) {
	f := NewFile(WithHeader("// <auto-generated />"))
	f.Class("Foo")
	got, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, "// <auto-generated />\n\npublic class Foo\n{\n}\n", got)
}

func TestFileIndentUnitOption(t *testing.T) {
	f := NewFile(WithIndentUnit("    ")).Namespace("Demo")
	f.Class("Foo")
	got, err := f.Render()
	require.NoError(t, err)
	expected := "namespace Demo\n" +
		"{\n" +
		"    public class Foo\n" +
		"    {\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, expected, got)
}

func TestFileOptionErrorsSurfaceAtRender(t *testing.T) {
	f := NewFile(WithIndentUnit(""))
	f.Class("Foo")
	_, err := f.Render()
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestFileMemberErrorPropagates(t *testing.T) {
	f := NewFile().Namespace("Demo")
	f.Class("Foo").Field("Max", Type("int")).Const()
	_, err := f.Render()
	require.Error(t, err)
	assert.True(t, IsMissingConstInitializer(err))
}

func TestFileSave(t *testing.T) {
	t.Run("save to configured output creates directories", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "out", "Foo.cs")
		f := NewFile(WithOutput(path))
		f.Class("Foo")
		require.NoError(t, f.Save())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "public class Foo\n{\n}\n", string(data))
	})

	t.Run("save without output configured fails", func(t *testing.T) {
		f := NewFile()
		f.Class("Foo")
		err := f.Save()
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("save as overrides configured output", func(t *testing.T) {
		dir := t.TempDir()
		configured := filepath.Join(dir, "default.cs")
		override := filepath.Join(dir, "override.cs")
		f := NewFile(WithOutput(configured))
		f.Class("Foo")
		require.NoError(t, f.SaveAs(override))

		_, err := os.Stat(configured)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		data, err := os.ReadFile(override)
		require.NoError(t, err)
		assert.Contains(t, string(data), "class Foo")
	})

	t.Run("invalid model produces no file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "Foo.cs")
		f := NewFile(WithOutput(path))
		f.Class("Foo").Field("Max", Type("int")).Const()
		require.Error(t, f.Save())
		_, err := os.Stat(path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestEachClass(t *testing.T) {
	names := []string{"Alpha", "Beta"}
	f := NewFile()
	EachClass(f, names,
		func(n string) string { return n },
		func(n string, c *Class) { c.Sealed() })
	got, err := f.Render()
	require.NoError(t, err)
	assert.Contains(t, got, "public sealed class Alpha\n")
	assert.Contains(t, got, "public sealed class Beta\n")
}
