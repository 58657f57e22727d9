package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/sharpgen/sharpen/emit"
)

func TestBuildGolden(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives)

	for _, path := range archives {
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			files := make(map[string][]byte, len(ar.Files))
			for _, f := range ar.Files {
				files[f.Name] = f.Data
			}
			require.Contains(t, files, "schema.yaml")
			require.Contains(t, files, "expected.cs")

			s, err := Parse(files["schema.yaml"])
			require.NoError(t, err)
			f, err := Build(s)
			require.NoError(t, err)
			got, err := f.Render()
			require.NoError(t, err)
			assert.Equal(t, string(files["expected.cs"]), got)
		})
	}
}

func TestBuildNaming(t *testing.T) {
	s := &Schema{
		Classes: []ClassDef{{
			Name: "order_item",
			Fields: []FieldDef{
				{Name: "line_total", Type: "decimal"},
				{Name: "default_currency", Type: "string", Const: true, Value: `"EUR"`},
			},
			Properties: []PropertyDef{{Name: "product_id", Type: "Guid"}},
		}},
	}
	f, err := Build(s)
	require.NoError(t, err)
	got, err := f.Render()
	require.NoError(t, err)

	assert.Contains(t, got, "class OrderItem")
	assert.Contains(t, got, "private decimal _lineTotal;")
	assert.Contains(t, got, `private const string DefaultCurrency = "EUR";`)
	assert.Contains(t, got, "public Guid ProductId { get; set; }")
}

func TestBuildClassShape(t *testing.T) {
	s := &Schema{
		Classes: []ClassDef{{
			Name:     "widget",
			Base:     "Component",
			Abstract: true,
			Methods:  []MethodDef{{Name: "refresh"}},
		}},
	}
	f, err := Build(s)
	require.NoError(t, err)
	got, err := f.Render()
	require.NoError(t, err)
	assert.Contains(t, got, "public abstract class Widget : Component")
	assert.Contains(t, got, "public void Refresh()")
}

func TestBuildInvalidSchema(t *testing.T) {
	s := &Schema{Classes: []ClassDef{{Name: "widget", Fields: []FieldDef{{Name: "x"}}}}}
	_, err := Build(s)
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
}

func TestParseType(t *testing.T) {
	tests := []struct {
		expr     string
		expected string
	}{
		{"int", "int"},
		{" int ", "int"},
		{"List<int>", "List<int>"},
		{"Dictionary<string, List<int>>", "Dictionary<string, List<int>>"},
		{"A<B<C>, D>", "A<B<C>, D>"},
		{"Broken<int", "Broken<int"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseType(tt.expr).String())
		})
	}
}

func TestParseTypeStructure(t *testing.T) {
	typ := parseType("Dictionary<string, List<int>>")
	require.True(t, typ.IsGeneric())
	assert.Equal(t, "Dictionary", typ.Name())
	require.Len(t, typ.Args(), 2)
	assert.Equal(t, "string", typ.Args()[0].Name())
	assert.Equal(t, emit.Type("List", emit.Type("int")), typ.Args()[1])
}
