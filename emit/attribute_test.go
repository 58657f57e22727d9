package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeRender(t *testing.T) {
	t.Run("no arguments render without parentheses", func(t *testing.T) {
		a := NewAttribute("Serializable")
		assert.Equal(t, "[Serializable]\n", a.Render(NewIndenter()))
	})

	t.Run("arguments render comma joined in append order", func(t *testing.T) {
		a := NewAttribute("Obsolete", `"Use Replacement"`).Arg("true")
		assert.Equal(t, "[Obsolete(\"Use Replacement\", true)]\n", a.Render(NewIndenter()))
	})

	t.Run("indented", func(t *testing.T) {
		a := NewAttribute("Flags")
		ind := NewIndenter()
		ind.Push()
		assert.Equal(t, "\t[Flags]\n", a.Render(ind))
	})
}
