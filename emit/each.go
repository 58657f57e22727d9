package emit

// ContainerBuilder is the member surface shared by the class and struct
// builders, used by the batch helpers for model-driven generation.
type ContainerBuilder interface {
	Field(name string, typ TypeRef) *Field
	Property(name string, typ TypeRef) *Property
	Method(name string) *Method
}

var (
	_ ContainerBuilder = (*Class)(nil)
	_ ContainerBuilder = (*Struct)(nil)
)

// EachField adds one field per item, with the name and type drawn through
// the extractor funcs and an optional per-item configuration callback.
func EachField[T any](c ContainerBuilder, items []T, name func(T) string, typ func(T) TypeRef, configure ...func(T, *Field)) {
	for _, item := range items {
		f := c.Field(name(item), typ(item))
		for _, cfg := range configure {
			cfg(item, f)
		}
	}
}

// EachProperty adds one property per item.
func EachProperty[T any](c ContainerBuilder, items []T, name func(T) string, typ func(T) TypeRef, configure ...func(T, *Property)) {
	for _, item := range items {
		p := c.Property(name(item), typ(item))
		for _, cfg := range configure {
			cfg(item, p)
		}
	}
}

// EachMethod adds one method per item.
func EachMethod[T any](c ContainerBuilder, items []T, name func(T) string, configure ...func(T, *Method)) {
	for _, item := range items {
		m := c.Method(name(item))
		for _, cfg := range configure {
			cfg(item, m)
		}
	}
}

// EachClass adds one class per item to the file.
func EachClass[T any](f *File, items []T, name func(T) string, configure ...func(T, *Class)) {
	for _, item := range items {
		c := f.Class(name(item))
		for _, cfg := range configure {
			cfg(item, c)
		}
	}
}
