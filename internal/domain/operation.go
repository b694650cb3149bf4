package domain

// Transform is a pure, total text transformation.
type Transform func(string) string

// OperationName identifies one of the supported transformations.
type OperationName string

const (
	OpLowercase        OperationName = "lowercase"
	OpUppercase        OperationName = "uppercase"
	OpNoSpaces         OperationName = "no_spaces"
	OpSlugify          OperationName = "slugify"
	OpRevert           OperationName = "revert"
	OpRemoveDiacritics OperationName = "remove_diacritics"
)

// Operation pairs a name with its transformation. Values are immutable
// once placed in a Registry.
type Operation struct {
	Name      OperationName
	Transform Transform
}

// Apply runs the transformation. An Operation without a Transform is the
// identity.
func (o Operation) Apply(text string) string {
	if o.Transform == nil {
		return text
	}
	return o.Transform(text)
}
