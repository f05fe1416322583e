//go:build debug_vkmol

package resource

// DebugValidate calls Validate on the provided object and panics if it returns an error.
// This method no-ops unless the debug_vkmol build tag is present.
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}
