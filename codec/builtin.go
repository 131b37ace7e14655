package codec

// RegisterBuiltins registers the scalar, enum and list parsers with r, in
// that order.
func RegisterBuiltins(r *Registry) error {
	for _, p := range []Parser{
		NewIntParser(),
		NewStringParser(),
		NewBoolParser(),
		NewFloatParser(),
		NewEnumParser(),
		NewListParser(r),
	} {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}
