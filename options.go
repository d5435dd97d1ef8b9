package doctable

// ExtractOptions holds configuration for fact extraction.
type ExtractOptions struct {
	// Output naming and table selection
	name    string
	headers []string

	// Normalization
	trimSpace bool

	// XLSX: restrict extraction to a single worksheet ("" means all)
	sheet string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		name:      "",
		headers:   nil,
		trimSpace: false,
		sheet:     "",
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		name:      o.name,
		trimSpace: o.trimSpace,
		sheet:     o.sheet,
	}

	// Deep copy headers slice
	if o.headers != nil {
		newOpts.headers = make([]string, len(o.headers))
		copy(newOpts.headers, o.headers)
	}

	return newOpts
}
