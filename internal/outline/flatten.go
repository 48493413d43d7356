package outline

// ModuleSummary is one row of the flattened module projection.
type ModuleSummary struct {
	// Path is the ::-joined module path from the file root, e.g.
	// "outer::inner".
	Path           string `json:"path"`
	Name           string `json:"name"`
	Span           Span   `json:"span"`
	ItemCount      int    `json:"itemCount"`
	ReferenceCount int    `json:"referenceCount"`
}

// FlattenModules derives a flat list of every inline module in the file,
// depth-first in declaration order. The nested tree stays canonical; this is
// a projection over it, not a second traversal of the syntax tree.
func (f *FileInfo) FlattenModules() []ModuleSummary {
	summaries := []ModuleSummary{}
	flattenInto(f.Items, "", &summaries)
	return summaries
}

func flattenInto(items []ItemInfo, prefix string, out *[]ModuleSummary) {
	for i := range items {
		mod := items[i].Details.Module
		if mod == nil {
			continue
		}

		path := items[i].Name
		if prefix != "" {
			path = prefix + "::" + items[i].Name
		}

		*out = append(*out, ModuleSummary{
			Path:           path,
			Name:           items[i].Name,
			Span:           items[i].Span,
			ItemCount:      len(mod.Items),
			ReferenceCount: len(mod.ModuleReferences),
		})
		flattenInto(mod.Items, path, out)
	}
}
