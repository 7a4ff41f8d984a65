package domain

// Asset types referenced by Child/Identifier payloads.
const (
	AssetTypePage     = "page"
	AssetTypeFile     = "file"
	AssetTypeFolder   = "folder"
	AssetTypeBlock    = "block"
	AssetTypeSymlink  = "symlink"
	AssetTypeTemplate = "template"
	AssetTypeUser     = "user"
	AssetTypeGroup    = "group"
	AssetTypeRole     = "role"
	AssetTypeSite     = "site"
	AssetTypeFormat   = "format"
)

// Asset is the handle returned by a transport after resolving an identifier.
// The conversion layer never inspects it beyond these identifying fields.
type Asset struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Path     string         `json:"path"`
	SiteName string         `json:"siteName,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
