package config

// Well-known configuration keys.
const (
	KeyTheme         = "theme"
	KeySourceDir     = "source_dir"
	KeyPublicDir     = "public_dir"
	KeyPostsDir      = "posts_dir"
	KeyStashDir      = "stash_dir"
	KeyDeployDir     = "deploy_dir"
	KeyDeployDefault = "deploy_default"
	KeyDeployBranch  = "deploy_branch"
	KeyGenerateCmd   = "generate_cmd"
	KeyPreviewCmd    = "preview_cmd"
	KeyNewPostExt    = "new_post_ext"
	KeyNewPageExt    = "new_page_ext"
	KeyURL           = "url"
)

// DefaultValues returns the fallback values used by the typed accessors when
// the loaded document omits a well-known key.
func DefaultValues() map[string]string {
	return map[string]string{
		KeyTheme:         "classic",
		KeySourceDir:     "source",
		KeyPublicDir:     "public",
		KeyPostsDir:      "_posts",
		KeyStashDir:      "_stash",
		KeyDeployDir:     "_deploy",
		KeyDeployDefault: "rsync",
		KeyDeployBranch:  "main",
		KeyGenerateCmd:   "jekyll build",
		KeyPreviewCmd:    "jekyll serve",
		KeyNewPostExt:    "markdown",
		KeyNewPageExt:    "markdown",
	}
}

// View is a read-only capability over a loaded Document. It is shared by
// every command; commands never mutate configuration through it.
type View struct {
	doc *Document
}

// NewView wraps doc in a read-only view.
func NewView(doc *Document) *View {
	return &View{doc: doc}
}

// Get returns the value for key exactly as loaded.
// Keys absent from the document fail with ErrUnknownKey; defaults do not
// apply here.
func (v *View) Get(key string) (string, error) {
	val, ok := v.doc.Get(key)
	if !ok {
		return "", ErrUnknownKey
	}
	return val, nil
}

// Keys returns the loaded keys in file order.
func (v *View) Keys() []string {
	return v.doc.Keys()
}

// lookup returns the loaded value for key, falling back to the well-known
// default when the document omits it.
func (v *View) lookup(key string) string {
	if val, ok := v.doc.Get(key); ok {
		return val
	}
	return DefaultValues()[key]
}

// Theme returns the theme name used by install.
func (v *View) Theme() string { return v.lookup(KeyTheme) }

// SourceDir returns the site source directory, relative to the site root.
func (v *View) SourceDir() string { return v.lookup(KeySourceDir) }

// PublicDir returns the generated-output directory.
func (v *View) PublicDir() string { return v.lookup(KeyPublicDir) }

// PostsDir returns the posts directory, relative to the source directory.
func (v *View) PostsDir() string { return v.lookup(KeyPostsDir) }

// StashDir returns the directory isolate moves posts into.
func (v *View) StashDir() string { return v.lookup(KeyStashDir) }

// DeployDir returns the staging directory for branch-based deploys.
func (v *View) DeployDir() string { return v.lookup(KeyDeployDir) }

// DeployDefault returns the deploy method ("rsync" or "push").
func (v *View) DeployDefault() string { return v.lookup(KeyDeployDefault) }

// DeployBranch returns the branch pushed by branch-based deploys.
func (v *View) DeployBranch() string { return v.lookup(KeyDeployBranch) }

// GenerateCmd returns the external generator command line.
func (v *View) GenerateCmd() string { return v.lookup(KeyGenerateCmd) }

// PreviewCmd returns the external preview-server command line.
func (v *View) PreviewCmd() string { return v.lookup(KeyPreviewCmd) }

// NewPostExt returns the file extension for scaffolded posts.
func (v *View) NewPostExt() string { return v.lookup(KeyNewPostExt) }

// NewPageExt returns the file extension for scaffolded pages.
func (v *View) NewPageExt() string { return v.lookup(KeyNewPageExt) }

// Bool returns the value for key parsed as a boolean, or def when the key
// is missing or unparseable.
func (v *View) Bool(key string, def bool) bool {
	return v.doc.Bool(key, def)
}

// URL returns the published site URL, or "" when unset.
func (v *View) URL() string {
	val, _ := v.doc.Get(KeyURL)
	return val
}
