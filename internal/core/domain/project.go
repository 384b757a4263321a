package domain

const (
	// ProjectFileName is the optional per-checkout install file.
	ProjectFileName = ".darkstorage-install.yaml"

	// DefaultMainPackage is the build target passed to the compiler.
	DefaultMainPackage = "main.go"
	// DefaultVersionPackage holds the CLI's version variables.
	DefaultVersionPackage = "github.com/darkstorage/cli/cmd"
	// DefaultRemote is the remote pulled by RepositorySync.
	DefaultRemote = "origin"
	// DefaultBranch is the branch pulled by RepositorySync.
	DefaultBranch = "main"
)

// ProjectConfig describes how to build the checkout the installer runs in.
type ProjectConfig struct {
	MainPackage    string
	VersionPackage string
	Remote         string
	Branch         string
	BuiltBy        string
}

// DefaultProjectConfig returns the settings used when no install file exists.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		MainPackage:    DefaultMainPackage,
		VersionPackage: DefaultVersionPackage,
		Remote:         DefaultRemote,
		Branch:         DefaultBranch,
		BuiltBy:        DefaultBuiltBy,
	}
}
