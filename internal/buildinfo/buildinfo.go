package buildinfo

// Values injected at link time, e.g.
//
//	go build -ldflags "-X github.com/kyaoi/hexhelp/internal/buildinfo.version=1.10.0 \
//	  -X github.com/kyaoi/hexhelp/internal/buildinfo.gitBranch=master \
//	  -X github.com/kyaoi/hexhelp/internal/buildinfo.gitCommitHash=abc1234"
var (
	version       = "1.10.0"
	gitBranch     = ""
	gitCommitHash = ""
)

// Info carries the version and source control metadata of the running build.
type Info struct {
	Version string
	Branch  string
	Commit  string
}

// Current returns the metadata baked into this binary.
func Current() Info {
	return Info{
		Version: version,
		Branch:  gitBranch,
		Commit:  gitCommitHash,
	}
}

// HasCommit reports whether both the branch and the commit hash are known.
func (i Info) HasCommit() bool {
	return i.Branch != "" && i.Commit != ""
}
