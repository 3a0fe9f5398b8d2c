package version

// Values injected at build time using the go linker -X option
var (
	// GitHash is the commit the binary was built from
	GitHash = "unknown"
	// BuildTime is the UTC timestamp of the build
	BuildTime = "unknown"
)
