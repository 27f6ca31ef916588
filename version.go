package robotstxt

// Version identifies this module's release. There is no compiled binary
// to stamp a commit hash or build time into, so unlike most of this
// module's ambient stack there is nothing else to carry here.
var Version = "dev"

// ContentSignalSupported reports whether this build recognizes the
// Content-Signal directive, mirroring the reference implementation's
// compile-time ROBOTS_SUPPORT_CONTENT_SIGNAL flag as a runtime probe for
// callers that also link against it. Always true in this build.
func ContentSignalSupported() bool {
	return true
}
