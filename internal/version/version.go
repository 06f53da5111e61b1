package version

// Version is overridden at build time with -ldflags "-X gfa2fa/internal/version.Version=...".
var Version = "0.1.0"
