package buildinfo

// CurrentVersion is set at build time via -ldflags "-X dltime-cli/internal/buildinfo.CurrentVersion=v1.2.3".
var CurrentVersion = "dev"
