package app

// Version is set at build time via -ldflags "-X github.com/tradescribe/backend/internal/app.Version=...".
var Version = "dev"
