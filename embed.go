package ftracker

import "embed"

// Content holds the default sensor packages
//go:embed etc
var Content embed.FS
