package web

import "embed"

// FS holds the static assets served under /static and copied by the
// static export.
//
//go:embed static/*
var FS embed.FS
