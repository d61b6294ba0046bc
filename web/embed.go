// Package web embeds the single-page client application served by the API binary.
package web

import "embed"

// StaticFS embeds the client HTML, scripts, and styles.
//
//go:embed static/*
var StaticFS embed.FS
