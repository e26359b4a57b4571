// Package client assembles the cookie-refresh tools: it loads configuration,
// builds the HTTP adapter and services, and exposes one entry point per
// binary (full TUI, quick line-mode loop, scripted demos).
package client
