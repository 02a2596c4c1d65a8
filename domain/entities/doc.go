// Package entities provides core domain entities for the plugin runtime.
// These are plain types shared by the resolver, registry, and code server;
// host-application domain types (activity sessions, settings) do not belong here.
package entities
