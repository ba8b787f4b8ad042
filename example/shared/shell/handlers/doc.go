// Package handlers contains the event handlers of the example application.
//
// Each handler reacts to exactly one event kind, except JSONAuditLog which is a catch-all
// handler that can be registered for any kind. RegisterAll wires the default handler set.
package handlers
