// Package services implements the driving ports over the driven ports.
// Services hold no state of their own beyond their injected dependencies;
// catalog data lives behind the ItemStore port.
package services
